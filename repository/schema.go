package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

//go:embed schema.sql
var schemaSQL string

// Tables lists the target tables in dependency order.
var Tables = []string{"products", "stock_levels", "sales", "purchases", "parameters"}

// CreateSchema creates the target tables if they do not exist yet.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// DropSchema drops the target tables, dependents first.
func DropSchema(ctx context.Context, db *sql.DB) error {
	quoted := make([]string, len(Tables))
	for i, t := range Tables {
		quoted[len(Tables)-1-i] = pq.QuoteIdentifier(t)
	}
	if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+strings.Join(quoted, ", ")); err != nil {
		return fmt.Errorf("dropping schema: %w", err)
	}
	return nil
}
