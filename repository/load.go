package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/hlubek/stockseed/generator"
)

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return db, nil
}

// ApplyScript executes statements in order inside one transaction. Nothing is
// committed unless every statement succeeds.
func ApplyScript(ctx context.Context, db *sql.DB, statements []string) error {
	return inTx(ctx, db, func(tx *sql.Tx) error {
		for i, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("executing statement %d: %w", i+1, err)
			}
		}
		return nil
	})
}

// Load inserts a dataset with bound parameters, in dependency order, inside
// one transaction.
func Load(ctx context.Context, db *sql.DB, ds *generator.Dataset) error {
	return inTx(ctx, db, func(tx *sql.Tx) error {
		var runner squirrel.BaseRunner = tx
		for _, p := range ds.Products {
			if err := InsertProduct(ctx, runner, p); err != nil {
				return err
			}
		}
		for _, s := range ds.Stock {
			if err := InsertStockSnapshot(ctx, runner, s); err != nil {
				return err
			}
		}
		for _, s := range ds.Sales {
			if err := InsertSale(ctx, runner, s); err != nil {
				return err
			}
		}
		for _, p := range ds.Purchases {
			if err := InsertPurchase(ctx, runner, p); err != nil {
				return err
			}
		}
		for _, p := range ds.Parameters {
			if err := InsertParameter(ctx, runner, p); err != nil {
				return err
			}
		}
		return nil
	})
}

// CountRows returns the number of rows of every target table.
func CountRows(ctx context.Context, db *sql.DB) (map[string]int, error) {
	counts := make(map[string]int, len(Tables))
	for _, table := range Tables {
		var n int
		err := squirrel.Select("COUNT(*)").From(table).
			RunWith(db).
			QueryRowContext(ctx).
			Scan(&n)
		if err != nil {
			return nil, fmt.Errorf("counting %s: %w", table, err)
		}
		counts[table] = n
	}
	return counts, nil
}

func inTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
