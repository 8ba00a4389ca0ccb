// Package sqlscript turns generated records into INSERT statements and
// writes them as a single script, grouped by table in foreign-key order.
package sqlscript

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/hlubek/stockseed/domain"
	"github.com/hlubek/stockseed/generator"
)

const (
	nullLiteral     = "NULL"
	timestampLayout = "2006-01-02 15:04:05"
)

// Group holds the statements of one table.
type Group struct {
	Table      string
	Statements []string
}

// literal is a pre-rendered SQL fragment squirrel inlines without arguments.
type literal string

func (l literal) ToSql() (string, []interface{}, error) {
	return string(l), nil, nil
}

// Serialize renders one statement per record, grouped in dependency order:
// products, stock snapshots, sales, purchases, parameters. Every group is
// present even when empty.
func Serialize(
	products []domain.Product,
	stock []domain.StockSnapshot,
	sales []domain.Sale,
	purchases []domain.Purchase,
	parameters []domain.Parameter,
) ([]Group, error) {
	var groups []Group
	for _, g := range []struct {
		table string
		rows  []domain.Row
	}{
		{domain.Product{}.TableName(), rowsOf(products)},
		{domain.StockSnapshot{}.TableName(), rowsOf(stock)},
		{domain.Sale{}.TableName(), rowsOf(sales)},
		{domain.Purchase{}.TableName(), rowsOf(purchases)},
		{domain.Parameter{}.TableName(), rowsOf(parameters)},
	} {
		group := Group{Table: g.table, Statements: make([]string, 0, len(g.rows))}
		for _, row := range g.rows {
			stmt, err := Statement(row)
			if err != nil {
				return nil, err
			}
			group.Statements = append(group.Statements, stmt)
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// SerializeDataset is Serialize over a generated dataset.
func SerializeDataset(ds *generator.Dataset) ([]Group, error) {
	return Serialize(ds.Products, ds.Stock, ds.Sales, ds.Purchases, ds.Parameters)
}

// Statements flattens groups into one ordered statement list.
func Statements(groups []Group) []string {
	var n int
	for _, g := range groups {
		n += len(g.Statements)
	}
	stmts := make([]string, 0, n)
	for _, g := range groups {
		stmts = append(stmts, g.Statements...)
	}
	return stmts
}

// Statement renders a single INSERT for row with all values inlined.
func Statement(row domain.Row) (string, error) {
	values := row.ColumnValues()
	literals := make([]interface{}, len(values))
	for i, v := range values {
		lit, err := Literal(v)
		if err != nil {
			return "", fmt.Errorf("%s.%s: %w", row.TableName(), row.Columns()[i], err)
		}
		literals[i] = literal(lit)
	}

	sql, args, err := squirrel.Insert(row.TableName()).
		Columns(row.Columns()...).
		Values(literals...).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("building insert into %s: %w", row.TableName(), err)
	}
	if len(args) > 0 {
		return "", fmt.Errorf("insert into %s left %d unbound arguments", row.TableName(), len(args))
	}
	return sql + ";", nil
}

// Literal renders v as a SQL literal. Text is quoted with embedded quotes
// doubled, nil optional values become NULL, numbers are unquoted.
func Literal(v interface{}) (string, error) {
	switch v := v.(type) {
	case nil:
		return nullLiteral, nil
	case string:
		return Quote(v), nil
	case domain.Category:
		return Quote(string(v)), nil
	case *domain.Category:
		if v == nil {
			return nullLiteral, nil
		}
		return Quote(string(*v)), nil
	case domain.Status:
		return Quote(string(v)), nil
	case domain.Channel:
		return Quote(string(v)), nil
	case domain.ParameterKind:
		return Quote(string(v)), nil
	case int:
		return strconv.Itoa(v), nil
	case decimal.Decimal:
		return v.StringFixed(2), nil
	case domain.Date:
		return Quote(v.String()), nil
	case time.Time:
		return Quote(v.UTC().Format(timestampLayout)), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}

// Quote wraps s in single quotes, doubling any embedded single quote.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func rowsOf[T domain.Row](items []T) []domain.Row {
	rows := make([]domain.Row, len(items))
	for i, item := range items {
		rows[i] = item
	}
	return rows
}
