package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hlubek/stockseed/domain"
)

func TestInsertQuery(t *testing.T) {
	product := domain.Product{
		SKU:          "QWE-0042",
		Name:         "JBL Fundamental hub",
		Category:     domain.CategoryElectronics,
		Manufacturer: "JBL",
		CostPrice:    decimal.RequireFromString("150.25"),
		LeadTimeDays: 21,
		Status:       domain.StatusActive,
		Scenario:     domain.ScenarioSeasonal,
	}

	sql, args, err := insertQuery(product).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO products (sku,name,category,manufacturer,cost_price,lead_time_days,status) VALUES ($1,$2,$3,$4,$5,$6,$7)", sql)
	assert.Equal(t, product.ColumnValues(), args)
}

func TestInsertQueryGlobalParameter(t *testing.T) {
	sql, args, err := insertQuery(domain.Parameter{Kind: domain.ParameterForecastDays, Value: "90"}).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO parameters (parameter_type,category,value) VALUES ($1,$2,$3)", sql)
	require.Len(t, args, 3)
	assert.Nil(t, args[1].(*domain.Category))
}

func TestInsertQueryStockSnapshot(t *testing.T) {
	at := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	sql, args, err := insertQuery(domain.StockSnapshot{SKU: "QWE-0042", Physical: 700, InTransit: 12, UpdatedAt: at}).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO stock_levels (sku,physical_qty,in_transit_qty,updated_at) VALUES ($1,$2,$3,$4)", sql)
	assert.Equal(t, []interface{}{"QWE-0042", 700, 12, at}, args)
}

func TestTablesMatchSchema(t *testing.T) {
	for _, table := range Tables {
		assert.Contains(t, schemaSQL, "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
	assert.Equal(t, []string{
		domain.Product{}.TableName(),
		domain.StockSnapshot{}.TableName(),
		domain.Sale{}.TableName(),
		domain.Purchase{}.TableName(),
		domain.Parameter{}.TableName(),
	}, Tables)
}
