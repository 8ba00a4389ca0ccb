package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	d := DateOf(time.Date(2026, 10, 19, 23, 30, 0, 0, loc))

	assert.Equal(t, "2026-10-20", d.String())
	assert.Equal(t, "2026-10-21", d.AddDays(1).String())
	assert.Equal(t, "2025-10-20", d.AddDays(-365).String())

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-10-20", v)
}

func TestColumnsMatchValues(t *testing.T) {
	rows := []Row{Product{}, StockSnapshot{}, Sale{}, Purchase{}, Parameter{}}
	for _, r := range rows {
		assert.Len(t, r.ColumnValues(), len(r.Columns()), r.TableName())
	}
}

func TestProductColumnsSkipScenario(t *testing.T) {
	p := Product{
		SKU:          "ABC-1234",
		Name:         "Sony thing",
		Category:     CategoryElectronics,
		Manufacturer: "Sony",
		CostPrice:    decimal.RequireFromString("199.90"),
		LeadTimeDays: 20,
		Status:       StatusActive,
		Scenario:     ScenarioOverstock,
	}

	assert.Equal(t, []string{"sku", "name", "category", "manufacturer", "cost_price", "lead_time_days", "status"}, p.Columns())
	for _, v := range p.ColumnValues() {
		assert.NotEqual(t, ScenarioOverstock, v)
	}
}

func TestEnumValidity(t *testing.T) {
	assert.Len(t, Categories, 8)
	assert.True(t, CategoryHomeGarden.Valid())
	assert.False(t, Category("Toys").Valid())
	assert.True(t, StatusInactive.Valid())
	assert.False(t, Status("active").Valid())
	assert.True(t, ScenarioStockout.Valid())
	assert.False(t, Scenario("ruptura").Valid())
	assert.True(t, ParameterCalcFrequency.Valid())
	assert.False(t, ParameterKind("").Valid())
	assert.Len(t, Channels, 5)
}

func TestCategoryRef(t *testing.T) {
	c := CategoryBooks
	ref := CategoryRef(c)
	require.NotNil(t, ref)
	assert.Equal(t, CategoryBooks, *ref)
}
