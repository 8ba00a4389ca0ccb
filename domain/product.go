package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

//go:generate go run ../cmd/colgen -out columns_gen.go Product:products StockSnapshot:stock_levels Sale:sales Purchase:purchases Parameter:parameters

type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryApparel     Category = "Apparel"
	CategoryHomeGarden  Category = "Home & Garden"
	CategorySports      Category = "Sports"
	CategoryBooks       Category = "Books"
	CategoryBeauty      Category = "Beauty"
	CategoryAutomotive  Category = "Automotive"
	CategoryFood        Category = "Food"
)

// Categories lists every known category in catalog order.
var Categories = []Category{
	CategoryElectronics,
	CategoryApparel,
	CategoryHomeGarden,
	CategorySports,
	CategoryBooks,
	CategoryBeauty,
	CategoryAutomotive,
	CategoryFood,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Scenario classifies a product for stock and quantity sampling. It only
// exists while generating and is never persisted.
type Scenario string

const (
	ScenarioNormal    Scenario = "normal"
	ScenarioSeasonal  Scenario = "seasonal"
	ScenarioStockout  Scenario = "stockout"
	ScenarioOverstock Scenario = "overstock"
)

var Scenarios = []Scenario{ScenarioNormal, ScenarioSeasonal, ScenarioStockout, ScenarioOverstock}

func (s Scenario) Valid() bool {
	for _, known := range Scenarios {
		if s == known {
			return true
		}
	}
	return false
}

type Product struct {
	SKU          string          `col:"sku"`
	Name         string          `col:"name"`
	Category     Category        `col:"category"`
	Manufacturer string          `col:"manufacturer"`
	CostPrice    decimal.Decimal `col:"cost_price"`
	LeadTimeDays int             `col:"lead_time_days"`
	Status       Status          `col:"status"`

	Scenario Scenario
}

func (p Product) Active() bool {
	return p.Status == StatusActive
}

type StockSnapshot struct {
	SKU       string    `col:"sku"`
	Physical  int       `col:"physical_qty"`
	InTransit int       `col:"in_transit_qty"`
	UpdatedAt time.Time `col:"updated_at"`
}
