package generator

import (
	"github.com/shopspring/decimal"

	"github.com/hlubek/stockseed/domain"
	"github.com/hlubek/stockseed/randsrc"
)

var hundred = decimal.NewFromInt(100)

// Sales generates count sales over the ACTIVE subset of products.
// Requesting zero sales never fails, even without active products.
func (g *Generator) Sales(count int, products []domain.Product) ([]domain.Sale, error) {
	if count <= 0 {
		return []domain.Sale{}, nil
	}

	active := make([]string, 0, len(products))
	bySKU := make(map[string]*domain.Product, len(products))
	for i := range products {
		if products[i].Active() {
			active = append(active, products[i].SKU)
			bySKU[products[i].SKU] = &products[i]
		}
	}
	if len(active) == 0 {
		return nil, ErrEmptyDomain
	}

	start, end := g.window(g.profile.SalesWindowDays)
	sales := make([]domain.Sale, 0, count)

	for i := 0; i < count; i++ {
		sku := randsrc.Element(g.src.Sampler, active)
		p := bySKU[sku]

		quantity := randsrc.Pick(g.src.Sampler, g.profile.SaleQuantityFor(p.Scenario))
		margin := g.profile.Margin(p.Category)
		m := randsrc.FloatBetween(g.src.Numeric, margin.Min, margin.Max)
		discount := randsrc.Pick(g.src.Sampler, g.profile.Discounts)

		sales = append(sales, domain.Sale{
			SaleDate:   g.dateBetween(start, end),
			SKU:        sku,
			Quantity:   quantity,
			Channel:    randsrc.Element(g.src.Sampler, domain.Channels),
			TotalValue: totalValue(p.CostPrice, m, discount, quantity),
		})
	}

	return sales, nil
}

// totalValue is cost * (1 + margin) * (1 - discount%) * quantity, rounded to cents.
func totalValue(cost decimal.Decimal, margin float64, discountPct int, quantity int) decimal.Decimal {
	price := cost.Mul(decimal.NewFromFloat(1 + margin))
	price = price.Mul(decimal.NewFromInt(int64(100 - discountPct))).Div(hundred)
	return price.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}
