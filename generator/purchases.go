package generator

import (
	"github.com/shopspring/decimal"

	"github.com/hlubek/stockseed/domain"
	"github.com/hlubek/stockseed/randsrc"
)

// Purchases generates count purchases over all products regardless of status.
func (g *Generator) Purchases(count int, products []domain.Product) ([]domain.Purchase, error) {
	if count <= 0 {
		return []domain.Purchase{}, nil
	}
	if len(products) == 0 {
		return nil, ErrEmptyDomain
	}

	start, end := g.window(g.profile.PurchasesWindowDays)
	variation := g.profile.UnitPriceVariation
	purchases := make([]domain.Purchase, 0, count)

	for i := 0; i < count; i++ {
		p := products[g.src.Sampler.Intn(len(products))]

		quantity := g.profile.PurchaseQuantityFor(p.Scenario)
		factor := randsrc.FloatBetween(g.src.Numeric, variation.Min, variation.Max)

		purchases = append(purchases, domain.Purchase{
			SKU:          p.SKU,
			PurchaseDate: g.dateBetween(start, end),
			Quantity:     randsrc.IntBetween(g.src.Sampler, quantity.Min, quantity.Max),
			Manufacturer: p.Manufacturer,
			UnitPrice:    p.CostPrice.Mul(decimal.NewFromFloat(factor)).Round(2),
		})
	}

	return purchases, nil
}
