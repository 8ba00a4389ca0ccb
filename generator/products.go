package generator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/hlubek/stockseed/domain"
	"github.com/hlubek/stockseed/randsrc"
)

const skuPattern = "???-####"

// SKUSpace is the number of distinct identifiers of the form LLL-NNNN.
const SKUSpace = 26 * 26 * 26 * 10000

// Products generates count products and their stock snapshots. Both slices
// are in generation order and index-aligned.
func (g *Generator) Products(count int) ([]domain.Product, []domain.StockSnapshot, error) {
	if count > SKUSpace {
		return nil, nil, fmt.Errorf("requested %d products, at most %d SKUs exist: %w", count, SKUSpace, ErrIdentifierExhausted)
	}
	if count <= 0 {
		return []domain.Product{}, []domain.StockSnapshot{}, nil
	}

	products := make([]domain.Product, 0, count)
	snapshots := make([]domain.StockSnapshot, 0, count)
	seen := make(map[string]struct{}, count)
	categories := g.profile.CategoryNames()

	for i := 0; i < count; i++ {
		sku := g.sku()
		for {
			if _, taken := seen[sku]; !taken {
				break
			}
			sku = g.sku()
		}
		seen[sku] = struct{}{}

		category := randsrc.Element(g.src.Sampler, categories)
		manufacturer := randsrc.Element(g.src.Sampler, g.profile.Manufacturers(category))
		scenario := randsrc.Pick(g.src.Sampler, g.profile.Scenarios)

		cost := g.profile.CostRange(category)
		leadTime := g.profile.LeadTime(category)

		p := domain.Product{
			SKU:          sku,
			Name:         g.productName(manufacturer),
			Category:     category,
			Manufacturer: manufacturer,
			CostPrice:    decimal.NewFromFloat(randsrc.FloatBetween(g.src.Numeric, cost.Min, cost.Max)).Round(2),
			LeadTimeDays: randsrc.IntBetween(g.src.Sampler, leadTime.Min, leadTime.Max),
			Status:       randsrc.Pick(g.src.Sampler, g.profile.Statuses),
			Scenario:     scenario,
		}

		stock := g.profile.StockFor(scenario)
		s := domain.StockSnapshot{
			SKU:       sku,
			Physical:  randsrc.IntBetween(g.src.Sampler, stock.Physical.Min, stock.Physical.Max),
			InTransit: randsrc.IntBetween(g.src.Sampler, stock.InTransit.Min, stock.InTransit.Max),
			UpdatedAt: g.asOf,
		}

		products = append(products, p)
		snapshots = append(snapshots, s)
	}

	return products, snapshots, nil
}

func (g *Generator) sku() string {
	f := g.src.Faker
	return strings.ToUpper(f.Numerify(f.Lexify(skuPattern)))
}

// productName joins the manufacturer with a faked catch phrase, capped at the
// profile's maximum name length in characters.
func (g *Generator) productName(manufacturer string) string {
	f := g.src.Faker
	phrase := capitalize(fmt.Sprintf("%s %s %s", f.Adjective(), f.BuzzWord(), f.Noun()))
	return truncate(manufacturer+" "+phrase, g.profile.NameMaxLength)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
