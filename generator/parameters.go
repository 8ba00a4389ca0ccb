package generator

import (
	"strconv"

	"github.com/hlubek/stockseed/domain"
)

// Parameters enumerates the static configuration rows: minimum stock for
// every category, reorder point for every category, then the globals.
func (g *Generator) Parameters() []domain.Parameter {
	params := make([]domain.Parameter, 0, 2*len(g.profile.Categories)+len(g.profile.Globals))

	for _, c := range g.profile.Categories {
		params = append(params, domain.Parameter{
			Kind:     domain.ParameterMinStock,
			Category: domain.CategoryRef(c.Name),
			Value:    strconv.Itoa(c.MinStock),
		})
	}
	for _, c := range g.profile.Categories {
		params = append(params, domain.Parameter{
			Kind:     domain.ParameterReorderPoint,
			Category: domain.CategoryRef(c.Name),
			Value:    strconv.Itoa(c.ReorderPoint),
		})
	}
	for _, global := range g.profile.Globals {
		params = append(params, domain.Parameter{
			Kind:  global.Kind,
			Value: global.Value,
		})
	}

	return params
}
