package generator

import (
	"fmt"
	"time"

	"github.com/hlubek/stockseed/domain"
	"github.com/hlubek/stockseed/randsrc"
)

// Options sets the output volume of each generator.
type Options struct {
	Products  int
	Sales     int
	Purchases int

	// Progress, when set, is called before each generation phase.
	Progress func(phase string)
}

// Dataset is the complete output of one run.
type Dataset struct {
	Products   []domain.Product
	Stock      []domain.StockSnapshot
	Sales      []domain.Sale
	Purchases  []domain.Purchase
	Parameters []domain.Parameter

	AsOf  time.Time
	Seeds randsrc.Seeds
}

// Generate runs the generators in dependency order: products first, then
// sales and purchases referencing them, then parameters.
func (g *Generator) Generate(opts Options) (*Dataset, error) {
	progress := opts.Progress
	if progress == nil {
		progress = func(string) {}
	}

	ds := &Dataset{AsOf: g.asOf, Seeds: g.src.Seeds()}
	var err error

	progress("products")
	ds.Products, ds.Stock, err = g.Products(opts.Products)
	if err != nil {
		return nil, fmt.Errorf("generating products: %w", err)
	}

	progress("sales")
	ds.Sales, err = g.Sales(opts.Sales, ds.Products)
	if err != nil {
		return nil, fmt.Errorf("generating sales: %w", err)
	}

	progress("purchases")
	ds.Purchases, err = g.Purchases(opts.Purchases, ds.Products)
	if err != nil {
		return nil, fmt.Errorf("generating purchases: %w", err)
	}

	progress("parameters")
	ds.Parameters = g.Parameters()

	return ds, nil
}
