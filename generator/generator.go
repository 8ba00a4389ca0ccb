// Package generator synthesizes mutually consistent inventory records:
// products with their stock snapshots, sales and purchases referencing those
// products, and the static configuration parameters.
//
// Every draw goes through the randsrc.Source handed to New, and every date
// window is anchored on the generation clock, so a Generator built from the
// same profile, seeds and clock always yields the same Dataset.
package generator

import (
	"errors"
	"time"

	"github.com/hlubek/stockseed/catalog"
	"github.com/hlubek/stockseed/domain"
	"github.com/hlubek/stockseed/randsrc"
)

var (
	// ErrEmptyDomain is returned when sales are requested but no product is ACTIVE.
	ErrEmptyDomain = errors.New("no active products to reference")
	// ErrIdentifierExhausted is returned when more products are requested than
	// distinct SKUs exist.
	ErrIdentifierExhausted = errors.New("identifier space exhausted")
)

type Generator struct {
	profile *catalog.Profile
	src     *randsrc.Source
	asOf    time.Time
}

// New returns a Generator sampling from profile through src. asOf is the
// generation clock: date windows end on its day and stock snapshots carry it.
func New(profile *catalog.Profile, src *randsrc.Source, asOf time.Time) *Generator {
	return &Generator{
		profile: profile,
		src:     src,
		asOf:    asOf.UTC().Truncate(time.Second),
	}
}

func (g *Generator) AsOf() time.Time {
	return g.asOf
}

// dateBetween draws a day uniformly from [start, end], both inclusive.
func (g *Generator) dateBetween(start, end domain.Date) domain.Date {
	last := end.Time.Add(24*time.Hour - time.Nanosecond)
	return domain.DateOf(g.src.Faker.DateRange(start.Time, last))
}

// window returns the trailing window of the given number of days ending on
// the generation day.
func (g *Generator) window(days int) (domain.Date, domain.Date) {
	end := domain.DateOf(g.asOf)
	return end.AddDays(-days), end
}
