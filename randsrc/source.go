// Package randsrc provides the explicit random handle threaded through every
// generator. A Source owns three independently seeded sub-streams so that a
// run is reproducible from its seed triple alone.
package randsrc

import (
	"fmt"
	"math/rand"

	"github.com/brianvoe/gofakeit/v6"
)

// Seeds is the seed triple of a run. A zero Faker seed makes gofakeit pick a
// crypto-random seed, so runs are then only reproducible up to the faked text.
type Seeds struct {
	Sampler int64
	Numeric int64
	Faker   int64
}

func (s Seeds) String() string {
	return fmt.Sprintf("sampler=%d numeric=%d faker=%d", s.Sampler, s.Numeric, s.Faker)
}

// Source bundles the sub-streams:
//   - Sampler drives choices, weighted picks and integer ranges,
//   - Numeric drives continuous draws (prices, margins, variations),
//   - Faker produces identifiers, descriptive text and dates.
type Source struct {
	Sampler *rand.Rand
	Numeric *rand.Rand
	Faker   *gofakeit.Faker

	seeds Seeds
}

func New(seeds Seeds) *Source {
	return &Source{
		Sampler: rand.New(rand.NewSource(seeds.Sampler)),
		Numeric: rand.New(rand.NewSource(seeds.Numeric)),
		Faker:   gofakeit.New(seeds.Faker),
		seeds:   seeds,
	}
}

func (s *Source) Seeds() Seeds {
	return s.seeds
}
