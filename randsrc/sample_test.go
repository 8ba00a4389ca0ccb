package randsrc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickRespectsWeights(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	choices := []Choice[string]{
		{Value: "never", Weight: 0},
		{Value: "often", Weight: 90},
		{Value: "rare", Weight: 10},
	}

	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		counts[Pick(r, choices)]++
	}

	assert.Zero(t, counts["never"])
	assert.InDelta(t, 9000, counts["often"], 300)
	assert.InDelta(t, 1000, counts["rare"], 300)
}

func TestPickSingleChoice(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		assert.Equal(t, 3, Pick(r, []Choice[int]{{Value: 3, Weight: 1}}))
	}
}

func TestTotalWeight(t *testing.T) {
	assert.Equal(t, 100.0, TotalWeight([]Choice[int]{{1, 60}, {2, 25}, {3, 10}, {4, 5}}))
	assert.Zero(t, TotalWeight[int](nil))
}

func TestIntBetween(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := IntBetween(r, 0, 5)
		require.GreaterOrEqual(t, v, 0)
		require.LessOrEqual(t, v, 5)
		seen[v] = true
	}
	assert.Len(t, seen, 6, "both bounds are reachable")
	assert.Equal(t, 4, IntBetween(r, 4, 4))
}

func TestFloatBetween(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 2000; i++ {
		v := FloatBetween(r, 0.8, 1.2)
		require.GreaterOrEqual(t, v, 0.8)
		require.Less(t, v, 1.2)
	}
}

func TestElement(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	items := []string{"a", "b", "c"}
	for i := 0; i < 100; i++ {
		assert.Contains(t, items, Element(r, items))
	}
}

func TestSourceIsReproducible(t *testing.T) {
	seeds := Seeds{Sampler: 42, Numeric: 42, Faker: 42}
	a, b := New(seeds), New(seeds)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Sampler.Int63(), b.Sampler.Int63())
		assert.Equal(t, a.Numeric.Float64(), b.Numeric.Float64())
		assert.Equal(t, a.Faker.Lexify("???-####"), b.Faker.Lexify("???-####"))
	}
	assert.Equal(t, seeds, a.Seeds())
	assert.Equal(t, "sampler=42 numeric=42 faker=42", seeds.String())
}

func TestSubStreamsAreIndependent(t *testing.T) {
	a := New(Seeds{Sampler: 1, Numeric: 2, Faker: 3})
	b := New(Seeds{Sampler: 1, Numeric: 2, Faker: 3})

	// draining one stream must not shift the others
	for i := 0; i < 10; i++ {
		a.Sampler.Int63()
	}
	assert.Equal(t, a.Numeric.Float64(), b.Numeric.Float64())
	assert.Equal(t, a.Faker.Lexify("????"), b.Faker.Lexify("????"))
}
