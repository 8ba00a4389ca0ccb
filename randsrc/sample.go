package randsrc

import "math/rand"

// Choice is a value with a relative weight.
type Choice[T any] struct {
	Value  T       `yaml:"value"`
	Weight float64 `yaml:"weight"`
}

// Pick samples one value from choices with probability proportional to its
// weight. choices must be non-empty with a positive total weight.
func Pick[T any](r *rand.Rand, choices []Choice[T]) T {
	var total float64
	for _, c := range choices {
		total += c.Weight
	}

	x := r.Float64() * total
	var cum float64
	for _, c := range choices {
		cum += c.Weight
		if x < cum {
			return c.Value
		}
	}
	// float rounding can leave x == total; fall back to the last weighted value
	for i := len(choices) - 1; i >= 0; i-- {
		if choices[i].Weight > 0 {
			return choices[i].Value
		}
	}
	return choices[len(choices)-1].Value
}

// TotalWeight sums the weights of choices.
func TotalWeight[T any](choices []Choice[T]) float64 {
	var total float64
	for _, c := range choices {
		total += c.Weight
	}
	return total
}

// Element picks one element of items uniformly. items must be non-empty.
func Element[T any](r *rand.Rand, items []T) T {
	return items[r.Intn(len(items))]
}

// IntBetween returns a uniform integer in [min, max].
func IntBetween(r *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

// FloatBetween returns a uniform float in [min, max).
func FloatBetween(r *rand.Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}
