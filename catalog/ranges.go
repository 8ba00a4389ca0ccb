package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// IntRange is an inclusive integer range, written as [min, max] in YAML.
type IntRange struct {
	Min int
	Max int
}

func (r *IntRange) UnmarshalYAML(value *yaml.Node) error {
	var pair []int
	if err := value.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("line %d: range needs exactly 2 values, got %d", value.Line, len(pair))
	}
	r.Min, r.Max = pair[0], pair[1]
	return nil
}

func (r IntRange) MarshalYAML() (interface{}, error) {
	return []int{r.Min, r.Max}, nil
}

func (r IntRange) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

func (r IntRange) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}

// FloatRange is a closed float range, written as [min, max] in YAML.
type FloatRange struct {
	Min float64
	Max float64
}

func (r *FloatRange) UnmarshalYAML(value *yaml.Node) error {
	var pair []float64
	if err := value.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("line %d: range needs exactly 2 values, got %d", value.Line, len(pair))
	}
	r.Min, r.Max = pair[0], pair[1]
	return nil
}

func (r FloatRange) MarshalYAML() (interface{}, error) {
	return []float64{r.Min, r.Max}, nil
}

func (r FloatRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r FloatRange) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}
