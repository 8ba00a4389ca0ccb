package domain

type ParameterKind string

const (
	ParameterMinStock      ParameterKind = "MIN_STOCK"
	ParameterReorderPoint  ParameterKind = "REORDER_POINT"
	ParameterSafetyMargin  ParameterKind = "SAFETY_MARGIN"
	ParameterForecastDays  ParameterKind = "FORECAST_DAYS"
	ParameterCalcFrequency ParameterKind = "CALC_FREQUENCY"
)

func (k ParameterKind) Valid() bool {
	switch k {
	case ParameterMinStock, ParameterReorderPoint, ParameterSafetyMargin, ParameterForecastDays, ParameterCalcFrequency:
		return true
	}
	return false
}

// Parameter is a configuration row. A nil Category marks a global parameter.
type Parameter struct {
	Kind     ParameterKind `col:"parameter_type"`
	Category *Category     `col:"category"`
	Value    string        `col:"value"`
}

// CategoryRef returns a pointer to a copy of c, for scoped parameters.
func CategoryRef(c Category) *Category {
	return &c
}
