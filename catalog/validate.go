package catalog

import (
	"errors"
	"fmt"

	"github.com/hlubek/stockseed/domain"
	"github.com/hlubek/stockseed/randsrc"
)

// Validate checks that every table can be sampled from.
func (p *Profile) Validate() error {
	var errs []error
	add := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if err := validateChoices("scenarios", p.Scenarios, func(s domain.Scenario) bool { return s.Valid() }); err != nil {
		errs = append(errs, err)
	}
	if err := validateChoices("statuses", p.Statuses, func(s domain.Status) bool { return s.Valid() }); err != nil {
		errs = append(errs, err)
	}
	if p.NameMaxLength < 0 {
		add("name_max_length must not be negative")
	}

	if len(p.Categories) == 0 {
		add("categories: at least one category is required")
	}
	seen := map[domain.Category]bool{}
	for _, c := range p.Categories {
		if !c.Name.Valid() {
			add("categories: unknown category %q", c.Name)
		}
		if seen[c.Name] {
			add("categories: duplicate category %q", c.Name)
		}
		seen[c.Name] = true
		if c.LeadTime.Min < 0 || c.LeadTime.Min > c.LeadTime.Max {
			add("categories[%s]: invalid lead_time %s", c.Name, c.LeadTime)
		}
		if c.Margin.Min < 0 || c.Margin.Min > c.Margin.Max {
			add("categories[%s]: invalid margin %s", c.Name, c.Margin)
		}
		if c.Cost.Min <= 0 || c.Cost.Min > c.Cost.Max {
			add("categories[%s]: invalid cost %s", c.Name, c.Cost)
		}
		if len(c.Manufacturers) == 0 {
			add("categories[%s]: at least one manufacturer is required", c.Name)
		}
	}

	if err := validateScenarioKeys("stock", keys(p.Stock)); err != nil {
		errs = append(errs, err)
	}
	for k, r := range p.Stock {
		if r.Physical.Min < 0 || r.Physical.Min > r.Physical.Max {
			add("stock[%s]: invalid physical %s", k, r.Physical)
		}
		if r.InTransit.Min < 0 || r.InTransit.Min > r.InTransit.Max {
			add("stock[%s]: invalid in_transit %s", k, r.InTransit)
		}
	}

	if err := validateScenarioKeys("sale_quantity", keys(p.SaleQuantity)); err != nil {
		errs = append(errs, err)
	}
	for k, w := range p.SaleQuantity {
		if err := validateChoices("sale_quantity["+k+"]", w, func(q int) bool { return q > 0 }); err != nil {
			errs = append(errs, err)
		}
	}

	if err := validateScenarioKeys("purchase_quantity", keys(p.PurchaseQuantity)); err != nil {
		errs = append(errs, err)
	}
	for k, r := range p.PurchaseQuantity {
		if r.Min <= 0 || r.Min > r.Max {
			add("purchase_quantity[%s]: invalid range %s", k, r)
		}
	}

	if err := validateChoices("discounts", p.Discounts, func(d int) bool { return d >= 0 && d <= 100 }); err != nil {
		errs = append(errs, err)
	}
	if v := p.UnitPriceVariation; v.Min <= 0 || v.Min > v.Max {
		add("unit_price_variation: invalid range %s", v)
	}
	if p.SalesWindowDays < 0 || p.PurchasesWindowDays < 0 {
		add("window days must not be negative")
	}

	for _, g := range p.Globals {
		if !g.Kind.Valid() {
			add("globals: unknown parameter kind %q", g.Kind)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid profile: %w", errors.Join(errs...))
	}
	return nil
}

func validateChoices[T any](name string, choices []randsrc.Choice[T], valid func(T) bool) error {
	if len(choices) == 0 {
		return fmt.Errorf("%s: at least one choice is required", name)
	}
	for _, c := range choices {
		if c.Weight < 0 {
			return fmt.Errorf("%s: negative weight for %v", name, c.Value)
		}
		if !valid(c.Value) {
			return fmt.Errorf("%s: invalid value %v", name, c.Value)
		}
	}
	if randsrc.TotalWeight(choices) <= 0 {
		return fmt.Errorf("%s: total weight must be positive", name)
	}
	return nil
}

func validateScenarioKeys(name string, ks []string) error {
	hasDefault := false
	for _, k := range ks {
		if k == defaultKey {
			hasDefault = true
			continue
		}
		if !domain.Scenario(k).Valid() {
			return fmt.Errorf("%s: unknown scenario %q", name, k)
		}
	}
	if !hasDefault {
		return fmt.Errorf("%s: a %q entry is required", name, defaultKey)
	}
	return nil
}

func keys[V any](m map[string]V) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	return ks
}
