package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hlubek/stockseed/domain"
	"github.com/hlubek/stockseed/randsrc"
)

//go:embed default.yaml
var defaultProfile []byte

// defaultKey selects the fallback entry of scenario-conditioned tables.
const defaultKey = "default"

type CategorySpec struct {
	Name          domain.Category `yaml:"name"`
	LeadTime      IntRange        `yaml:"lead_time"`
	Margin        FloatRange      `yaml:"margin"`
	Cost          FloatRange      `yaml:"cost"`
	MinStock      int             `yaml:"min_stock"`
	ReorderPoint  int             `yaml:"reorder_point"`
	Manufacturers []string        `yaml:"manufacturers"`
}

type StockRange struct {
	Physical  IntRange `yaml:"physical"`
	InTransit IntRange `yaml:"in_transit"`
}

type GlobalParameter struct {
	Kind  domain.ParameterKind `yaml:"kind"`
	Value string               `yaml:"value"`
}

type Profile struct {
	Scenarios     []randsrc.Choice[domain.Scenario] `yaml:"scenarios"`
	Statuses      []randsrc.Choice[domain.Status]   `yaml:"statuses"`
	NameMaxLength int                               `yaml:"name_max_length"`
	Categories    []CategorySpec                    `yaml:"categories"`

	Stock            map[string]StockRange             `yaml:"stock"`
	SaleQuantity     map[string][]randsrc.Choice[int]  `yaml:"sale_quantity"`
	PurchaseQuantity map[string]IntRange               `yaml:"purchase_quantity"`

	Discounts           []randsrc.Choice[int] `yaml:"discounts"`
	UnitPriceVariation  FloatRange            `yaml:"unit_price_variation"`
	SalesWindowDays     int                   `yaml:"sales_window_days"`
	PurchasesWindowDays int                   `yaml:"purchases_window_days"`

	Globals []GlobalParameter `yaml:"globals"`

	byCategory map[domain.Category]*CategorySpec
}

// Default returns the embedded profile.
func Default() (*Profile, error) {
	return Parse(defaultProfile)
}

// LoadFile loads and validates a YAML profile from the given path.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses and validates YAML profile data.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}

	applyDefaults(&p)

	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.index()
	return &p, nil
}

func applyDefaults(p *Profile) {
	if p.NameMaxLength == 0 {
		p.NameMaxLength = 200
	}
	if p.SalesWindowDays == 0 {
		p.SalesWindowDays = 365
	}
	if p.PurchasesWindowDays == 0 {
		p.PurchasesWindowDays = 730
	}
}

func (p *Profile) index() {
	p.byCategory = make(map[domain.Category]*CategorySpec, len(p.Categories))
	for i := range p.Categories {
		p.byCategory[p.Categories[i].Name] = &p.Categories[i]
	}
}

// Marshal serializes the profile back to YAML.
func (p *Profile) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}

// CategoryNames returns the catalog's categories in profile order.
func (p *Profile) CategoryNames() []domain.Category {
	names := make([]domain.Category, len(p.Categories))
	for i, c := range p.Categories {
		names[i] = c.Name
	}
	return names
}

// Category returns the spec of c. Categories drawn from CategoryNames always hit.
func (p *Profile) Category(c domain.Category) (CategorySpec, bool) {
	spec, ok := p.byCategory[c]
	if !ok {
		return CategorySpec{}, false
	}
	return *spec, true
}

func (p *Profile) LeadTime(c domain.Category) IntRange {
	spec, _ := p.Category(c)
	return spec.LeadTime
}

func (p *Profile) Margin(c domain.Category) FloatRange {
	spec, _ := p.Category(c)
	return spec.Margin
}

func (p *Profile) CostRange(c domain.Category) FloatRange {
	spec, _ := p.Category(c)
	return spec.Cost
}

func (p *Profile) Manufacturers(c domain.Category) []string {
	spec, _ := p.Category(c)
	return spec.Manufacturers
}

func (p *Profile) StockFor(s domain.Scenario) StockRange {
	if r, ok := p.Stock[string(s)]; ok {
		return r
	}
	return p.Stock[defaultKey]
}

func (p *Profile) SaleQuantityFor(s domain.Scenario) []randsrc.Choice[int] {
	if w, ok := p.SaleQuantity[string(s)]; ok {
		return w
	}
	return p.SaleQuantity[defaultKey]
}

func (p *Profile) PurchaseQuantityFor(s domain.Scenario) IntRange {
	if r, ok := p.PurchaseQuantity[string(s)]; ok {
		return r
	}
	return p.PurchaseQuantity[defaultKey]
}
