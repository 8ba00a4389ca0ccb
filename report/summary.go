// Package report derives descriptive statistics from a generated dataset and
// prints them, together with the run's progress lines, to the console.
package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/hlubek/stockseed/domain"
	"github.com/hlubek/stockseed/generator"
)

type ScenarioCount struct {
	Scenario domain.Scenario
	Count    int
}

type CategoryRevenue struct {
	Category domain.Category
	Revenue  decimal.Decimal
	Sales    int
	Units    int
}

type Summary struct {
	Products   int
	Categories int
	Sales      int
	Purchases  int
	Parameters int

	Scenarios []ScenarioCount

	MinLeadTime int
	MaxLeadTime int

	FirstSale, LastSale         domain.Date
	FirstPurchase, LastPurchase domain.Date

	Revenue []CategoryRevenue
}

// Summarize scans the dataset once per collection. It never mutates ds.
func Summarize(ds *generator.Dataset) Summary {
	s := Summary{
		Products:   len(ds.Products),
		Sales:      len(ds.Sales),
		Purchases:  len(ds.Purchases),
		Parameters: len(ds.Parameters),
	}

	categories := map[domain.Category]bool{}
	scenarios := map[domain.Scenario]int{}
	categoryOf := make(map[string]domain.Category, len(ds.Products))
	for i, p := range ds.Products {
		categories[p.Category] = true
		scenarios[p.Scenario]++
		categoryOf[p.SKU] = p.Category
		if i == 0 || p.LeadTimeDays < s.MinLeadTime {
			s.MinLeadTime = p.LeadTimeDays
		}
		if i == 0 || p.LeadTimeDays > s.MaxLeadTime {
			s.MaxLeadTime = p.LeadTimeDays
		}
	}
	s.Categories = len(categories)
	for _, sc := range domain.Scenarios {
		if n := scenarios[sc]; n > 0 {
			s.Scenarios = append(s.Scenarios, ScenarioCount{Scenario: sc, Count: n})
		}
	}

	revenue := map[domain.Category]*CategoryRevenue{}
	for i, sale := range ds.Sales {
		if i == 0 || sale.SaleDate.Before(s.FirstSale.Time) {
			s.FirstSale = sale.SaleDate
		}
		if i == 0 || sale.SaleDate.After(s.LastSale.Time) {
			s.LastSale = sale.SaleDate
		}

		c := categoryOf[sale.SKU]
		r, ok := revenue[c]
		if !ok {
			r = &CategoryRevenue{Category: c}
			revenue[c] = r
		}
		r.Revenue = r.Revenue.Add(sale.TotalValue)
		r.Sales++
		r.Units += sale.Quantity
	}
	for _, r := range revenue {
		s.Revenue = append(s.Revenue, *r)
	}
	sort.Slice(s.Revenue, func(i, j int) bool {
		return s.Revenue[i].Category < s.Revenue[j].Category
	})

	for i, p := range ds.Purchases {
		if i == 0 || p.PurchaseDate.Before(s.FirstPurchase.Time) {
			s.FirstPurchase = p.PurchaseDate
		}
		if i == 0 || p.PurchaseDate.After(s.LastPurchase.Time) {
			s.LastPurchase = p.PurchaseDate
		}
	}

	return s
}

// Print writes the human-readable report.
func Print(w io.Writer, s Summary) {
	heading := color.New(color.Bold)

	fmt.Fprintln(w)
	heading.Fprintln(w, "GENERATED DATA REPORT:")
	fmt.Fprintf(w, "%d products in %d categories\n", s.Products, s.Categories)
	fmt.Fprintf(w, "%d sales in the last 12 months\n", s.Sales)
	fmt.Fprintf(w, "%d purchases in the last 24 months\n", s.Purchases)
	fmt.Fprintf(w, "%d configuration parameters\n", s.Parameters)

	fmt.Fprintln(w, "Special scenarios:")
	for _, sc := range s.Scenarios {
		fmt.Fprintf(w, "   - %s products: %d\n", sc.Scenario, sc.Count)
	}

	if s.Products > 0 {
		fmt.Fprintf(w, "Lead times: %d-%d days\n", s.MinLeadTime, s.MaxLeadTime)
	}
	if s.Sales > 0 {
		fmt.Fprintf(w, "Sales period: %s to %s\n", s.FirstSale, s.LastSale)
	}
	if s.Purchases > 0 {
		fmt.Fprintf(w, "Purchases period: %s to %s\n", s.FirstPurchase, s.LastPurchase)
	}

	if len(s.Revenue) == 0 {
		return
	}
	fmt.Fprintln(w)
	heading.Fprintln(w, "SALES BY CATEGORY:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "category\ttotal revenue\tsales\tunits sold\t")
	for _, r := range s.Revenue {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t\n", r.Category, r.Revenue.StringFixed(2), r.Sales, r.Units)
	}
	tw.Flush()
}
