package policy

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rcliao/inkind/internal/model"
)

const (
	DefaultVersion            = "v1.0.0"
	DefaultMethodology        = "docs/ot5_methodology.md"
	DefaultStandardTravelDays = 2
)

var defaultRegions = map[string][]string{
	"Americas":       {"United States", "Canada", "Mexico", "Chile", "Peru"},
	"Northeast Asia": {"Japan", "Korea", "China", "Hong Kong, China", "Chinese Taipei", "Russia"},
	"Southeast Asia": {"Brunei Darussalam", "Indonesia", "Malaysia", "Philippines", "Singapore", "Thailand", "Viet Nam"},
	"Oceania":        {"Australia", "New Zealand", "Papua New Guinea"},
}

var defaultAdjacent = map[string][]string{
	"Northeast Asia": {"Southeast Asia"},
	"Southeast Asia": {"Oceania"},
}

// Default returns the v1.0.0 methodology values. Each call builds a fresh copy.
func Default() *Policy {
	return &Policy{
		Version:     DefaultVersion,
		Methodology: DefaultMethodology,
		HourlyRates: map[model.Category]decimal.Decimal{
			model.CategoryExecutive:        decimal.NewFromInt(149),
			model.CategorySeniorSpecialist: decimal.NewFromInt(131),
		},
		// presentation (1x) + preparation (2x) + follow-up (0.5x)
		LaborMultiplier:    decimal.RequireFromString("3.5"),
		LaborAllocation:    LaborSplit,
		StandardTravelDays: DefaultStandardTravelDays,
		TravelDayMIEFactor: decimal.RequireFromString("0.75"),
		AirfareBands: map[string]decimal.Decimal{
			"domestic":         decimal.NewFromInt(500),
			"regional":         decimal.NewFromInt(900),
			"intercontinental": decimal.NewFromInt(1600),
		},
		AirfareTiers: Tiers{
			SameEconomy:      decimal.NewFromInt(400),
			SameRegion:       decimal.NewFromInt(900),
			Intercontinental: decimal.NewFromInt(1800),
		},
		Regions:         invertRegions(defaultRegions),
		AdjacentRegions: copyAdjacent(defaultAdjacent),
	}
}

func invertRegions(byRegion map[string][]string) map[string]string {
	out := make(map[string]string)
	for region, economies := range byRegion {
		for _, e := range economies {
			out[normalizeKey(e)] = region
		}
	}
	return out
}

func copyAdjacent(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for k, v := range in {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
