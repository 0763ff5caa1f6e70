// Package policy holds the versioned valuation constants: hourly rates, the
// labor multiplier, per-diem travel rules, and airfare tables.
package policy

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rcliao/inkind/internal/model"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownBand     = errors.New("unknown airfare band")
	ErrInvalidPolicy   = errors.New("invalid policy")
)

// LaborAllocation selects how labor value is spread over several engagements.
type LaborAllocation string

const (
	// LaborSplit divides the labor value evenly across the engagements.
	LaborSplit LaborAllocation = "split"
	// LaborPerEngagement repeats the labor value on every engagement; the
	// caller has already scoped the hours to one engagement.
	LaborPerEngagement LaborAllocation = "per_engagement"
)

// ParseLaborAllocation parses an allocation name. "per-engagement" is accepted
// for per_engagement; the empty string is returned unchanged.
func ParseLaborAllocation(s string) (LaborAllocation, error) {
	a := LaborAllocation(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	switch a {
	case "", LaborSplit, LaborPerEngagement:
		return a, nil
	}
	return "", fmt.Errorf("labor allocation %q must be %q or %q", s, LaborSplit, LaborPerEngagement)
}

// Tiers are the region-matrix airfare amounts.
type Tiers struct {
	SameEconomy      decimal.Decimal `json:"same_economy"`
	SameRegion       decimal.Decimal `json:"same_region"`
	Intercontinental decimal.Decimal `json:"intercontinental"`
}

// Policy is one version of the valuation methodology. Treat it as read-only
// once built; several versions may coexist in one process.
type Policy struct {
	Version            string                             `json:"version"`
	Methodology        string                             `json:"methodology"`
	HourlyRates        map[model.Category]decimal.Decimal `json:"hourly_rates"`
	LaborMultiplier    decimal.Decimal                    `json:"labor_multiplier"`
	LaborAllocation    LaborAllocation                    `json:"labor_allocation"`
	StandardTravelDays int                                `json:"standard_travel_days"`
	TravelDayMIEFactor decimal.Decimal                    `json:"travel_day_mie_factor"`
	AirfareBands       map[string]decimal.Decimal         `json:"airfare_bands"`
	AirfareTiers       Tiers                              `json:"airfare_tiers"`

	// Regions maps a lower-cased economy name to its region.
	Regions map[string]string `json:"regions"`

	// AdjacentRegions lists region pairs priced at the same-region tier.
	AdjacentRegions map[string][]string `json:"adjacent_regions,omitempty"`
}

// Rate returns the hourly rate for c.
func (p *Policy) Rate(c model.Category) (decimal.Decimal, error) {
	r, ok := p.HourlyRates[c]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}
	return r, nil
}

// MustRate is like Rate but panics on an unknown category. Categories come
// from a closed enum, so a miss is an integration bug.
func (p *Policy) MustRate(c model.Category) decimal.Decimal {
	r, err := p.Rate(c)
	if err != nil {
		panic(err)
	}
	return r
}

// Band returns the flat airfare for a trip-type label.
func (p *Policy) Band(label string) (decimal.Decimal, error) {
	amt, ok := p.AirfareBands[normalizeKey(label)]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownBand, label, strings.Join(p.BandLabels(), ", "))
	}
	return amt, nil
}

// BandLabels returns the configured band labels in sorted order.
func (p *Policy) BandLabels() []string {
	labels := make([]string, 0, len(p.AirfareBands))
	for l := range p.AirfareBands {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// Region returns the region of an economy, matched case-insensitively.
func (p *Policy) Region(economy string) (string, bool) {
	r, ok := p.Regions[normalizeKey(economy)]
	return r, ok
}

// Adjacent reports whether two regions are listed as neighbours.
func (p *Policy) Adjacent(a, b string) bool {
	for _, n := range p.AdjacentRegions[a] {
		if n == b {
			return true
		}
	}
	for _, n := range p.AdjacentRegions[b] {
		if n == a {
			return true
		}
	}
	return false
}

// Validate checks the policy for internal consistency.
func (p *Policy) Validate() error {
	var problems []string
	if p.Version == "" {
		problems = append(problems, "version is required")
	}
	for _, c := range model.Categories {
		r, ok := p.HourlyRates[c]
		if !ok {
			problems = append(problems, fmt.Sprintf("no hourly rate for %q", c))
		} else if !r.IsPositive() {
			problems = append(problems, fmt.Sprintf("hourly rate for %q must be positive", c))
		}
	}
	for c := range p.HourlyRates {
		if !model.ValidCategories[c] {
			problems = append(problems, fmt.Sprintf("hourly rate for unknown category %q", c))
		}
	}
	if !p.LaborMultiplier.IsPositive() {
		problems = append(problems, "labor_multiplier must be positive")
	}
	switch p.LaborAllocation {
	case LaborSplit, LaborPerEngagement:
	default:
		problems = append(problems, fmt.Sprintf("labor_allocation %q must be %q or %q", p.LaborAllocation, LaborSplit, LaborPerEngagement))
	}
	if p.StandardTravelDays < 0 {
		problems = append(problems, "standard_travel_days must not be negative")
	}
	if p.TravelDayMIEFactor.IsNegative() || p.TravelDayMIEFactor.GreaterThan(decimal.NewFromInt(1)) {
		problems = append(problems, "travel_day_mie_factor must be between 0 and 1")
	}
	for l, amt := range p.AirfareBands {
		if amt.IsNegative() {
			problems = append(problems, fmt.Sprintf("airfare band %q must not be negative", l))
		}
	}
	t := p.AirfareTiers
	if t.SameEconomy.IsNegative() || t.SameRegion.IsNegative() || t.Intercontinental.IsNegative() {
		problems = append(problems, "airfare tiers must not be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPolicy, strings.Join(problems, "; "))
	}
	return nil
}
