package policy

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rcliao/inkind/internal/model"
)

// fileTiers mirrors Tiers in the policy file.
type fileTiers struct {
	SameEconomy      *float64 `yaml:"same_economy"`
	SameRegion       *float64 `yaml:"same_region"`
	Intercontinental *float64 `yaml:"intercontinental"`
}

// file is the on-disk policy layout. Omitted fields keep the built-in values.
type file struct {
	Version            string              `yaml:"version"`
	Methodology        string              `yaml:"methodology"`
	HourlyRates        map[string]float64  `yaml:"hourly_rates"`
	LaborMultiplier    *float64            `yaml:"labor_multiplier"`
	LaborAllocation    string              `yaml:"labor_allocation"`
	StandardTravelDays *int                `yaml:"standard_travel_days"`
	TravelDayMIEFactor *float64            `yaml:"travel_day_mie_factor"`
	AirfareBands       map[string]float64  `yaml:"airfare_bands"`
	AirfareTiers       fileTiers           `yaml:"airfare_tiers"`
	Regions            map[string][]string `yaml:"regions"`
	AdjacentRegions    map[string][]string `yaml:"adjacent_regions"`
}

// Load reads a policy file from path.
func Load(path string) (*Policy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy: %w", err)
	}
	p, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("policy %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a YAML policy document on top of the built-in defaults and validates the result.
func Parse(raw []byte) (*Policy, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	p := Default()
	if f.Version != "" {
		p.Version = f.Version
	}
	if f.Methodology != "" {
		p.Methodology = f.Methodology
	}
	if len(f.HourlyRates) > 0 {
		p.HourlyRates = make(map[model.Category]decimal.Decimal, len(f.HourlyRates))
		for label, rate := range f.HourlyRates {
			c, err := model.ParseCategory(label)
			if err != nil {
				return nil, fmt.Errorf("%w: hourly_rates: %v", ErrInvalidPolicy, err)
			}
			p.HourlyRates[c] = decimal.NewFromFloat(rate)
		}
	}
	if f.LaborMultiplier != nil {
		p.LaborMultiplier = decimal.NewFromFloat(*f.LaborMultiplier)
	}
	if f.LaborAllocation != "" {
		a, err := ParseLaborAllocation(f.LaborAllocation)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
		}
		p.LaborAllocation = a
	}
	if f.StandardTravelDays != nil {
		p.StandardTravelDays = *f.StandardTravelDays
	}
	if f.TravelDayMIEFactor != nil {
		p.TravelDayMIEFactor = decimal.NewFromFloat(*f.TravelDayMIEFactor)
	}
	if len(f.AirfareBands) > 0 {
		p.AirfareBands = make(map[string]decimal.Decimal, len(f.AirfareBands))
		for label, amt := range f.AirfareBands {
			p.AirfareBands[normalizeKey(label)] = decimal.NewFromFloat(amt)
		}
	}
	if f.AirfareTiers.SameEconomy != nil {
		p.AirfareTiers.SameEconomy = decimal.NewFromFloat(*f.AirfareTiers.SameEconomy)
	}
	if f.AirfareTiers.SameRegion != nil {
		p.AirfareTiers.SameRegion = decimal.NewFromFloat(*f.AirfareTiers.SameRegion)
	}
	if f.AirfareTiers.Intercontinental != nil {
		p.AirfareTiers.Intercontinental = decimal.NewFromFloat(*f.AirfareTiers.Intercontinental)
	}
	if len(f.Regions) > 0 {
		p.Regions = invertRegions(f.Regions)
	}
	if f.AdjacentRegions != nil {
		p.AdjacentRegions = copyAdjacent(f.AdjacentRegions)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
