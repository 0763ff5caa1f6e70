package valuation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rcliao/inkind/internal/model"
	"github.com/rcliao/inkind/internal/policy"
)

// Airfare tiers of the region matrix.
const (
	TierSameEconomy      = "same-economy"
	TierSameRegion       = "same-region"
	TierIntercontinental = "intercontinental"
)

// ManualAirfare accepts a fare entered by the caller.
func ManualAirfare(amount decimal.Decimal) (model.Suggested[decimal.Decimal], error) {
	if amount.IsNegative() {
		return model.Suggested[decimal.Decimal]{}, fmt.Errorf("airfare %s: %w", amount, ErrNegativeAmount)
	}
	return model.Suggested[decimal.Decimal]{
		Value:     amount.Round(2),
		Rationale: "entered manually",
	}, nil
}

// BandAirfare returns the flat fare for a trip-type label. Band labels are
// configuration, so an unknown label is an error.
func BandAirfare(p *policy.Policy, label string) (model.Suggested[decimal.Decimal], error) {
	amt, err := p.Band(label)
	if err != nil {
		return model.Suggested[decimal.Decimal]{}, err
	}
	return model.Suggested[decimal.Decimal]{
		Value:     amt,
		Rationale: fmt.Sprintf("flat %q band from policy %s", strings.ToLower(strings.TrimSpace(label)), p.Version),
	}, nil
}

// RegionAirfare prices a trip by the region matrix. When either economy has
// no known region it falls back to the intercontinental tier.
func RegionAirfare(p *policy.Policy, origin, destination string) model.Suggested[decimal.Decimal] {
	tier, why := airfareTier(p, origin, destination)
	var amt decimal.Decimal
	switch tier {
	case TierSameEconomy:
		amt = p.AirfareTiers.SameEconomy
	case TierSameRegion:
		amt = p.AirfareTiers.SameRegion
	default:
		amt = p.AirfareTiers.Intercontinental
	}
	return model.Suggested[decimal.Decimal]{
		Value:     amt,
		Rationale: fmt.Sprintf("%s tier: %s", tier, why),
	}
}

func airfareTier(p *policy.Policy, origin, destination string) (string, string) {
	from, okFrom := p.Region(origin)
	to, okTo := p.Region(destination)
	switch {
	case !okFrom && !okTo:
		return TierIntercontinental, fmt.Sprintf("regions of %q and %q unknown, defaulted to the highest tier", origin, destination)
	case !okFrom:
		return TierIntercontinental, fmt.Sprintf("region of %q unknown, defaulted to the highest tier", origin)
	case !okTo:
		return TierIntercontinental, fmt.Sprintf("region of %q unknown, defaulted to the highest tier", destination)
	case strings.EqualFold(strings.TrimSpace(origin), strings.TrimSpace(destination)):
		return TierSameEconomy, fmt.Sprintf("travel within %s", strings.TrimSpace(origin))
	case from == to:
		return TierSameRegion, fmt.Sprintf("both economies in %s", from)
	case p.Adjacent(from, to):
		return TierSameRegion, fmt.Sprintf("%s and %s are adjacent regions", from, to)
	}
	return TierIntercontinental, fmt.Sprintf("%s to %s", from, to)
}
