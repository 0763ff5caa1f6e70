package valuation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rcliao/inkind/internal/model"
	"github.com/rcliao/inkind/internal/policy"
)

// Allocation is the input to Aggregate: one speaker's labor and the
// per-engagement share of one trip, to be spread over Engagements.
type Allocation struct {
	LaborValue      decimal.Decimal
	AllocatedTravel decimal.Decimal
	Engagements     []model.Engagement
	Mode            policy.LaborAllocation

	Speaker            string
	Firm               string
	Economy            string
	Category           model.Category
	CategoryRationale  string
	DocumentationLinks string
	PolicyVersion      string
	TripID             string
}

// LaborShare returns the labor carried by each engagement under mode.
func LaborShare(labor decimal.Decimal, n int, mode policy.LaborAllocation) decimal.Decimal {
	if mode == policy.LaborSplit && n > 1 {
		return labor.Div(decimal.NewFromInt(int64(n))).Round(2)
	}
	return labor
}

// Aggregate builds one contribution record per engagement, each with the
// same amount. Travel is assumed already divided; labor is divided only
// under policy.LaborSplit. It performs no I/O and assigns no IDs.
func Aggregate(a Allocation) ([]model.Contribution, error) {
	if len(a.Engagements) == 0 {
		return nil, ErrNoEngagements
	}
	switch a.Mode {
	case policy.LaborSplit, policy.LaborPerEngagement:
	default:
		return nil, fmt.Errorf("unknown labor allocation %q", a.Mode)
	}

	labor := LaborShare(a.LaborValue, len(a.Engagements), a.Mode)
	travel := a.AllocatedTravel.Round(2)
	amount := labor.Add(travel)

	records := make([]model.Contribution, 0, len(a.Engagements))
	for _, e := range a.Engagements {
		records = append(records, model.Contribution{
			Engagement:         e.Ref,
			Speaker:            a.Speaker,
			Firm:               a.Firm,
			Economy:            a.Economy,
			Category:           a.Category,
			CategoryRationale:  a.CategoryRationale,
			Amount:             amount,
			LaborValue:         labor,
			TravelValue:        travel,
			ContributionDate:   e.Date,
			FiscalYear:         FiscalYear(e.Date),
			ResourceType:       model.ResourceTypeInKind,
			TripID:             a.TripID,
			PolicyVersion:      a.PolicyVersion,
			DocumentationLinks: a.DocumentationLinks,
		})
	}
	return records, nil
}
