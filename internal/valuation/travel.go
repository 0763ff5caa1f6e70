package valuation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rcliao/inkind/internal/model"
	"github.com/rcliao/inkind/internal/policy"
)

// Travel is the travel valuation breakdown for one trip.
type Travel struct {
	Days          int             `json:"days"`
	Nights        int             `json:"nights"`
	WorkshopCount int             `json:"workshop_count"`
	Airfare       decimal.Decimal `json:"airfare"`
	LodgingCost   decimal.Decimal `json:"lodging_cost"`
	MIEFullDays   decimal.Decimal `json:"mie_full_days"`
	MIETravelDays decimal.Decimal `json:"mie_travel_days"`
	TotalCost     decimal.Decimal `json:"total_travel_cost"`
	Allocated     decimal.Decimal `json:"allocated_travel"`
}

// ValueTravel prices a trip and divides it evenly over its workshops.
//
// Days are counted inclusively; the policy's standard travel days earn the
// reduced M&IE factor and the remaining days earn the full rate.
func ValueTravel(p *policy.Policy, trip model.Trip) (Travel, error) {
	if trip.WorkshopCount < 1 {
		return Travel{}, fmt.Errorf("%w: got %d", ErrInvalidAllocationCount, trip.WorkshopCount)
	}
	days, err := tripDays(trip.StartDate, trip.EndDate)
	if err != nil {
		return Travel{}, err
	}
	for _, f := range []struct {
		name string
		amt  decimal.Decimal
	}{
		{"airfare", trip.Airfare},
		{"lodging rate", trip.LodgingRate},
		{"M&IE rate", trip.MIERate},
	} {
		if f.amt.IsNegative() {
			return Travel{}, fmt.Errorf("%s %s: %w", f.name, f.amt, ErrNegativeAmount)
		}
	}

	nights := max(days-1, 0)
	fullDays := max(days-p.StandardTravelDays, 0)

	lodging := trip.LodgingRate.Mul(decimal.NewFromInt(int64(nights))).Round(2)
	mieFull := trip.MIERate.Mul(decimal.NewFromInt(int64(fullDays))).Round(2)
	mieTravel := trip.MIERate.Mul(p.TravelDayMIEFactor).Mul(decimal.NewFromInt(int64(p.StandardTravelDays))).Round(2)
	airfare := trip.Airfare.Round(2)

	total := airfare.Add(lodging).Add(mieFull).Add(mieTravel)
	return Travel{
		Days:          days,
		Nights:        nights,
		WorkshopCount: trip.WorkshopCount,
		Airfare:       airfare,
		LodgingCost:   lodging,
		MIEFullDays:   mieFull,
		MIETravelDays: mieTravel,
		TotalCost:     total,
		Allocated:     total.Div(decimal.NewFromInt(int64(trip.WorkshopCount))).Round(2),
	}, nil
}

// tripDays counts calendar days from start to end inclusive, ignoring clock time.
func tripDays(start, end time.Time) (int, error) {
	s := civil(start)
	e := civil(end)
	if e.Before(s) {
		return 0, fmt.Errorf("%w: %s to %s", ErrInvalidDateRange, s.Format(time.DateOnly), e.Format(time.DateOnly))
	}
	return int(e.Sub(s).Hours()/24) + 1, nil
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
