// Package valuation turns presentation hours and trip parameters into
// monetary in-kind contribution values under a given policy.
package valuation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rcliao/inkind/internal/model"
	"github.com/rcliao/inkind/internal/policy"
)

var (
	ErrInvalidAllocationCount = errors.New("workshop count must be at least 1")
	ErrInvalidDateRange       = errors.New("trip end date is before start date")
	ErrNegativeAmount         = errors.New("amount must not be negative")
	ErrNoEngagements          = errors.New("at least one engagement is required")
)

// Labor is the labor valuation breakdown for one speaker.
type Labor struct {
	Category          model.Category  `json:"category"`
	HourlyRate        decimal.Decimal `json:"hourly_rate"`
	PresentationHours decimal.Decimal `json:"presentation_hours"`
	TotalLaborHours   decimal.Decimal `json:"total_labor_hours"`
	Value             decimal.Decimal `json:"labor_value"`
}

// ValueLabor computes rate[category] × hours × multiplier, rounded to cents.
// An unknown category panics; negative hours return ErrNegativeAmount.
func ValueLabor(p *policy.Policy, c model.Category, hours decimal.Decimal) (Labor, error) {
	rate := p.MustRate(c)
	if hours.IsNegative() {
		return Labor{}, fmt.Errorf("presentation hours %s: %w", hours, ErrNegativeAmount)
	}
	total := hours.Mul(p.LaborMultiplier)
	return Labor{
		Category:          c,
		HourlyRate:        rate,
		PresentationHours: hours,
		TotalLaborHours:   total.Round(2),
		Value:             rate.Mul(total).Round(2),
	}, nil
}
