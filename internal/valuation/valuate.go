package valuation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rcliao/inkind/internal/model"
	"github.com/rcliao/inkind/internal/policy"
)

// Request carries everything needed to value one speaker's contribution.
type Request struct {
	Speaker string
	Firm    string
	Economy string

	// Category is the staff-confirmed category. When empty, Suggested.Value is used.
	Category          model.Category
	Suggested         model.Suggested[model.Category]
	CategoryRationale string

	PresentationHours decimal.Decimal
	SpeakerNotFound   bool

	// Trip is nil when travel was not privately funded or is otherwise ineligible.
	Trip *model.Trip

	Engagements        []model.Engagement
	DocumentationLinks string

	// LaborAllocation overrides the policy's labor allocation when set.
	LaborAllocation policy.LaborAllocation
}

func (r Request) category() model.Category {
	if r.Category != "" {
		return r.Category
	}
	return r.Suggested.Value
}

func (r Request) rationale() string {
	if r.CategoryRationale != "" {
		return r.CategoryRationale
	}
	if r.Category == "" {
		return r.Suggested.Rationale
	}
	return ""
}

// Result is the valuation of one request. It is derived entirely from the
// request and the policy and is never cached.
type Result struct {
	PolicyVersion string `json:"policy_version"`
	Methodology   string `json:"methodology"`

	Category          model.Category `json:"category"`
	CategoryConfirmed bool           `json:"category_confirmed"`
	CategoryRationale string         `json:"category_rationale"`

	Labor  Labor   `json:"labor"`
	Travel *Travel `json:"travel,omitempty"`

	LaborValue               decimal.Decimal `json:"labor_value"`
	TravelValuePerEngagement decimal.Decimal `json:"travel_value_per_engagement"`
	ValuePerEngagement       decimal.Decimal `json:"value_per_engagement"`
	TotalValue               decimal.Decimal `json:"total_value"`
	FiscalYear               int             `json:"fiscal_year"` // of the first engagement

	Records  []model.Contribution `json:"records"`
	Warnings []model.Warning      `json:"warnings,omitempty"`
}

// Valuate values labor, then travel, then spreads both over the engagements.
func Valuate(p *policy.Policy, req Request) (*Result, error) {
	if len(req.Engagements) == 0 {
		return nil, ErrNoEngagements
	}
	cat := req.category()
	if !model.ValidCategories[cat] {
		return nil, fmt.Errorf("category %q: %w", cat, policy.ErrUnknownCategory)
	}

	labor, err := ValueLabor(p, cat, req.PresentationHours)
	if err != nil {
		return nil, fmt.Errorf("labor: %w", err)
	}

	var travel *Travel
	travelShare := decimal.Zero
	tripID := ""
	if req.Trip != nil {
		if req.Trip.WorkshopCount < len(req.Engagements) {
			return nil, fmt.Errorf("%w: trip covers %d workshops but %d engagements were given",
				ErrInvalidAllocationCount, req.Trip.WorkshopCount, len(req.Engagements))
		}
		t, err := ValueTravel(p, *req.Trip)
		if err != nil {
			return nil, fmt.Errorf("travel: %w", err)
		}
		travel = &t
		travelShare = t.Allocated
		tripID = req.Trip.ID
	}

	mode := req.LaborAllocation
	if mode == "" {
		mode = p.LaborAllocation
	}
	records, err := Aggregate(Allocation{
		LaborValue:         labor.Value,
		AllocatedTravel:    travelShare,
		Engagements:        req.Engagements,
		Mode:               mode,
		Speaker:            req.Speaker,
		Firm:               req.Firm,
		Economy:            req.Economy,
		Category:           cat,
		CategoryRationale:  req.rationale(),
		DocumentationLinks: req.DocumentationLinks,
		PolicyVersion:      p.Version,
		TripID:             tripID,
	})
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}

	return &Result{
		PolicyVersion:            p.Version,
		Methodology:              p.Methodology,
		Category:                 cat,
		CategoryConfirmed:        req.Category != "",
		CategoryRationale:        req.rationale(),
		Labor:                    labor,
		Travel:                   travel,
		LaborValue:               labor.Value,
		TravelValuePerEngagement: travelShare,
		ValuePerEngagement:       records[0].Amount,
		TotalValue:               total,
		FiscalYear:               records[0].FiscalYear,
		Records:                  records,
		Warnings:                 Check(req, travel),
	}, nil
}
