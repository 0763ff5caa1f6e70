package valuation

import (
	"fmt"
	"strings"

	"github.com/rcliao/inkind/internal/model"
)

// Warning codes produced by Check.
const (
	WarnZeroHours        = "zero_hours"
	WarnSpeakerNotFound  = "speaker_not_found"
	WarnZeroAirfare      = "zero_airfare"
	WarnSameDayTrip      = "same_day_trip"
	WarnMissingRationale = "missing_rationale"
	WarnMissingDocs      = "missing_documentation"
	WarnUnconfirmed      = "category_unconfirmed"
	WarnMixedFiscalYears = "mixed_fiscal_years"
)

// Check reports data quality findings for a request and its travel
// breakdown. Findings never block a valuation.
func Check(req Request, travel *Travel) []model.Warning {
	var out []model.Warning
	add := func(code, format string, args ...any) {
		out = append(out, model.Warning{Code: code, Message: fmt.Sprintf(format, args...)})
	}

	if req.SpeakerNotFound {
		add(WarnSpeakerNotFound, "Speaker %q was not found in the agenda text.", req.Speaker)
	}
	if req.PresentationHours.IsZero() {
		add(WarnZeroHours, "Presentation hours are zero.")
	}
	if req.Trip != nil {
		if req.Trip.Airfare.IsZero() {
			add(WarnZeroAirfare, "Travel marked eligible but airfare is zero.")
		}
		if travel != nil && travel.Days == 1 {
			add(WarnSameDayTrip, "Trip duration is one day; verify travel dates.")
		}
	}
	if req.Category == "" {
		add(WarnUnconfirmed, "Category %q is a suggestion and has not been confirmed by staff.", req.Suggested.Value)
	}
	if strings.TrimSpace(req.rationale()) == "" {
		add(WarnMissingRationale, "Category assignment rationale is missing.")
	}
	if strings.TrimSpace(req.DocumentationLinks) == "" {
		add(WarnMissingDocs, "Documentation links are missing.")
	}
	if len(req.Engagements) > 0 {
		first := FiscalYear(req.Engagements[0].Date)
		for _, e := range req.Engagements[1:] {
			if fy := FiscalYear(e.Date); fy != first {
				add(WarnMixedFiscalYears, "Engagements span %s and %s; each record carries its own fiscal year.",
					FiscalLabel(first, false), FiscalLabel(fy, false))
				break
			}
		}
	}
	return out
}
