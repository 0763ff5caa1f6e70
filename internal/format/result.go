package format

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/rcliao/inkind/internal/valuation"
)

type field struct {
	name  string
	label string
	value string
}

func resultFields(r *valuation.Result) []field {
	category := string(r.Category)
	if !r.CategoryConfirmed {
		category += " (suggested)"
	}

	fields := []field{
		{"policy_version", "Policy", r.PolicyVersion},
		{"methodology", "Methodology", r.Methodology},
		{"category", "Category", category},
		{"category_rationale", "Rationale", r.CategoryRationale},
		{"hourly_rate", "Hourly rate", Money(r.Labor.HourlyRate)},
		{"presentation_hours", "Presentation hours", r.Labor.PresentationHours.StringFixed(2)},
		{"total_labor_hours", "Total labor hours", r.Labor.TotalLaborHours.StringFixed(2)},
		{"labor_value", "Labor value", Money(r.LaborValue)},
	}
	if t := r.Travel; t != nil {
		fields = append(fields,
			field{"trip_days", "Trip days / nights", fmt.Sprintf("%d / %d", t.Days, t.Nights)},
			field{"airfare", "Airfare", Money(t.Airfare)},
			field{"lodging_cost", "Lodging", Money(t.LodgingCost)},
			field{"mie_full_days", "M&IE full days", Money(t.MIEFullDays)},
			field{"mie_travel_days", "M&IE travel days", Money(t.MIETravelDays)},
			field{"total_travel_cost", "Total travel", Money(t.TotalCost)},
			field{"workshop_count", "Workshops", strconv.Itoa(t.WorkshopCount)},
		)
	}
	return append(fields,
		field{"travel_value_per_engagement", "Travel per engagement", Money(r.TravelValuePerEngagement)},
		field{"value_per_engagement", "Value per engagement", Money(r.ValuePerEngagement)},
		field{"total_value", "Total value", Money(r.TotalValue)},
		field{"fiscal_year", "Fiscal year", valuation.FiscalLabel(r.FiscalYear, false)},
	)
}

// WriteResult writes a valuation with its breakdown, records, and warnings.
func WriteResult(w io.Writer, r *valuation.Result, format string) error {
	format, err := Normalize(format)
	if err != nil {
		return err
	}
	switch format {
	case "json":
		return writeJSON(w, r)
	case "jsonl":
		return writeJSONL(w, r.Records)
	case "plain":
		for _, f := range resultFields(r) {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", f.name, escapeNewlines(f.value)); err != nil {
				return err
			}
		}
		for _, wn := range r.Warnings {
			if _, err := fmt.Fprintf(w, "warning\t%s\t%s\n", wn.Code, wn.Message); err != nil {
				return err
			}
		}
		return nil
	}

	tw := newTable(w)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, WidthMax: 60},
	})
	tw.AppendHeader(table.Row{"Valuation", r.PolicyVersion})
	for _, f := range resultFields(r)[1:] {
		tw.AppendRow(table.Row{f.label, f.value})
	}
	_ = tw.Render()

	if err := writeRecordsTable(w, r.Records, true); err != nil {
		return err
	}
	return WriteWarnings(w, r.Warnings)
}
