package format

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/rcliao/inkind/internal/agenda"
	"github.com/rcliao/inkind/internal/model"
)

// WriteAttribution writes the sessions credited to a speaker and their total hours.
func WriteAttribution(w io.Writer, a agenda.Attribution, format string) error {
	format, err := Normalize(format)
	if err != nil {
		return err
	}
	switch format {
	case "json":
		return writeJSON(w, a)
	case "jsonl":
		return writeJSONL(w, a.Sessions)
	case "plain":
		for _, s := range a.Sessions {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", s.Interval, s.Hours.StringFixed(2), truncate(s.Text, 80)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "total\t%s\n", a.Hours.StringFixed(2))
		return err
	}

	tw := newTable(w)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignCenter, AlignHeader: text.AlignCenter},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignCenter, WidthMax: 60},
	})
	tw.AppendHeader(table.Row{"Session", "Hours", "Text"})
	for _, s := range a.Sessions {
		tw.AppendRow(table.Row{s.Interval.String(), s.Hours.StringFixed(2), truncate(s.Text, 60)})
	}
	if !a.Found() {
		tw.AppendRow(table.Row{"-", "0.00", fmt.Sprintf("(%s not found)", a.Speaker)})
	}
	tw.AppendFooter(table.Row{"Total", a.Hours.StringFixed(2), a.Speaker})
	_ = tw.Render()
	return nil
}

// WriteSuggestion writes a suggested category and the rationale behind it.
func WriteSuggestion(w io.Writer, s model.Suggested[model.Category], format string) error {
	format, err := Normalize(format)
	if err != nil {
		return err
	}
	switch format {
	case "json":
		return writeJSON(w, s)
	case "jsonl":
		return writeJSONL(w, []model.Suggested[model.Category]{s})
	case "plain":
		_, err := fmt.Fprintf(w, "%s\t%s\n", s.Value, s.Rationale)
		return err
	}
	tw := newTable(w)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 70},
	})
	tw.AppendHeader(table.Row{"Category", "Rationale"})
	tw.AppendRow(table.Row{s.Value, s.Rationale})
	_ = tw.Render()
	return nil
}
