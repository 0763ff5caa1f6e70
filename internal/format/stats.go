package format

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/rcliao/inkind/internal/store"
	"github.com/rcliao/inkind/internal/valuation"
)

// WriteStats writes store statistics with per fiscal year totals.
func WriteStats(w io.Writer, st *store.Stats, format string) error {
	format, err := Normalize(format)
	if err != nil {
		return err
	}
	switch format {
	case "json", "plain":
		return writeJSON(w, st)
	case "jsonl":
		return writeJSONL(w, st.FiscalYears)
	}

	tw := newTable(w)
	tw.AppendHeader(table.Row{"Database", st.DBPath})
	tw.AppendRows([]table.Row{
		{"Size (bytes)", st.DBSizeBytes},
		{"Records (all versions)", st.TotalRecords},
		{"Active contributions", st.ActiveContributions},
		{"Engagements", st.Engagements},
		{"Trips", st.Trips},
	})
	_ = tw.Render()

	fy := newTable(w)
	fy.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	fy.AppendHeader(table.Row{"Fiscal year", "Contributions", "Labor", "Travel", "Total"})
	for _, y := range st.FiscalYears {
		fy.AppendRow(table.Row{
			valuation.FiscalLabel(y.FiscalYear, false),
			y.Contributions,
			Money(y.Labor),
			Money(y.Travel),
			Money(y.Total),
		})
	}
	_ = fy.Render()
	return nil
}
