package format

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"

	"github.com/rcliao/inkind/internal/model"
)

// WriteRecords writes contribution records to w in the requested format.
func WriteRecords(w io.Writer, items []model.Contribution, includeHeader bool, format string) error {
	format, err := Normalize(format)
	if err != nil {
		return err
	}
	switch format {
	case "plain":
		return writeRecordsPlain(w, items, includeHeader)
	case "json":
		return writeJSON(w, items)
	case "jsonl":
		return writeJSONL(w, items)
	default:
		return writeRecordsTable(w, items, includeHeader)
	}
}

func writeRecordsPlain(w io.Writer, items []model.Contribution, includeHeader bool) error {
	if includeHeader {
		if _, err := fmt.Fprintln(w, "contribution_date\tfiscal_year\tengagement\tspeaker\tfirm\teconomy\tcategory\tamount\tresource_type\tversion"); err != nil {
			return err
		}
	}

	for _, c := range items {
		line := fmt.Sprintf(
			"%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d",
			c.ContributionDate.Format(time.DateOnly),
			c.FiscalYear,
			c.Engagement,
			c.Speaker,
			escapeNewlines(c.Firm),
			c.Economy,
			c.Category,
			c.Amount.StringFixed(2),
			c.ResourceType,
			c.Version,
		)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeRecordsTable(w io.Writer, items []model.Contribution, includeHeader bool) error {
	tw := newTable(w)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 2, Align: text.AlignCenter, AlignHeader: text.AlignCenter},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 4, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 5, Align: text.AlignLeft, AlignHeader: text.AlignCenter, WidthMax: 30},
		{Number: 6, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 7, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 8, Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Number: 9, Align: text.AlignRight, AlignHeader: text.AlignCenter},
	})

	if includeHeader {
		tw.AppendHeader(table.Row{"Date", "FY", "Engagement", "Speaker", "Firm", "Economy", "Category", "Amount", "Ver"})
	}

	total := decimal.Zero
	for _, c := range items {
		tw.AppendRow(table.Row{
			c.ContributionDate.Format(time.DateOnly),
			c.FiscalYear,
			c.Engagement,
			c.Speaker,
			c.Firm,
			c.Economy,
			c.Category,
			Money(c.Amount),
			strconv.Itoa(c.Version),
		})
		total = total.Add(c.Amount)
	}

	if len(items) == 0 {
		tw.AppendRow(table.Row{"-", "-", "(no contributions)", "-", "-", "-", "-", Money(total), "-"})
	} else if len(items) > 1 {
		tw.AppendFooter(table.Row{"", "", "", "", "", "", "Total", Money(total), ""})
	}

	_ = tw.Render()
	return nil
}
