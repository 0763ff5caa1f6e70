package format

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/rcliao/inkind/internal/model"
	"github.com/rcliao/inkind/internal/policy"
)

// WritePolicy writes the constants of a policy version.
func WritePolicy(w io.Writer, p *policy.Policy, format string) error {
	format, err := Normalize(format)
	if err != nil {
		return err
	}
	switch format {
	case "json", "jsonl":
		return writeJSON(w, p)
	}

	rows := []table.Row{
		{"Methodology", p.Methodology},
	}
	for _, c := range model.Categories {
		rows = append(rows, table.Row{"Hourly rate: " + string(c), Money(p.MustRate(c))})
	}
	rows = append(rows,
		table.Row{"Labor multiplier", p.LaborMultiplier.String()},
		table.Row{"Labor allocation", string(p.LaborAllocation)},
		table.Row{"Standard travel days", p.StandardTravelDays},
		table.Row{"Travel-day M&IE factor", p.TravelDayMIEFactor.String()},
	)
	for _, label := range p.BandLabels() {
		rows = append(rows, table.Row{"Airfare band: " + label, Money(p.AirfareBands[label])})
	}
	rows = append(rows,
		table.Row{"Airfare tier: same economy", Money(p.AirfareTiers.SameEconomy)},
		table.Row{"Airfare tier: same region", Money(p.AirfareTiers.SameRegion)},
		table.Row{"Airfare tier: intercontinental", Money(p.AirfareTiers.Intercontinental)},
	)

	byRegion := map[string][]string{}
	for economy, region := range p.Regions {
		byRegion[region] = append(byRegion[region], economy)
	}
	regions := make([]string, 0, len(byRegion))
	for r := range byRegion {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	for _, r := range regions {
		sort.Strings(byRegion[r])
		rows = append(rows, table.Row{"Region: " + r, strings.Join(byRegion[r], ", ")})
	}

	if format == "plain" {
		if _, err := fmt.Fprintf(w, "Version\t%s\n", p.Version); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(w, "%v\t%v\n", row[0], row[1]); err != nil {
				return err
			}
		}
		return nil
	}

	tw := newTable(w)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 70},
	})
	tw.AppendHeader(table.Row{"Policy", p.Version})
	tw.AppendRows(rows)
	_ = tw.Render()
	return nil
}
