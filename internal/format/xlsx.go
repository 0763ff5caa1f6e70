package format

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/rcliao/inkind/internal/model"
	"github.com/rcliao/inkind/internal/valuation"
)

// SheetName is the worksheet written by WriteXLSX.
const SheetName = "Contributions"

var xlsxHeader = []interface{}{
	"Engagement", "Contribution Date", "Fiscal Year", "Resource Type", "Amount",
	"Labor Value", "Travel Value", "Economy", "Firm", "Speaker", "Category",
	"Category Rationale", "Trip", "Policy Version", "Documentation",
}

// WriteXLSX writes records as a flat spreadsheet for upload to a system of record.
func WriteXLSX(path string, records []model.Contribution) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, "A1", &xlsxHeader); err != nil {
		return err
	}

	for i, c := range records {
		row := []interface{}{
			c.Engagement,
			c.ContributionDate.Format(time.DateOnly),
			valuation.FiscalLabel(c.FiscalYear, false),
			c.ResourceType,
			c.Amount.InexactFloat64(),
			c.LaborValue.InexactFloat64(),
			c.TravelValue.InexactFloat64(),
			c.Economy,
			c.Firm,
			c.Speaker,
			string(c.Category),
			c.CategoryRationale,
			c.TripID,
			c.PolicyVersion,
			c.DocumentationLinks,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}

	// #,##0.00
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return err
	}
	if err := f.SetColStyle(SheetName, "E:G", money); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "A", "O", 18); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
