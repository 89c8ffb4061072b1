// Package export renders the dataset into spreadsheet and calendar
// files.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/arijitsen/examdesk/internal/alloc"
	"github.com/arijitsen/examdesk/internal/pay"
	"github.com/arijitsen/examdesk/internal/store"
)

const (
	sheetAllocations  = "Allocations"
	sheetRemuneration = "Remuneration"
	sheetSummary      = "Summary"
	sheetRates        = "Rates"
)

// WriteWorkbook writes the full report workbook: one row per
// allocation, the per-day remuneration breakdown, per-person totals,
// and the rate table in force when the report was made.
func WriteWorkbook(path string, exam store.Exam, allocations []alloc.Allocation, report pay.Report, rates pay.Rates) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   exam.Key() + " personnel allocations",
		Creator: "examdesk",
	}); err != nil {
		return fmt.Errorf("setting workbook properties: %w", err)
	}

	f.SetSheetName("Sheet1", sheetAllocations)
	for _, name := range []string{sheetRemuneration, sheetSummary, sheetRates} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", name, err)
		}
	}

	if err := writeAllocations(f, allocations, report); err != nil {
		return err
	}
	if err := writeRemuneration(f, report); err != nil {
		return err
	}
	if err := writeSummary(f, report); err != nil {
		return err
	}
	if err := writeRates(f, rates); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheet, row, err)
	}
	return nil
}

func writeAllocations(f *excelize.File, allocations []alloc.Allocation, report pay.Report) error {
	header := []any{"Person", "Role", "Venue", "Date", "Shift", "Mock Test", "Order No.", "Page No.", "Pay Basis", "Day Amount (₹)"}
	if err := setRow(f, sheetAllocations, 1, header); err != nil {
		return err
	}

	// Day amounts are per person per day; rows sharing a day share the
	// figure.
	dayAmounts := make(map[string]pay.DayPay)
	for _, d := range report.Days {
		dayAmounts[d.Person+"|"+d.Date] = d
	}

	for i, a := range allocations {
		day := dayAmounts[a.Person+"|"+a.DateKey()]
		mock := ""
		if a.MockTest {
			mock = "Yes"
		}
		row := []any{
			a.Person, a.Role.Label(), a.Venue, a.DateKey(), a.Shift.Label(),
			mock, a.OrderNo, a.PageNo, string(day.Kind), day.Amount,
		}
		if err := setRow(f, sheetAllocations, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRemuneration(f *excelize.File, report pay.Report) error {
	header := []any{"Person", "Role", "Date", "Total Shifts", "Pay Basis", "Amount (₹)"}
	if err := setRow(f, sheetRemuneration, 1, header); err != nil {
		return err
	}
	for i, d := range report.Days {
		row := []any{d.Person, d.Role.Label(), d.Date, d.Shifts, string(d.Kind), d.Amount}
		if err := setRow(f, sheetRemuneration, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeSummary(f *excelize.File, report pay.Report) error {
	header := []any{"Person", "Role", "Total Days", "Total Amount (₹)"}
	if err := setRow(f, sheetSummary, 1, header); err != nil {
		return err
	}
	for i, t := range report.Totals {
		row := []any{t.Person, t.Role.Label(), t.Days, t.Amount}
		if err := setRow(f, sheetSummary, i+2, row); err != nil {
			return err
		}
	}
	return setRow(f, sheetSummary, len(report.Totals)+3, []any{"Grand Total", "", "", report.Total()})
}

func writeRates(f *excelize.File, rates pay.Rates) error {
	rows := [][]any{
		{"Category", "Amount (₹)", "Applies"},
		{"Morning Shift", rates.Morning, "Per day"},
		{"Evening Shift", rates.Evening, "Per day"},
		{"Full Day", rates.FullDay, "Per day"},
		{"Combined Shifts", rates.Combined, "Per day, morning + evening"},
		{"Mock Test", rates.MockTest, "Per day"},
		{"EY Personnel", rates.EYPersonnel, "Per day"},
	}
	for i, row := range rows {
		if err := setRow(f, sheetRates, i+1, row); err != nil {
			return err
		}
	}
	return nil
}
