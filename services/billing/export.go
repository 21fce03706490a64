package billing

import (
	"fmt"
	"io"

	"rentwise/models"

	"github.com/xuri/excelize/v2"
)

const scheduleSheet = "Billing Schedule"

var scheduleHeaders = []string{
	"Tenant", "Property", "Next Due Date", "Send Date", "Status", "Note", "Amount Due", "Late Fee", "Latest Bill",
}

// WriteScheduleXLSX renders a billing schedule as a single-sheet workbook.
func WriteScheduleXLSX(w io.Writer, entries []models.ScheduleEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", scheduleSheet); err != nil {
		return fmt.Errorf("WriteScheduleXLSX: rename sheet: %w", err)
	}

	for col, h := range scheduleHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(scheduleSheet, cell, h); err != nil {
			return err
		}
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(scheduleHeaders), 1)
	if err := f.SetCellStyle(scheduleSheet, "A1", lastHeader, bold); err != nil {
		return err
	}

	for i, e := range entries {
		latest := ""
		if e.LatestBill != nil {
			latest = fmt.Sprintf("%s (%s)", e.LatestBill.DueDate.Format("2006-01-02"), e.LatestBill.Status)
		}
		row := []interface{}{
			e.TenantName,
			e.PropertyTitle,
			e.NextDueDate.Format("2006-01-02"),
			e.SendDate.Format("2006-01-02"),
			e.Status,
			e.Note,
			e.AmountDue.InexactFloat64(),
			e.LateFee.InexactFloat64(),
			latest,
		}
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(scheduleSheet, start, &row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(scheduleSheet, "A", "I", 20); err != nil {
		return err
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("WriteScheduleXLSX: write workbook: %w", err)
	}
	return nil
}
