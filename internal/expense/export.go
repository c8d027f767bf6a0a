package expense

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"expense-ledger/internal/models"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Expenses"

var exportHeader = []string{"Date", "Description", "Category", "Amount", "Notes"}

func exportRow(e models.Expense) []string {
	return []string{
		e.Date.UTC().Format(time.DateOnly),
		e.Description,
		string(e.Category),
		strconv.FormatFloat(e.Amount, 'f', 2, 64),
		e.Notes,
	}
}

// ExportFilename names an export file for the day of now.
func ExportFilename(now time.Time, ext string) string {
	return fmt.Sprintf("expenses_%s.%s", now.Format("20060102"), ext)
}

// WriteCSV writes expenses as UTF-8 CSV with a byte order mark so spreadsheet
// applications detect the encoding.
func WriteCSV(w io.Writer, expenses []models.Expense) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, e := range expenses {
		if err := cw.Write(exportRow(e)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes expenses as a single-sheet workbook. Amounts are numeric
// cells.
func WriteXLSX(w io.Writer, expenses []models.Expense) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	for idx, e := range expenses {
		row := exportRow(e)
		values := []any{row[0], row[1], row[2], e.Amount, row[4]}
		cell, err := excelize.CoordinatesToCellName(1, idx+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", idx+2, err)
		}
	}

	widths := map[string]float64{"A": 12, "B": 30, "C": 15, "D": 12, "E": 30}
	for col, width := range widths {
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
