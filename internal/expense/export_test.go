package expense

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"expense-ledger/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var sample = []models.Expense{
	{Description: "Coffee", Amount: 4.5, Date: day(2024, 1, 10), Category: models.CategoryFood, Notes: "oat, milk"},
	{Description: "Bus", Amount: 2, Date: day(2024, 1, 9), Category: models.CategoryTransport},
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sample))

	raw := buf.Bytes()
	require.True(t, bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}))

	records, err := csv.NewReader(bytes.NewReader(raw[3:])).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Date", "Description", "Category", "Amount", "Notes"},
		{"2024-01-10", "Coffee", "Food", "4.50", "oat, milk"},
		{"2024-01-09", "Bus", "Transport", "2.00", ""},
	}, records)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sample))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, exportHeader, rows[0])
	assert.Equal(t, "Coffee", rows[1][1])
	assert.Equal(t, "4.5", rows[1][3])
	assert.Equal(t, "2024-01-09", rows[2][0])
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "expenses_20240110.csv", ExportFilename(day(2024, 1, 10), "csv"))
	assert.Equal(t, "expenses_20240110.xlsx", ExportFilename(time.Date(2024, 1, 10, 23, 0, 0, 0, time.UTC), "xlsx"))
}
