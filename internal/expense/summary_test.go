package expense

import (
	"testing"
	"time"

	"expense-ledger/internal/models"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSummarize_JanuaryRollsBackToDecember(t *testing.T) {
	sum := summarize([]models.Expense{
		{Amount: 30, Date: day(2024, 1, 2), Category: models.CategoryFood},
		{Amount: 40, Date: day(2023, 12, 31), Category: models.CategoryFood},
		{Amount: 99, Date: day(2024, 12, 5), Category: models.CategoryFood},
	}, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 30.0, sum.ThisMonth)
	assert.Equal(t, 40.0, sum.LastMonth)
	assert.Equal(t, -25.0, sum.PercentChange)
}

func TestSummarize_NoLastMonthMeansNoChange(t *testing.T) {
	sum := summarize([]models.Expense{
		{Amount: 12.5, Date: day(2024, 3, 1), Category: models.CategoryShopping},
	}, day(2024, 3, 31))

	assert.Equal(t, 12.5, sum.ThisMonth)
	assert.Zero(t, sum.LastMonth)
	assert.Zero(t, sum.PercentChange)
}

func TestSummarize_RoundsAndBreaksDownByCategory(t *testing.T) {
	sum := summarize([]models.Expense{
		{Amount: 0.1, Date: day(2024, 3, 1), Category: models.CategoryUtilities},
		{Amount: 0.2, Date: day(2024, 3, 2), Category: models.CategoryUtilities},
	}, day(2024, 3, 15))

	assert.Equal(t, 0.3, sum.Total)
	want := []CategoryTotal{
		{models.CategoryFood, 0},
		{models.CategoryTransport, 0},
		{models.CategoryEntertainment, 0},
		{models.CategoryUtilities, 0.3},
		{models.CategoryShopping, 0},
		{models.CategoryOther, 0},
	}
	assert.Equal(t, want, sum.ByCategory)
}
