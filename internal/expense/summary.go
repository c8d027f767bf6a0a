package expense

import (
	"context"
	"math"
	"time"

	"expense-ledger/internal/models"
)

type CategoryTotal struct {
	Category models.Category `json:"category"`
	Total    float64         `json:"total"`
}

// Summary is the dashboard view of a user's spending.
type Summary struct {
	Total         float64         `json:"total"`
	ThisMonth     float64         `json:"thisMonth"`
	LastMonth     float64         `json:"lastMonth"`
	PercentChange float64         `json:"percentChange"`
	Count         int             `json:"count"`
	ByCategory    []CategoryTotal `json:"byCategory"`
}

// Summary aggregates every expense of the user relative to the calendar month
// containing now.
func (s *Service) Summary(ctx context.Context, userID string, now time.Time) (*Summary, error) {
	expenses, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return summarize(expenses, now), nil
}

func summarize(expenses []models.Expense, now time.Time) *Summary {
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastMonth := thisMonth.AddDate(0, -1, 0)

	totals := make(map[models.Category]float64, len(models.Categories))
	sum := &Summary{Count: len(expenses)}
	for _, e := range expenses {
		sum.Total += e.Amount
		totals[e.Category] += e.Amount

		switch month := time.Date(e.Date.Year(), e.Date.Month(), 1, 0, 0, 0, 0, time.UTC); {
		case month.Equal(thisMonth):
			sum.ThisMonth += e.Amount
		case month.Equal(lastMonth):
			sum.LastMonth += e.Amount
		}
	}

	if sum.LastMonth != 0 {
		sum.PercentChange = round2((sum.ThisMonth - sum.LastMonth) / sum.LastMonth * 100)
	}
	sum.Total = round2(sum.Total)
	sum.ThisMonth = round2(sum.ThisMonth)
	sum.LastMonth = round2(sum.LastMonth)

	sum.ByCategory = make([]CategoryTotal, 0, len(models.Categories))
	for _, c := range models.Categories {
		sum.ByCategory = append(sum.ByCategory, CategoryTotal{Category: c, Total: round2(totals[c])})
	}
	return sum
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
