package util

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"expense-ledger/internal/models"
)

// MaxAmount is the exclusive upper bound for a single expense.
const MaxAmount = 10_000_000

const maxDescriptionLength = 255

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateAmount requires a positive amount below MaxAmount.
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive, got %v", amount)
	}
	if amount >= MaxAmount {
		return fmt.Errorf("amount too large, got %v", amount)
	}
	return nil
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns the
// calendar day at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		ts, tsErr := time.Parse(time.RFC3339, s)
		if tsErr != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD or RFC 3339", s)
		}
		t = ts
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ValidateCategory returns the canonical category for s.
func ValidateCategory(s string) (models.Category, error) {
	c, ok := models.ParseCategory(s)
	if !ok {
		return "", fmt.Errorf("invalid category %q", s)
	}
	return c, nil
}

func ValidateDescription(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("description is empty")
	}
	if len(s) > maxDescriptionLength {
		return fmt.Errorf("description too long, max %d characters", maxDescriptionLength)
	}
	return nil
}

func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email %q", email)
	}
	return nil
}
