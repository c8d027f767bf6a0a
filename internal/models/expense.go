package models

import "time"

// Expense is a single spending record owned by one user.
// Date carries a calendar day at UTC midnight.
type Expense struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"size:36;index;not null" json:"user"`
	Description string    `gorm:"size:255;not null" json:"description"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Date        time.Time `gorm:"index;not null" json:"date"`
	Category    Category  `gorm:"size:32;index;not null" json:"category"`
	Notes       string    `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
