package repository

import (
	"context"
	"fmt"
	"time"

	"expense-ledger/internal/apperr"
	"expense-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExpenseRepository persists expenses. Every query is filtered by owner.
type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// ListByUser returns the user's expenses newest date first; expenses sharing
// a date keep their insertion order.
func (r *ExpenseRepository) ListByUser(ctx context.Context, userID string) ([]models.Expense, error) {
	expenses := []models.Expense{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at ASC, id ASC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

func (r *ExpenseRepository) FindByID(ctx context.Context, userID, id string) (*models.Expense, error) {
	var e models.Expense
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&e).Error; err != nil {
		return nil, notFound(err, "find expense")
	}
	return &e, nil
}

// Create inserts e, assigning an id when it has none.
func (r *ExpenseRepository) Create(ctx context.Context, e *models.Expense) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return fmt.Errorf("create expense: %w", err)
	}
	return nil
}

// Save writes the mutable columns of e back, still scoped to its owner.
func (r *ExpenseRepository) Save(ctx context.Context, e *models.Expense) error {
	e.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).Model(&models.Expense{}).
		Where("id = ? AND user_id = ?", e.ID, e.UserID).
		Updates(map[string]any{
			"description": e.Description,
			"amount":      e.Amount,
			"date":        e.Date,
			"category":    e.Category,
			"notes":       e.Notes,
			"updated_at":  e.UpdatedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("save expense: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Expense{})
	if res.Error != nil {
		return fmt.Errorf("delete expense: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
