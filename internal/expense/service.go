// Package expense implements the ownership-scoped expense store: CRUD, the
// dashboard summary and spreadsheet exports.
package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"expense-ledger/internal/apperr"
	"expense-ledger/internal/models"
	"expense-ledger/internal/util"
)

// Store is the persistence the service needs. Every method is scoped by the
// owning user id.
type Store interface {
	ListByUser(ctx context.Context, userID string) ([]models.Expense, error)
	FindByID(ctx context.Context, userID, id string) (*models.Expense, error)
	Create(ctx context.Context, e *models.Expense) error
	Save(ctx context.Context, e *models.Expense) error
	Delete(ctx context.Context, userID, id string) error
}

// Input is the body of a create request.
type Input struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Notes       string  `json:"notes"`
}

// Patch is the body of an update request. A nil field was absent from the
// body (JSON null counts as absent).
type Patch struct {
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	Date        *string  `json:"date"`
	Category    *string  `json:"category"`
	Notes       *string  `json:"notes"`
}

var errExpenseNotFound = fmt.Errorf("expense %w", apperr.ErrNotFound)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context, userID string) ([]models.Expense, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id string) (*models.Expense, error) {
	e, err := s.store.FindByID(ctx, userID, id)
	if err != nil {
		return nil, scoped(err)
	}
	return e, nil
}

func (s *Service) Create(ctx context.Context, userID string, in Input) (*models.Expense, error) {
	if strings.TrimSpace(in.Description) == "" || in.Amount == 0 || in.Date == "" || in.Category == "" {
		return nil, fmt.Errorf("%w: please provide description, amount, date and category", apperr.ErrValidation)
	}

	e := &models.Expense{
		UserID: userID,
		Notes:  in.Notes,
	}
	if err := applyDescription(e, in.Description); err != nil {
		return nil, err
	}
	if err := applyAmount(e, in.Amount); err != nil {
		return nil, err
	}
	if err := applyDate(e, in.Date); err != nil {
		return nil, err
	}
	if err := applyCategory(e, in.Category); err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Update merges p into the stored expense. Empty or zero values keep the
// stored field, except notes, which is replaced whenever present.
func (s *Service) Update(ctx context.Context, userID, id string, p Patch) (*models.Expense, error) {
	e, err := s.store.FindByID(ctx, userID, id)
	if err != nil {
		return nil, scoped(err)
	}

	if p.Description != nil && *p.Description != "" {
		if err := applyDescription(e, *p.Description); err != nil {
			return nil, err
		}
	}
	if p.Amount != nil && *p.Amount != 0 {
		if err := applyAmount(e, *p.Amount); err != nil {
			return nil, err
		}
	}
	if p.Date != nil && *p.Date != "" {
		if err := applyDate(e, *p.Date); err != nil {
			return nil, err
		}
	}
	if p.Category != nil && *p.Category != "" {
		if err := applyCategory(e, *p.Category); err != nil {
			return nil, err
		}
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}

	if err := s.store.Save(ctx, e); err != nil {
		return nil, scoped(err)
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return scoped(s.store.Delete(ctx, userID, id))
}

func applyDescription(e *models.Expense, s string) error {
	s = strings.TrimSpace(s)
	if err := util.ValidateDescription(s); err != nil {
		return invalid(err)
	}
	e.Description = s
	return nil
}

func applyAmount(e *models.Expense, amount float64) error {
	if err := util.ValidateAmount(amount); err != nil {
		return invalid(err)
	}
	e.Amount = amount
	return nil
}

func applyDate(e *models.Expense, s string) error {
	d, err := util.ParseDate(s)
	if err != nil {
		return invalid(err)
	}
	e.Date = d
	return nil
}

func applyCategory(e *models.Expense, s string) error {
	c, err := util.ValidateCategory(s)
	if err != nil {
		return invalid(err)
	}
	e.Category = c
	return nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %v", apperr.ErrValidation, err)
}

func scoped(err error) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return errExpenseNotFound
	}
	return err
}
