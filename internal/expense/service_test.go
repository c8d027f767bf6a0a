package expense_test

import (
	"context"
	"testing"
	"time"

	"expense-ledger/internal/apperr"
	"expense-ledger/internal/expense"
	"expense-ledger/internal/models"
	"expense-ledger/internal/repository"
	"expense-ledger/internal/testutil"

	"github.com/stretchr/testify/suite"
)

type ServiceTestSuite struct {
	suite.Suite
	ctx   context.Context
	svc   *expense.Service
	alice string
	bob   string
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	db := testutil.NewDB(s.T())

	users := repository.NewUserRepository(db)
	for _, u := range []*models.User{
		{Name: "Alice", Email: "alice@example.com", PasswordHash: "x"},
		{Name: "Bob", Email: "bob@example.com", PasswordHash: "x"},
	} {
		s.Require().NoError(users.Create(s.ctx, u))
		if u.Name == "Alice" {
			s.alice = u.ID
		} else {
			s.bob = u.ID
		}
	}
	s.svc = expense.NewService(repository.NewExpenseRepository(db))
}

func (s *ServiceTestSuite) coffee() *models.Expense {
	e, err := s.svc.Create(s.ctx, s.alice, expense.Input{
		Description: "Coffee",
		Amount:      4.50,
		Date:        "2024-01-10",
		Category:    "Food",
		Notes:       "oat milk",
	})
	s.Require().NoError(err)
	return e
}

func ptr[T any](v T) *T { return &v }

func (s *ServiceTestSuite) TestCreateThenGetRoundTrips() {
	created := s.coffee()
	s.NotEmpty(created.ID)
	s.Equal(s.alice, created.UserID)

	got, err := s.svc.Get(s.ctx, s.alice, created.ID)
	s.Require().NoError(err)
	s.Equal("Coffee", got.Description)
	s.Equal(4.50, got.Amount)
	s.True(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC).Equal(got.Date))
	s.Equal(models.CategoryFood, got.Category)
	s.Equal("oat milk", got.Notes)
}

func (s *ServiceTestSuite) TestCreateMissingFields() {
	base := expense.Input{Description: "Coffee", Amount: 4.5, Date: "2024-01-10", Category: "Food"}
	for _, mutate := range []func(*expense.Input){
		func(in *expense.Input) { in.Description = "" },
		func(in *expense.Input) { in.Amount = 0 },
		func(in *expense.Input) { in.Date = "" },
		func(in *expense.Input) { in.Category = "" },
	} {
		in := base
		mutate(&in)
		_, err := s.svc.Create(s.ctx, s.alice, in)
		s.ErrorIs(err, apperr.ErrValidation)
	}
}

func (s *ServiceTestSuite) TestCreateRejectsInvalidValues() {
	base := expense.Input{Description: "Coffee", Amount: 4.5, Date: "2024-01-10", Category: "Food"}
	for _, mutate := range []func(*expense.Input){
		func(in *expense.Input) { in.Amount = -1 },
		func(in *expense.Input) { in.Amount = 10_000_000 },
		func(in *expense.Input) { in.Date = "10/01/2024" },
		func(in *expense.Input) { in.Category = "Groceries" },
	} {
		in := base
		mutate(&in)
		_, err := s.svc.Create(s.ctx, s.alice, in)
		s.ErrorIs(err, apperr.ErrValidation)
	}
}

func (s *ServiceTestSuite) TestCreateCanonicalizesCategory() {
	e, err := s.svc.Create(s.ctx, s.alice, expense.Input{
		Description: "Bus", Amount: 2, Date: "2024-01-10T08:00:00Z", Category: "transport",
	})
	s.Require().NoError(err)
	s.Equal(models.CategoryTransport, e.Category)
	s.True(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC).Equal(e.Date))
}

func (s *ServiceTestSuite) TestUpdateEmptyPatchChangesNothing() {
	created := s.coffee()

	for _, p := range []expense.Patch{
		{},
		{Description: ptr(""), Amount: ptr(0.0), Date: ptr(""), Category: ptr("")},
	} {
		updated, err := s.svc.Update(s.ctx, s.alice, created.ID, p)
		s.Require().NoError(err)
		s.Equal("Coffee", updated.Description)
		s.Equal(4.50, updated.Amount)
		s.True(created.Date.Equal(updated.Date))
		s.Equal(models.CategoryFood, updated.Category)
		s.Equal("oat milk", updated.Notes)
	}
}

func (s *ServiceTestSuite) TestUpdateEmptyNotesClearsOnlyNotes() {
	created := s.coffee()

	updated, err := s.svc.Update(s.ctx, s.alice, created.ID, expense.Patch{Notes: ptr("")})
	s.Require().NoError(err)
	s.Equal("", updated.Notes)
	s.Equal("Coffee", updated.Description)

	got, err := s.svc.Get(s.ctx, s.alice, created.ID)
	s.Require().NoError(err)
	s.Equal("", got.Notes)
	s.Equal(4.50, got.Amount)
}

func (s *ServiceTestSuite) TestUpdateFields() {
	created := s.coffee()

	updated, err := s.svc.Update(s.ctx, s.alice, created.ID, expense.Patch{
		Description: ptr("Latte"),
		Amount:      ptr(5.25),
		Date:        ptr("2024-01-11"),
		Category:    ptr("entertainment"),
	})
	s.Require().NoError(err)

	got, err := s.svc.Get(s.ctx, s.alice, created.ID)
	s.Require().NoError(err)
	s.Equal(updated.Description, got.Description)
	s.Equal("Latte", got.Description)
	s.Equal(5.25, got.Amount)
	s.True(time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC).Equal(got.Date))
	s.Equal(models.CategoryEntertainment, got.Category)
	s.Equal("oat milk", got.Notes)
}

func (s *ServiceTestSuite) TestUpdateRejectsInvalidValues() {
	created := s.coffee()

	_, err := s.svc.Update(s.ctx, s.alice, created.ID, expense.Patch{Amount: ptr(-3.0)})
	s.ErrorIs(err, apperr.ErrValidation)
	_, err = s.svc.Update(s.ctx, s.alice, created.ID, expense.Patch{Category: ptr("Rent")})
	s.ErrorIs(err, apperr.ErrValidation)

	got, err := s.svc.Get(s.ctx, s.alice, created.ID)
	s.Require().NoError(err)
	s.Equal(4.50, got.Amount)
}

func (s *ServiceTestSuite) TestOtherUsersExpensesAreNotFound() {
	created := s.coffee()

	_, err := s.svc.Get(s.ctx, s.bob, created.ID)
	s.ErrorIs(err, apperr.ErrNotFound)
	s.Equal("expense not found", err.Error())

	_, err = s.svc.Update(s.ctx, s.bob, created.ID, expense.Patch{Description: ptr("Stolen")})
	s.ErrorIs(err, apperr.ErrNotFound)

	s.ErrorIs(s.svc.Delete(s.ctx, s.bob, created.ID), apperr.ErrNotFound)

	got, err := s.svc.Get(s.ctx, s.alice, created.ID)
	s.Require().NoError(err)
	s.Equal("Coffee", got.Description)

	list, err := s.svc.List(s.ctx, s.bob)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *ServiceTestSuite) TestDelete() {
	created := s.coffee()

	s.Require().NoError(s.svc.Delete(s.ctx, s.alice, created.ID))
	_, err := s.svc.Get(s.ctx, s.alice, created.ID)
	s.ErrorIs(err, apperr.ErrNotFound)
	s.ErrorIs(s.svc.Delete(s.ctx, s.alice, created.ID), apperr.ErrNotFound)
}

func (s *ServiceTestSuite) TestListOrderedByDateDescending() {
	for _, in := range []expense.Input{
		{Description: "first", Amount: 1, Date: "2024-01-05", Category: "Other"},
		{Description: "second", Amount: 1, Date: "2024-01-20", Category: "Other"},
		{Description: "third", Amount: 1, Date: "2024-01-05", Category: "Other"},
	} {
		_, err := s.svc.Create(s.ctx, s.alice, in)
		s.Require().NoError(err)
	}

	list, err := s.svc.List(s.ctx, s.alice)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal("second", list[0].Description)
	s.Equal("first", list[1].Description)
	s.Equal("third", list[2].Description)
}

func (s *ServiceTestSuite) TestSummary() {
	for _, in := range []expense.Input{
		{Description: "groceries", Amount: 60, Date: "2024-01-03", Category: "Food"},
		{Description: "bus", Amount: 15, Date: "2024-01-08", Category: "Transport"},
		{Description: "cinema", Amount: 50, Date: "2023-12-20", Category: "Entertainment"},
		{Description: "old", Amount: 10, Date: "2023-11-01", Category: "Other"},
	} {
		_, err := s.svc.Create(s.ctx, s.alice, in)
		s.Require().NoError(err)
	}

	sum, err := s.svc.Summary(s.ctx, s.alice, time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.Equal(135.0, sum.Total)
	s.Equal(75.0, sum.ThisMonth)
	s.Equal(50.0, sum.LastMonth)
	s.Equal(50.0, sum.PercentChange)
	s.Equal(4, sum.Count)
	s.Require().Len(sum.ByCategory, len(models.Categories))
	s.Equal(expense.CategoryTotal{Category: models.CategoryFood, Total: 60}, sum.ByCategory[0])
	s.Equal(expense.CategoryTotal{Category: models.CategoryUtilities, Total: 0}, sum.ByCategory[3])

	empty, err := s.svc.Summary(s.ctx, s.bob, time.Now())
	s.Require().NoError(err)
	s.Zero(empty.Count)
	s.Zero(empty.PercentChange)
	s.Len(empty.ByCategory, len(models.Categories))
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
