package handler

import (
	"net/http"

	"expense-ledger/internal/expense"
	"expense-ledger/internal/middleware"
	"expense-ledger/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ExpenseHandler serves the caller's expenses. Every operation is scoped to
// the verified user id.
type ExpenseHandler struct {
	Expenses *expense.Service
	Log      logrus.FieldLogger
}

func NewExpenseHandler(svc *expense.Service, log logrus.FieldLogger) *ExpenseHandler {
	return &ExpenseHandler{Expenses: svc, Log: log}
}

func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.Expenses.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		util.Fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (h *ExpenseHandler) Get(c *gin.Context) {
	e, err := h.Expenses.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		util.Fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	var in expense.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		util.BadRequest(c, "invalid request body")
		return
	}

	e, err := h.Expenses.Create(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		util.Fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	var p expense.Patch
	if err := c.ShouldBindJSON(&p); err != nil {
		util.BadRequest(c, "invalid request body")
		return
	}

	e, err := h.Expenses.Update(c.Request.Context(), middleware.UserID(c), c.Param("id"), p)
	if err != nil {
		util.Fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.Expenses.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		util.Fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense removed"})
}
