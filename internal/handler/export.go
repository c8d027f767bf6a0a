package handler

import (
	"fmt"
	"io"
	"time"

	"expense-ledger/internal/expense"
	"expense-ledger/internal/middleware"
	"expense-ledger/internal/models"
	"expense-ledger/internal/util"

	"github.com/gin-gonic/gin"
)

// ExportCSV downloads the caller's expenses as CSV, newest first.
func (h *ExpenseHandler) ExportCSV(c *gin.Context) {
	h.export(c, "csv", "text/csv; charset=utf-8", expense.WriteCSV)
}

// ExportXLSX downloads the caller's expenses as an Excel workbook.
func (h *ExpenseHandler) ExportXLSX(c *gin.Context) {
	h.export(c, "xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", expense.WriteXLSX)
}

func (h *ExpenseHandler) export(c *gin.Context, ext, contentType string, write func(io.Writer, []models.Expense) error) {
	uid := middleware.UserID(c)
	expenses, err := h.Expenses.List(c.Request.Context(), uid)
	if err != nil {
		util.Fail(c, h.Log, err)
		return
	}

	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", expense.ExportFilename(time.Now(), ext)))
	if err := write(c.Writer, expenses); err != nil {
		h.Log.WithError(err).WithField("user_id", uid).Errorf("export %s", ext)
	}
}
