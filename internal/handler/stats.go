package handler

import (
	"net/http"
	"time"

	"expense-ledger/internal/middleware"
	"expense-ledger/internal/util"

	"github.com/gin-gonic/gin"
)

// Dashboard returns the spending summary for the current month.
func (h *ExpenseHandler) Dashboard(c *gin.Context) {
	sum, err := h.Expenses.Summary(c.Request.Context(), middleware.UserID(c), time.Now().UTC())
	if err != nil {
		util.Fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}
