package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"expense-ledger/internal/middleware"
	"expense-ledger/internal/models"
	"expense-ledger/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// AuditLister reads a page of a user's audit trail.
type AuditLister interface {
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.AuditLog, int64, error)
}

// LogHandler serves the caller's audit trail.
type LogHandler struct {
	Logs   AuditLister
	Cipher *util.FieldCipher
	Log    logrus.FieldLogger
}

func NewLogHandler(logs AuditLister, cipher *util.FieldCipher, log logrus.FieldLogger) *LogHandler {
	return &LogHandler{Logs: logs, Cipher: cipher, Log: log}
}

type logResp struct {
	ID        uint      `json:"id"`
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	Status    int       `json:"status"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"userAgent"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListLogs returns the newest entries first, paged by page and page_size.
func (h *LogHandler) ListLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if size <= 0 || size > maxPageSize {
		size = defaultPageSize
	}

	logs, total, err := h.Logs.ListByUser(c.Request.Context(), middleware.UserID(c), size, (page-1)*size)
	if err != nil {
		util.Fail(c, h.Log, err)
		return
	}

	items := make([]logResp, 0, len(logs))
	for i := range logs {
		l := &logs[i]
		path, err := h.Cipher.DecryptString(l.PathEnc)
		if err != nil {
			h.Log.WithError(err).WithField("log_id", l.ID).Debug("decrypt audit path")
			path = ""
		}
		items = append(items, logResp{
			ID:        l.ID,
			Method:    l.Method,
			Path:      path,
			Status:    l.Status,
			IP:        l.IP,
			UserAgent: l.UserAgent,
			CreatedAt: l.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": total,
		"page":  page,
		"size":  size,
	})
}
