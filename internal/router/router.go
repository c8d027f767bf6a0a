package router

import (
	"fmt"
	"net/http"

	"expense-ledger/internal/auth"
	"expense-ledger/internal/config"
	"expense-ledger/internal/expense"
	"expense-ledger/internal/handler"
	"expense-ledger/internal/middleware"
	"expense-ledger/internal/repository"
	"expense-ledger/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Options overrides pieces of the default wiring, for tests.
type Options struct {
	AuthOptions []auth.Option
}

// SetupRouter wires repositories, services and handlers into a gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB, log *logrus.Logger, opts ...Options) (*gin.Engine, error) {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	var authOpts []auth.Option
	for _, o := range opts {
		authOpts = append(authOpts, o.AuthOptions...)
	}

	cipher, err := util.NewFieldCipher(cfg.Security.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("audit cipher: %w", err)
	}

	users := repository.NewUserRepository(db)
	audits := repository.NewAuditRepository(db)
	authority := auth.NewAuthority(users, auth.NewBcryptHasher(cfg.Security.BcryptCost), cfg.JWT, authOpts...)
	expenses := expense.NewService(repository.NewExpenseRepository(db))

	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithField("panic", recovered).Error("handler panicked")
		util.Error(c, http.StatusInternalServerError, "Server error")
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running...")
	})
	r.NoRoute(func(c *gin.Context) {
		util.Error(c, http.StatusNotFound, "Not found")
	})

	api := r.Group("/api")

	authHandler := handler.NewAuthHandler(authority, log)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(
		middleware.Auth(authority),
		middleware.Audit(audits, cipher, log),
	)

	expenseHandler := handler.NewExpenseHandler(expenses, log)
	protected.GET("/expenses", expenseHandler.List)
	protected.POST("/expenses", expenseHandler.Create)
	protected.GET("/expenses/:id", expenseHandler.Get)
	protected.PUT("/expenses/:id", expenseHandler.Update)
	protected.DELETE("/expenses/:id", expenseHandler.Delete)
	protected.GET("/stats/dashboard", expenseHandler.Dashboard)
	protected.GET("/export/csv", expenseHandler.ExportCSV)
	protected.GET("/export/xlsx", expenseHandler.ExportXLSX)

	userHandler := handler.NewUserHandler(authority, log)
	protected.GET("/users/me", userHandler.Me)
	protected.PUT("/users/profile", userHandler.UpdateProfile)
	protected.PUT("/users/password", userHandler.ChangePassword)

	logHandler := handler.NewLogHandler(audits, cipher, log)
	protected.GET("/users/logs", logHandler.ListLogs)

	return r, nil
}

// WithCORS wraps h with the configured cross-origin policy.
func WithCORS(cfg config.ServerConfig, h http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
	}).Handler(h)
}
