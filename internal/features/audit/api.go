package audit

import (
	"go-crowdfund/internal/config"
	"go-crowdfund/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AuditApi struct {
	auditController *AuditController
	config          *config.Config
}

func NewAuditApi(auditController *AuditController, config *config.Config) *AuditApi {
	return &AuditApi{
		auditController: auditController,
		config:          config,
	}
}

// Setup registers audit trail routes
func (h *AuditApi) Setup(app *fiber.App) {
	audit := app.Group("/api/audit", middleware.AuthMiddleware(h.config.SkipAuth), middleware.AdminMiddleware())

	audit.Get("/", h.auditController.ListLogs)
}
