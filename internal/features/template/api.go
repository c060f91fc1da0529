package template

import (
	"go-crowdfund/internal/config"
	"go-crowdfund/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type TemplateApi struct {
	templateController *TemplateController
	config             *config.Config
}

func NewTemplateApi(templateController *TemplateController, config *config.Config) *TemplateApi {
	return &TemplateApi{
		templateController: templateController,
		config:             config,
	}
}

// Setup registers field template routes (admin only)
func (h *TemplateApi) Setup(app *fiber.App) {
	templates := app.Group("/api/field-templates", middleware.AuthMiddleware(h.config.SkipAuth), middleware.AdminMiddleware())

	templates.Get("/", h.templateController.ListTemplates)
	templates.Post("/", h.templateController.CreateTemplate)
	templates.Post("/:id/apply", h.templateController.ApplyTemplate)
}
