package field

import (
	"go-crowdfund/internal/config"
	"go-crowdfund/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type FieldApi struct {
	fieldController *FieldController
	config          *config.Config
}

func NewFieldApi(fieldController *FieldController, config *config.Config) *FieldApi {
	return &FieldApi{
		fieldController: fieldController,
		config:          config,
	}
}

// Setup registers field definition management routes (admin only)
func (h *FieldApi) Setup(app *fiber.App) {
	fields := app.Group("/api/fields", middleware.AuthMiddleware(h.config.SkipAuth), middleware.AdminMiddleware())

	fields.Post("/", h.fieldController.CreateField)
	fields.Get("/", h.fieldController.ListFields)
	fields.Get("/:id", h.fieldController.GetField)
	fields.Put("/:id", h.fieldController.UpdateField)
	fields.Delete("/:id", h.fieldController.DeleteField)
}
