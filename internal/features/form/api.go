package form

import (
	"go-crowdfund/internal/config"
	"go-crowdfund/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type FormApi struct {
	formController *FormController
	config         *config.Config
}

func NewFormApi(formController *FormController, config *config.Config) *FormApi {
	return &FormApi{
		formController: formController,
		config:         config,
	}
}

// Setup registers the dynamic form routes
func (h *FormApi) Setup(app *fiber.App) {
	forms := app.Group("/api/forms", middleware.AuthMiddleware(h.config.SkipAuth))

	forms.Get("/:module", h.formController.EvaluateForm)
	forms.Post("/:module/submit", h.formController.SubmitForm)
}
