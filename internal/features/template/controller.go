package template

import (
	"errors"

	"go-crowdfund/pkg/apperr"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TemplateController struct {
	Service TemplateService
}

func NewTemplateController(service TemplateService) *TemplateController {
	return &TemplateController{
		Service: service,
	}
}

// ListTemplates godoc
func (ctrl *TemplateController) ListTemplates(c *fiber.Ctx) error {
	templates, err := ctrl.Service.ListTemplates(c.Context(), c.Query("module"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch templates",
		})
	}

	return c.JSON(templates)
}

// CreateTemplate godoc
func (ctrl *TemplateController) CreateTemplate(c *fiber.Ctx) error {
	var tpl FieldTemplate
	if err := c.BodyParser(&tpl); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	id, err := ctrl.Service.CreateTemplate(c.Context(), &tpl)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      id.Hex(),
		"message": "Template created successfully",
	})
}

// ApplyTemplate godoc
func (ctrl *TemplateController) ApplyTemplate(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid template id",
		})
	}

	var body struct {
		TargetModule string `json:"target_module"`
	}
	_ = c.BodyParser(&body) // body is optional

	result, err := ctrl.Service.ApplyTemplate(c.Context(), id, body.TargetModule)
	if err != nil {
		var notFound *apperr.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": notFound.Error(),
			})
		}
		var noFields *apperr.NoFieldsAppliedError
		if errors.As(err, &noFields) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": noFields.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}
