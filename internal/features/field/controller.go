package field

import (
	"errors"

	"go-crowdfund/pkg/apperr"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FieldController struct {
	Service FieldService
}

func NewFieldController(service FieldService) *FieldController {
	return &FieldController{
		Service: service,
	}
}

// CreateField godoc
func (ctrl *FieldController) CreateField(c *fiber.Ctx) error {
	var def FieldDefinition
	if err := c.BodyParser(&def); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	id, err := ctrl.Service.CreateField(c.Context(), &def)
	if err != nil {
		var conflict *apperr.ConflictError
		if errors.As(err, &conflict) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": conflict.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      id.Hex(),
		"message": "Field created successfully",
	})
}

// ListFields godoc
func (ctrl *FieldController) ListFields(c *fiber.Ctx) error {
	module := c.Query("module")

	var (
		defs []FieldDefinition
		err  error
	)
	if module != "" {
		defs, err = ctrl.Service.ListByModule(c.Context(), module)
	} else {
		defs, err = ctrl.Service.GetAll(c.Context())
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch field definitions",
		})
	}

	return c.JSON(defs)
}

// GetField godoc
func (ctrl *FieldController) GetField(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid field id",
		})
	}

	def, err := ctrl.Service.GetField(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Field not found",
		})
	}

	return c.JSON(def)
}

// UpdateField godoc
func (ctrl *FieldController) UpdateField(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid field id",
		})
	}

	var patch FieldDefinition
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := ctrl.Service.UpdateField(c.Context(), id, &patch); err != nil {
		var notFound *apperr.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": notFound.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Field updated successfully",
	})
}

// DeleteField godoc
func (ctrl *FieldController) DeleteField(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid field id",
		})
	}

	if err := ctrl.Service.DeleteField(c.Context(), id); err != nil {
		var notFound *apperr.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": notFound.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Field deleted successfully",
	})
}
