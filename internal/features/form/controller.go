package form

import (
	common_models "go-crowdfund/internal/common/models"
	"go-crowdfund/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type FormController struct {
	Service FormService
}

func NewFormController(service FormService) *FormController {
	return &FormController{
		Service: service,
	}
}

// formContext resolves the caller's form context from their claims: only
// admins get the admin rendition.
func formContext(c *fiber.Ctx) common_models.FormContext {
	if claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims); ok && claims.IsAdmin() {
		if c.Query("context") != string(common_models.FormContextUser) {
			return common_models.FormContextAdmin
		}
	}
	return common_models.FormContextUser
}

func language(c *fiber.Ctx) common_models.Language {
	if c.Get("Accept-Language") == "ar" || c.Query("lang") == "ar" {
		return common_models.LanguageArabic
	}
	return common_models.LanguageEnglish
}

// EvaluateForm godoc
func (ctrl *FormController) EvaluateForm(c *fiber.Ctx) error {
	module := c.Params("module")
	recordID := c.Query("record_id")

	fields, err := ctrl.Service.EvaluateForm(c.Context(), module, recordID, formContext(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to evaluate form",
		})
	}

	return c.JSON(fields)
}

// SubmitForm godoc
func (ctrl *FormController) SubmitForm(c *fiber.Ctx) error {
	var input SubmitInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	input.Module = c.Params("module")

	if input.RecordID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "record_id is required",
		})
	}

	result, err := ctrl.Service.SubmitForm(c.Context(), input, language(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}
