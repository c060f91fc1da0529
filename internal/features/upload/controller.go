package upload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-crowdfund/internal/config"
	"go-crowdfund/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type UploadController struct {
	UploadDir     string
	UploadService UploadService
	Config        *config.Config
}

func NewUploadController(uploadService UploadService, cfg *config.Config) *UploadController {
	if _, err := os.Stat(cfg.FSPath); os.IsNotExist(err) {
		os.MkdirAll(cfg.FSPath, 0755)
	}
	return &UploadController{
		UploadDir:     cfg.FSPath,
		UploadService: uploadService,
		Config:        cfg,
	}
}

func actorID(c *fiber.Ctx) string {
	if claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims); ok {
		return claims.UserID
	}
	return "system"
}

// UploadFile stores a file for a file-type field and returns the
// {url, name} pair the caller submits as that field's value.
func (ctrl *UploadController) UploadFile(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Error retrieving file",
		})
	}

	module := c.FormValue("module")
	recordID := c.FormValue("record_id")

	if err := ctrl.UploadService.ValidateUpload(file.Size, file.Header.Get("Content-Type")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	originalName := filepath.Base(file.Filename)
	uniqueName := fmt.Sprintf("%d_%s", time.Now().UnixNano(), originalName)
	uniqueName = strings.ReplaceAll(uniqueName, " ", "_")

	dstPath := filepath.Join(ctrl.UploadDir, uniqueName)
	if err := c.SaveFile(file, dstPath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error saving file to disk",
		})
	}

	stored := &StoredFile{
		OriginalFilename: originalName,
		Path:             dstPath,
		URL:              ctrl.Config.FSURL + "/" + uniqueName,
		Size:             file.Size,
		MimeType:         file.Header.Get("Content-Type"),
		Module:           module,
		RecordID:         recordID,
		UploadedBy:       actorID(c),
		CreatedAt:        time.Now(),
	}

	if err := ctrl.UploadService.SaveFile(c.UserContext(), stored); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error saving file metadata",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url":  stored.URL,
		"name": stored.OriginalFilename,
		"id":   stored.ID.Hex(),
	})
}

func (ctrl *UploadController) GetFilesByRecord(c *fiber.Ctx) error {
	module := c.Params("module")
	recordID := c.Params("recordId")

	files, err := ctrl.UploadService.GetFilesByRecord(c.UserContext(), module, recordID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error retrieving files",
		})
	}

	return c.JSON(files)
}

func (ctrl *UploadController) DownloadFile(c *fiber.Ctx) error {
	file, err := ctrl.UploadService.GetFile(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "File not found",
		})
	}

	return c.Download(file.Path, file.OriginalFilename)
}

func (ctrl *UploadController) DeleteFile(c *fiber.Ctx) error {
	if err := ctrl.UploadService.DeleteFile(c.UserContext(), c.Params("id"), actorID(c)); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "File deleted successfully",
	})
}
