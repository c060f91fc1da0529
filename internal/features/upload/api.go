package upload

import (
	"go-crowdfund/internal/config"
	"go-crowdfund/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UploadApi struct {
	controller *UploadController
	config     *config.Config
}

func NewUploadApi(controller *UploadController, config *config.Config) *UploadApi {
	return &UploadApi{
		controller: controller,
		config:     config,
	}
}

func (h *UploadApi) Setup(app *fiber.App) {
	app.Post("/api/upload", middleware.AuthMiddleware(h.config.SkipAuth), h.controller.UploadFile)
	app.Get("/api/files/:module/:recordId", middleware.AuthMiddleware(h.config.SkipAuth), h.controller.GetFilesByRecord)
	app.Get("/api/files/:id/download", middleware.AuthMiddleware(h.config.SkipAuth), h.controller.DownloadFile)
	app.Delete("/api/files/:id", middleware.AuthMiddleware(h.config.SkipAuth), h.controller.DeleteFile)

	app.Static(h.config.FSURL, h.config.FSPath)
}
