package main

import (
	"context"
	"fmt"
	"log"
	"time"

	common_api "go-crowdfund/internal/common/api"
	"go-crowdfund/internal/config"
	"go-crowdfund/internal/database"
	"go-crowdfund/internal/features/audit"
	"go-crowdfund/internal/features/field"
	"go-crowdfund/internal/features/form"
	"go-crowdfund/internal/features/template"
	"go-crowdfund/internal/features/upload"
	"go-crowdfund/internal/features/value"
	"go-crowdfund/internal/logger"
	"go-crowdfund/internal/middleware"
	"go-crowdfund/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
	log.Printf("Registered %d routes\n", len(routes))
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// InitializeIndexes ensures that necessary database indexes are created
func InitializeIndexes(lc fx.Lifecycle, fieldRepo field.FieldRepository, valueRepo value.ValueRepository, templateRepo template.TemplateRepository) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := fieldRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure field definition indexes: %v", err)
				}
				if err := valueRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure field value indexes: %v", err)
				}
				if err := templateRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure template indexes: %v", err)
				}
			}()
			return nil
		},
	})
}

// SeedTemplates inserts the built-in system templates on startup. The
// seeding is content-addressed, so restarting never duplicates them.
func SeedTemplates(lc fx.Lifecycle, templateService template.TemplateService) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			return templateService.SeedSystemTemplates(seedCtx)
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Database
			database.NewDatabase,

			// Initialize Repository
			audit.NewAuditRepository,
			field.NewFieldRepository,
			value.NewValueRepository,
			template.NewTemplateRepository,
			upload.NewUploadRepository,

			audit.NewAuditService,
			field.NewFieldService,
			value.NewValueService,
			template.NewTemplateService,
			form.NewFormService,
			upload.NewUploadService,

			// Initialize Controller
			audit.NewAuditController,
			field.NewFieldController,
			template.NewTemplateController,
			form.NewFormController,
			upload.NewUploadController,

			// Initialize API Routes
			AsRoute(audit.NewAuditApi),
			AsRoute(field.NewFieldApi),
			AsRoute(template.NewTemplateApi),
			AsRoute(form.NewFormApi),
			AsRoute(upload.NewUploadApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			func(logger *zap.Logger) { zap.ReplaceGlobals(logger) },
			func(cfg *config.Config) { utils.SetSecret(cfg.JWTSecret) },

			// Register Routes & Start
			RegisterAllRoutesWithAnnotation,
			StartServer,
			InitializeIndexes,
			SeedTemplates,
		),
	)

	app.Run()
}
