package template

import (
	"context"
	"errors"
	"fmt"
	"time"

	common_models "go-crowdfund/internal/common/models"
	"go-crowdfund/internal/features/audit"
	"go-crowdfund/internal/features/field"
	"go-crowdfund/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type TemplateService interface {
	ListTemplates(ctx context.Context, module string) ([]FieldTemplate, error)
	CreateTemplate(ctx context.Context, tpl *FieldTemplate) (primitive.ObjectID, error)
	SeedSystemTemplates(ctx context.Context) error
	ApplyTemplate(ctx context.Context, templateID primitive.ObjectID, targetModule string) (*ApplyResult, error)
}

type TemplateServiceImpl struct {
	Repo         TemplateRepository
	FieldService field.FieldService
	AuditService audit.AuditService
	Logger       *zap.Logger
}

func NewTemplateService(repo TemplateRepository, fieldService field.FieldService, auditService audit.AuditService, logger *zap.Logger) TemplateService {
	return &TemplateServiceImpl{
		Repo:         repo,
		FieldService: fieldService,
		AuditService: auditService,
		Logger:       logger,
	}
}

func (s *TemplateServiceImpl) ListTemplates(ctx context.Context, module string) ([]FieldTemplate, error) {
	return s.Repo.List(ctx, module)
}

func (s *TemplateServiceImpl) CreateTemplate(ctx context.Context, tpl *FieldTemplate) (primitive.ObjectID, error) {
	if tpl.Module == "" || tpl.NameEn == "" {
		return primitive.NilObjectID, errors.New("template module and name are required")
	}
	if len(tpl.Fields) == 0 {
		return primitive.NilObjectID, errors.New("template must contain at least one field")
	}

	tpl.ID = primitive.NewObjectID()
	tpl.IsSystem = false
	tpl.CreatedAt = time.Now()
	tpl.UpdatedAt = time.Now()

	if err := s.Repo.Create(ctx, tpl); err != nil {
		return primitive.NilObjectID, err
	}
	return tpl.ID, nil
}

// SeedSystemTemplates inserts the built-in templates. The check is
// content-addressed on (module, name_en), backed by a unique index, so
// re-seeding and concurrent startup never duplicate templates.
func (s *TemplateServiceImpl) SeedSystemTemplates(ctx context.Context) error {
	for _, tpl := range SystemTemplates() {
		exists, err := s.Repo.ExistsByName(ctx, tpl.Module, tpl.NameEn)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		tpl.ID = primitive.NewObjectID()
		tpl.CreatedAt = time.Now()
		tpl.UpdatedAt = time.Now()
		if err := s.Repo.Create(ctx, &tpl); err != nil {
			// A concurrent instance may have won the race; the unique
			// index makes that harmless.
			s.Logger.Warn("failed to seed system template",
				zap.String("module", tpl.Module), zap.String("name", tpl.NameEn), zap.Error(err))
			continue
		}
		s.Logger.Info("seeded system template",
			zap.String("module", tpl.Module), zap.String("name", tpl.NameEn))
	}
	return nil
}

// ApplyTemplate bulk-creates definitions from a template. Fields whose
// (module, fieldKey) already exist are skipped, not overwritten, so
// applying twice is safe. One bad field does not abort the batch.
func (s *TemplateServiceImpl) ApplyTemplate(ctx context.Context, templateID primitive.ObjectID, targetModule string) (*ApplyResult, error) {
	tpl, err := s.Repo.Get(ctx, templateID)
	if err != nil {
		return nil, err
	}

	module := targetModule
	if module == "" {
		module = tpl.Module
	}

	result := &ApplyResult{}
	for _, tplField := range tpl.Fields {
		def := tplField.Definition(module)
		if _, err := s.FieldService.CreateField(ctx, def); err != nil {
			var conflict *apperr.ConflictError
			if !errors.As(err, &conflict) {
				s.Logger.Warn("template field rejected by field store",
					zap.String("module", module), zap.String("field_key", tplField.FieldKey), zap.Error(err))
			}
			result.SkippedCount++
			continue
		}
		result.CreatedCount++
	}

	if result.CreatedCount == 0 && len(tpl.Fields) > 0 {
		return nil, &apperr.NoFieldsAppliedError{TemplateID: templateID.Hex(), Skipped: result.SkippedCount}
	}

	changes := map[string]common_models.Change{
		"applied": {New: fmt.Sprintf("created=%d skipped=%d", result.CreatedCount, result.SkippedCount)},
	}
	_ = s.AuditService.LogChange(ctx, common_models.AuditActionTemplate, module, templateID.Hex(), changes)

	return result, nil
}
