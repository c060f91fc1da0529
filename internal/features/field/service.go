package field

import (
	"context"
	"errors"
	"time"

	common_models "go-crowdfund/internal/common/models"
	"go-crowdfund/internal/features/audit"
	"go-crowdfund/pkg/rules"
	"go-crowdfund/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type FieldService interface {
	CreateField(ctx context.Context, def *FieldDefinition) (primitive.ObjectID, error)
	UpdateField(ctx context.Context, id primitive.ObjectID, patch *FieldDefinition) error
	DeleteField(ctx context.Context, id primitive.ObjectID) error
	GetField(ctx context.Context, id primitive.ObjectID) (*FieldDefinition, error)
	ListByModule(ctx context.Context, module string) ([]FieldDefinition, error)
	GetAll(ctx context.Context) ([]FieldDefinition, error)
}

type FieldServiceImpl struct {
	Repo         FieldRepository
	AuditService audit.AuditService
	Logger       *zap.Logger
}

func NewFieldService(repo FieldRepository, auditService audit.AuditService, logger *zap.Logger) FieldService {
	return &FieldServiceImpl{
		Repo:         repo,
		AuditService: auditService,
		Logger:       logger,
	}
}

func (s *FieldServiceImpl) CreateField(ctx context.Context, def *FieldDefinition) (primitive.ObjectID, error) {
	if def.Module == "" {
		return primitive.NilObjectID, errors.New("module is required")
	}
	def.FieldKey = utils.NormalizeFieldKey(def.FieldKey)
	if def.FieldKey == "" {
		return primitive.NilObjectID, errors.New("field key is required")
	}
	if def.LabelEn == "" {
		return primitive.NilObjectID, errors.New("english label is required")
	}
	if !def.FieldType.Valid() {
		return primitive.NilObjectID, errors.New("unknown field type: " + string(def.FieldType))
	}
	if err := s.checkPayloads(def); err != nil {
		return primitive.NilObjectID, err
	}

	def.ID = primitive.NewObjectID()
	def.CreatedAt = time.Now()
	def.UpdatedAt = time.Now()

	if err := s.Repo.Create(ctx, def); err != nil {
		return primitive.NilObjectID, err
	}

	changes := map[string]common_models.Change{
		"field_key":  {New: def.FieldKey},
		"field_type": {New: def.FieldType},
		"label_en":   {New: def.LabelEn},
	}
	_ = s.AuditService.LogChange(ctx, common_models.AuditActionCreate, def.Module, def.ID.Hex(), changes)

	return def.ID, nil
}

// UpdateField applies a patch to an existing definition. Module and
// fieldKey are immutable once created; changing the key would orphan
// every value stored under it.
func (s *FieldServiceImpl) UpdateField(ctx context.Context, id primitive.ObjectID, patch *FieldDefinition) error {
	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return err
	}

	patch.ID = existing.ID
	patch.Module = existing.Module
	patch.FieldKey = existing.FieldKey
	patch.CreatedAt = existing.CreatedAt
	patch.UpdatedAt = time.Now()

	if patch.LabelEn == "" {
		patch.LabelEn = existing.LabelEn
	}
	if patch.FieldType == "" {
		patch.FieldType = existing.FieldType
	}
	if !patch.FieldType.Valid() {
		return errors.New("unknown field type: " + string(patch.FieldType))
	}
	if err := s.checkPayloads(patch); err != nil {
		return err
	}

	if err := s.Repo.Update(ctx, patch); err != nil {
		return err
	}

	changes := map[string]common_models.Change{
		"label_en":         {Old: existing.LabelEn, New: patch.LabelEn},
		"field_type":       {Old: existing.FieldType, New: patch.FieldType},
		"display_order":    {Old: existing.DisplayOrder, New: patch.DisplayOrder},
		"validation_rules": {Old: existing.ValidationRules, New: patch.ValidationRules},
		"dependencies":     {Old: existing.Dependencies, New: patch.Dependencies},
	}
	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, existing.Module, id.Hex(), changes)

	return nil
}

// DeleteField removes a definition permanently. Stored values referencing
// it become orphans; the form orchestrator ignores them.
func (s *FieldServiceImpl) DeleteField(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}

	changes := map[string]common_models.Change{
		"field_key": {Old: existing.FieldKey},
	}
	_ = s.AuditService.LogChange(ctx, common_models.AuditActionDelete, existing.Module, id.Hex(), changes)

	return nil
}

func (s *FieldServiceImpl) GetField(ctx context.Context, id primitive.ObjectID) (*FieldDefinition, error) {
	return s.Repo.Get(ctx, id)
}

func (s *FieldServiceImpl) ListByModule(ctx context.Context, module string) ([]FieldDefinition, error) {
	return s.Repo.FindByModule(ctx, module)
}

func (s *FieldServiceImpl) GetAll(ctx context.Context) ([]FieldDefinition, error) {
	return s.Repo.FindAll(ctx)
}

// checkPayloads rejects self-referencing dependencies and warns about
// payloads that will be treated as fail-open at evaluation time. Admin
// typos are saved anyway; they just carry no constraint.
func (s *FieldServiceImpl) checkPayloads(def *FieldDefinition) error {
	dep := rules.ParseDependency(def.Dependencies)
	if dep.References(def.FieldKey) {
		return errors.New("field cannot depend on itself")
	}
	if dep.Unparseable() {
		s.Logger.Warn("field has unparsable dependencies payload, it will always be visible",
			zap.String("module", def.Module), zap.String("field_key", def.FieldKey))
	}
	if _, ok := rules.ParseValidationRules(def.ValidationRules); !ok {
		s.Logger.Warn("field has unparsable validation rules, validation will be skipped",
			zap.String("module", def.Module), zap.String("field_key", def.FieldKey))
	}
	return nil
}
