package form

import (
	"context"
	"fmt"

	common_models "go-crowdfund/internal/common/models"
	"go-crowdfund/internal/features/audit"
	"go-crowdfund/internal/features/field"
	"go-crowdfund/internal/features/value"
	"go-crowdfund/pkg/rules"

	"go.uber.org/zap"
)

type FormService interface {
	EvaluateForm(ctx context.Context, module, recordID string, formCtx common_models.FormContext) ([]RenderedField, error)
	SubmitForm(ctx context.Context, input SubmitInput, lang common_models.Language) (*SubmitResult, error)
}

type FormServiceImpl struct {
	FieldService field.FieldService
	ValueService value.ValueService
	AuditService audit.AuditService
	Logger       *zap.Logger
}

func NewFormService(fieldService field.FieldService, valueService value.ValueService, auditService audit.AuditService, logger *zap.Logger) FormService {
	return &FormServiceImpl{
		FieldService: fieldService,
		ValueService: valueService,
		AuditService: auditService,
		Logger:       logger,
	}
}

// EvaluateForm composes the render contract for a (module, record,
// context) request: definitions are loaded in display order, filtered by
// the context flag, filtered again by dependency visibility against the
// record's current values, and emitted with their values attached.
// Visibility is recomputed on every call; the UI re-runs the same rule
// semantics locally between calls.
func (s *FormServiceImpl) EvaluateForm(ctx context.Context, module, recordID string, formCtx common_models.FormContext) ([]RenderedField, error) {
	defs, err := s.FieldService.ListByModule(ctx, module)
	if err != nil {
		return nil, err
	}

	siblings, valuesByField, err := s.loadValues(ctx, module, recordID, defs)
	if err != nil {
		return nil, err
	}

	result := make([]RenderedField, 0, len(defs))
	for i := range defs {
		def := defs[i]
		if !def.VisibleIn(formCtx) {
			continue
		}

		dep := rules.ParseDependency(def.Dependencies)
		if dep.Unparseable() {
			s.Logger.Warn("unparsable dependencies payload, field treated as always visible",
				zap.String("module", module), zap.String("field_key", def.FieldKey))
		}
		if !dep.IsVisible(siblings) {
			continue
		}

		result = append(result, RenderedField{
			Definition:   def,
			CurrentValue: valuesByField[def.ID.Hex()],
			IsVisible:    true,
		})
	}
	return result, nil
}

// loadValues builds the fieldKey -> value map used for dependency
// evaluation plus a fieldID -> value lookup. Values whose definition no
// longer exists are orphans and are ignored.
func (s *FormServiceImpl) loadValues(ctx context.Context, module, recordID string, defs []field.FieldDefinition) (map[string]string, map[string]*value.FieldValue, error) {
	siblings := make(map[string]string)
	valuesByField := make(map[string]*value.FieldValue)

	if recordID == "" {
		return siblings, valuesByField, nil
	}

	vals, err := s.ValueService.GetValuesForRecord(ctx, module, recordID)
	if err != nil {
		return nil, nil, err
	}

	keyByID := make(map[string]string, len(defs))
	for _, def := range defs {
		keyByID[def.ID.Hex()] = def.FieldKey
	}

	for i := range vals {
		val := &vals[i]
		fieldKey, ok := keyByID[val.FieldID.Hex()]
		if !ok {
			continue // orphaned value, definition was deleted
		}
		siblings[fieldKey] = val.Value
		valuesByField[val.FieldID.Hex()] = val
	}
	return siblings, valuesByField, nil
}

// SubmitForm validates each submitted value against its field's rules
// and persists the ones that pass. Submission is field-independent: a
// failing field is reported in the result and skipped, never blocking
// the rest.
func (s *FormServiceImpl) SubmitForm(ctx context.Context, input SubmitInput, lang common_models.Language) (*SubmitResult, error) {
	defs, err := s.FieldService.ListByModule(ctx, input.Module)
	if err != nil {
		return nil, err
	}

	defsByID := make(map[string]*field.FieldDefinition, len(defs))
	for i := range defs {
		defsByID[defs[i].ID.Hex()] = &defs[i]
	}

	result := &SubmitResult{Errors: make(map[string]string)}
	passing := make([]value.FieldValueInput, 0, len(input.Values))

	for _, in := range input.Values {
		if in.Empty() {
			continue // absence of data is not a row
		}

		def, ok := defsByID[in.FieldID]
		if !ok {
			continue // value for a deleted/unknown definition
		}

		ruleList, parsed := rules.ParseValidationRules(def.ValidationRules)
		if !parsed {
			s.Logger.Warn("unparsable validation rules, skipping validation for field",
				zap.String("module", input.Module), zap.String("field_key", def.FieldKey))
		}

		if msg := rules.Validate(ruleList, in.Value, string(lang)); msg != "" {
			result.Errors[def.FieldKey] = msg
			continue
		}

		passing = append(passing, in)
	}

	if err := s.ValueService.SaveValues(ctx, input.Module, input.RecordID, passing); err != nil {
		return nil, err
	}
	result.SavedCount = len(passing)

	if result.SavedCount > 0 {
		changes := map[string]common_models.Change{
			"values": {New: fmt.Sprintf("saved=%d failed=%d", result.SavedCount, len(result.Errors))},
		}
		_ = s.AuditService.LogChange(ctx, common_models.AuditActionSubmit, input.Module, input.RecordID, changes)
	}

	return result, nil
}
