package form

import (
	"context"
	"testing"

	common_models "go-crowdfund/internal/common/models"
	"go-crowdfund/internal/features/field"
	"go-crowdfund/internal/features/value"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeFieldService struct {
	defs []field.FieldDefinition
}

func (f *fakeFieldService) CreateField(ctx context.Context, def *field.FieldDefinition) (primitive.ObjectID, error) {
	return primitive.NilObjectID, nil
}
func (f *fakeFieldService) UpdateField(ctx context.Context, id primitive.ObjectID, patch *field.FieldDefinition) error {
	return nil
}
func (f *fakeFieldService) DeleteField(ctx context.Context, id primitive.ObjectID) error {
	return nil
}
func (f *fakeFieldService) GetField(ctx context.Context, id primitive.ObjectID) (*field.FieldDefinition, error) {
	return nil, nil
}
func (f *fakeFieldService) ListByModule(ctx context.Context, module string) ([]field.FieldDefinition, error) {
	return f.defs, nil
}
func (f *fakeFieldService) GetAll(ctx context.Context) ([]field.FieldDefinition, error) {
	return f.defs, nil
}

type fakeValueService struct {
	values []value.FieldValue
	saved  []value.FieldValueInput
}

func (f *fakeValueService) GetValue(ctx context.Context, fieldID primitive.ObjectID, recordID string) (*value.FieldValue, error) {
	return nil, nil
}
func (f *fakeValueService) GetValuesForRecord(ctx context.Context, module, recordID string) ([]value.FieldValue, error) {
	return f.values, nil
}
func (f *fakeValueService) SaveValues(ctx context.Context, module, recordID string, values []value.FieldValueInput) error {
	f.saved = append(f.saved, values...)
	return nil
}

type fakeAuditService struct {
	actions []common_models.AuditAction
}

func (f *fakeAuditService) LogChange(ctx context.Context, action common_models.AuditAction, module string, recordID string, changes map[string]common_models.Change) error {
	f.actions = append(f.actions, action)
	return nil
}
func (f *fakeAuditService) ListLogs(ctx context.Context, filters map[string]interface{}, page, limit int64) ([]common_models.AuditLog, error) {
	return nil, nil
}

func propertyDefs() (nameDef, phoneDef field.FieldDefinition) {
	nameDef = field.FieldDefinition{
		ID:             primitive.NewObjectID(),
		Module:         "properties",
		FieldKey:       "manager_name",
		LabelEn:        "Manager Name",
		FieldType:      field.FieldTypeText,
		IsRequired:     true,
		ShowInAdmin:    true,
		ShowInUserForm: true,
		DisplayOrder:   1,
	}
	phoneDef = field.FieldDefinition{
		ID:              primitive.NewObjectID(),
		Module:          "properties",
		FieldKey:        "manager_phone",
		LabelEn:         "Manager Phone",
		FieldType:       field.FieldTypePhone,
		ShowInAdmin:     true,
		ShowInUserForm:  true,
		DisplayOrder:    2,
		Dependencies:    `{"showIf":{"fieldKey":"manager_name","operator":"notEmpty"}}`,
		ValidationRules: `[{"type":"phone"}]`,
	}
	return nameDef, phoneDef
}

func newTestFormService(fields *fakeFieldService, values *fakeValueService, audits *fakeAuditService) FormService {
	return NewFormService(fields, values, audits, zap.NewNop())
}

func TestEvaluateFormHidesDependentFieldWithoutValue(t *testing.T) {
	nameDef, phoneDef := propertyDefs()
	fields := &fakeFieldService{defs: []field.FieldDefinition{nameDef, phoneDef}}
	svc := newTestFormService(fields, &fakeValueService{}, &fakeAuditService{})

	rendered, err := svc.EvaluateForm(context.Background(), "properties", "prop-1", common_models.FormContextAdmin)
	if err != nil {
		t.Fatalf("EvaluateForm: %v", err)
	}
	if len(rendered) != 1 {
		t.Fatalf("expected 1 rendered field, got %d", len(rendered))
	}
	if rendered[0].Definition.FieldKey != "manager_name" {
		t.Errorf("expected manager_name, got %s", rendered[0].Definition.FieldKey)
	}
}

func TestEvaluateFormShowsDependentFieldOnceParentFilled(t *testing.T) {
	nameDef, phoneDef := propertyDefs()
	fields := &fakeFieldService{defs: []field.FieldDefinition{nameDef, phoneDef}}
	values := &fakeValueService{values: []value.FieldValue{
		{FieldID: nameDef.ID, Module: "properties", RecordID: "prop-1", Value: "Ahmed"},
	}}
	svc := newTestFormService(fields, values, &fakeAuditService{})

	rendered, err := svc.EvaluateForm(context.Background(), "properties", "prop-1", common_models.FormContextAdmin)
	if err != nil {
		t.Fatalf("EvaluateForm: %v", err)
	}
	if len(rendered) != 2 {
		t.Fatalf("expected 2 rendered fields, got %d", len(rendered))
	}
	if rendered[0].CurrentValue == nil || rendered[0].CurrentValue.Value != "Ahmed" {
		t.Errorf("expected manager_name current value to be attached")
	}
	if rendered[1].Definition.FieldKey != "manager_phone" {
		t.Errorf("expected manager_phone second, got %s", rendered[1].Definition.FieldKey)
	}
}

func TestEvaluateFormRespectsContextFlags(t *testing.T) {
	nameDef, phoneDef := propertyDefs()
	phoneDef.ShowInUserForm = false
	phoneDef.Dependencies = ""
	fields := &fakeFieldService{defs: []field.FieldDefinition{nameDef, phoneDef}}
	svc := newTestFormService(fields, &fakeValueService{}, &fakeAuditService{})

	rendered, err := svc.EvaluateForm(context.Background(), "properties", "", common_models.FormContextUser)
	if err != nil {
		t.Fatalf("EvaluateForm: %v", err)
	}
	if len(rendered) != 1 || rendered[0].Definition.FieldKey != "manager_name" {
		t.Fatalf("expected only manager_name in user context, got %d fields", len(rendered))
	}
}

func TestEvaluateFormIgnoresOrphanedValues(t *testing.T) {
	nameDef, _ := propertyDefs()
	fields := &fakeFieldService{defs: []field.FieldDefinition{nameDef}}
	values := &fakeValueService{values: []value.FieldValue{
		{FieldID: primitive.NewObjectID(), Module: "properties", RecordID: "prop-1", Value: "stale"},
		{FieldID: nameDef.ID, Module: "properties", RecordID: "prop-1", Value: "Ahmed"},
	}}
	svc := newTestFormService(fields, values, &fakeAuditService{})

	rendered, err := svc.EvaluateForm(context.Background(), "properties", "prop-1", common_models.FormContextAdmin)
	if err != nil {
		t.Fatalf("EvaluateForm: %v", err)
	}
	if len(rendered) != 1 {
		t.Fatalf("expected 1 rendered field, got %d", len(rendered))
	}
	if rendered[0].CurrentValue.Value != "Ahmed" {
		t.Errorf("expected surviving value, got %q", rendered[0].CurrentValue.Value)
	}
}

func TestEvaluateFormUnparsableDependencyIsVisible(t *testing.T) {
	nameDef, phoneDef := propertyDefs()
	phoneDef.Dependencies = `{not json`
	fields := &fakeFieldService{defs: []field.FieldDefinition{nameDef, phoneDef}}
	svc := newTestFormService(fields, &fakeValueService{}, &fakeAuditService{})

	rendered, err := svc.EvaluateForm(context.Background(), "properties", "", common_models.FormContextAdmin)
	if err != nil {
		t.Fatalf("EvaluateForm: %v", err)
	}
	if len(rendered) != 2 {
		t.Fatalf("expected broken dependency to fail open, got %d fields", len(rendered))
	}
}

func TestSubmitFormFieldFailuresAreIndependent(t *testing.T) {
	nameDef, phoneDef := propertyDefs()
	fields := &fakeFieldService{defs: []field.FieldDefinition{nameDef, phoneDef}}
	values := &fakeValueService{}
	audits := &fakeAuditService{}
	svc := newTestFormService(fields, values, audits)

	input := SubmitInput{
		Module:   "properties",
		RecordID: "prop-1",
		Values: []value.FieldValueInput{
			{FieldID: nameDef.ID.Hex(), Value: "Ahmed"},
			{FieldID: phoneDef.ID.Hex(), Value: "abc"}, // fails the phone rule
		},
	}
	result, err := svc.SubmitForm(context.Background(), input, common_models.LanguageEnglish)
	if err != nil {
		t.Fatalf("SubmitForm: %v", err)
	}
	if result.SavedCount != 1 {
		t.Errorf("expected 1 saved, got %d", result.SavedCount)
	}
	if msg, ok := result.Errors["manager_phone"]; !ok || msg == "" {
		t.Errorf("expected validation message for manager_phone, got %v", result.Errors)
	}
	if len(values.saved) != 1 || values.saved[0].Value != "Ahmed" {
		t.Errorf("expected only the passing value to be persisted, got %v", values.saved)
	}
	if len(audits.actions) != 1 || audits.actions[0] != common_models.AuditActionSubmit {
		t.Errorf("expected one submit audit entry, got %v", audits.actions)
	}
}

func TestSubmitFormSkipsEmptyAndUnknownValues(t *testing.T) {
	nameDef, _ := propertyDefs()
	fields := &fakeFieldService{defs: []field.FieldDefinition{nameDef}}
	values := &fakeValueService{}
	svc := newTestFormService(fields, values, &fakeAuditService{})

	input := SubmitInput{
		Module:   "properties",
		RecordID: "prop-1",
		Values: []value.FieldValueInput{
			{FieldID: nameDef.ID.Hex(), Value: ""},               // empty, not a row
			{FieldID: primitive.NewObjectID().Hex(), Value: "x"}, // unknown definition
		},
	}
	result, err := svc.SubmitForm(context.Background(), input, common_models.LanguageEnglish)
	if err != nil {
		t.Fatalf("SubmitForm: %v", err)
	}
	if result.SavedCount != 0 || len(result.Errors) != 0 {
		t.Errorf("expected nothing saved and no errors, got %+v", result)
	}
}

func TestSubmitFormUnparsableRulesFailOpen(t *testing.T) {
	nameDef, _ := propertyDefs()
	nameDef.ValidationRules = `{"oops": true}`
	fields := &fakeFieldService{defs: []field.FieldDefinition{nameDef}}
	values := &fakeValueService{}
	svc := newTestFormService(fields, values, &fakeAuditService{})

	input := SubmitInput{
		Module:   "properties",
		RecordID: "prop-1",
		Values:   []value.FieldValueInput{{FieldID: nameDef.ID.Hex(), Value: "anything"}},
	}
	result, err := svc.SubmitForm(context.Background(), input, common_models.LanguageEnglish)
	if err != nil {
		t.Fatalf("SubmitForm: %v", err)
	}
	if result.SavedCount != 1 {
		t.Errorf("expected broken rules payload to skip validation, got %+v", result)
	}
}
