package template

import (
	"context"
	"errors"
	"testing"

	common_models "go-crowdfund/internal/common/models"
	"go-crowdfund/internal/features/field"
	"go-crowdfund/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeTemplateRepo struct {
	templates map[primitive.ObjectID]*FieldTemplate
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: make(map[primitive.ObjectID]*FieldTemplate)}
}

func (r *fakeTemplateRepo) Create(ctx context.Context, tpl *FieldTemplate) error {
	for _, existing := range r.templates {
		if existing.Module == tpl.Module && existing.NameEn == tpl.NameEn {
			return errors.New("duplicate key")
		}
	}
	copied := *tpl
	r.templates[tpl.ID] = &copied
	return nil
}

func (r *fakeTemplateRepo) Get(ctx context.Context, id primitive.ObjectID) (*FieldTemplate, error) {
	tpl, ok := r.templates[id]
	if !ok {
		return nil, &apperr.NotFoundError{Resource: "field template", ID: id.Hex()}
	}
	return tpl, nil
}

func (r *fakeTemplateRepo) List(ctx context.Context, module string) ([]FieldTemplate, error) {
	var out []FieldTemplate
	for _, tpl := range r.templates {
		if module == "" || tpl.Module == module {
			out = append(out, *tpl)
		}
	}
	return out, nil
}

func (r *fakeTemplateRepo) ExistsByName(ctx context.Context, module, nameEn string) (bool, error) {
	for _, tpl := range r.templates {
		if tpl.Module == module && tpl.NameEn == nameEn {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTemplateRepo) EnsureIndexes(ctx context.Context) error { return nil }

// fieldServiceStub mimics the unique (module, field_key) index: creating
// the same key twice yields a ConflictError.
type fieldServiceStub struct {
	created map[string]bool
}

func newFieldServiceStub() *fieldServiceStub {
	return &fieldServiceStub{created: make(map[string]bool)}
}

func (f *fieldServiceStub) CreateField(ctx context.Context, def *field.FieldDefinition) (primitive.ObjectID, error) {
	key := def.Module + "/" + def.FieldKey
	if f.created[key] {
		return primitive.NilObjectID, &apperr.ConflictError{Module: def.Module, FieldKey: def.FieldKey}
	}
	f.created[key] = true
	return primitive.NewObjectID(), nil
}
func (f *fieldServiceStub) UpdateField(ctx context.Context, id primitive.ObjectID, patch *field.FieldDefinition) error {
	return nil
}
func (f *fieldServiceStub) DeleteField(ctx context.Context, id primitive.ObjectID) error { return nil }
func (f *fieldServiceStub) GetField(ctx context.Context, id primitive.ObjectID) (*field.FieldDefinition, error) {
	return nil, nil
}
func (f *fieldServiceStub) ListByModule(ctx context.Context, module string) ([]field.FieldDefinition, error) {
	return nil, nil
}
func (f *fieldServiceStub) GetAll(ctx context.Context) ([]field.FieldDefinition, error) {
	return nil, nil
}

type auditServiceStub struct{}

func (auditServiceStub) LogChange(ctx context.Context, action common_models.AuditAction, module string, recordID string, changes map[string]common_models.Change) error {
	return nil
}
func (auditServiceStub) ListLogs(ctx context.Context, filters map[string]interface{}, page, limit int64) ([]common_models.AuditLog, error) {
	return nil, nil
}

func newTestTemplateService(repo TemplateRepository, fields field.FieldService) TemplateService {
	return NewTemplateService(repo, fields, auditServiceStub{}, zap.NewNop())
}

func TestSeedSystemTemplatesIsIdempotent(t *testing.T) {
	repo := newFakeTemplateRepo()
	svc := newTestTemplateService(repo, newFieldServiceStub())

	if err := svc.SeedSystemTemplates(context.Background()); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	want := len(SystemTemplates())
	if len(repo.templates) != want {
		t.Fatalf("expected %d seeded templates, got %d", want, len(repo.templates))
	}

	if err := svc.SeedSystemTemplates(context.Background()); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if len(repo.templates) != want {
		t.Errorf("re-seeding duplicated templates: got %d, want %d", len(repo.templates), want)
	}
}

func TestApplyTemplateSkipsExistingFields(t *testing.T) {
	repo := newFakeTemplateRepo()
	fields := newFieldServiceStub()
	svc := newTestTemplateService(repo, fields)

	tpl := &FieldTemplate{
		ID:     primitive.NewObjectID(),
		Module: "properties",
		NameEn: "Basic Property Fields",
		Fields: []TemplateField{
			{FieldKey: "manager_name", LabelEn: "Manager Name", FieldType: field.FieldTypeText},
			{FieldKey: "furnishing", LabelEn: "Furnishing", FieldType: field.FieldTypeDropdown},
		},
	}
	repo.templates[tpl.ID] = tpl

	result, err := svc.ApplyTemplate(context.Background(), tpl.ID, "")
	if err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if result.CreatedCount != 2 || result.SkippedCount != 0 {
		t.Errorf("first apply: got created=%d skipped=%d", result.CreatedCount, result.SkippedCount)
	}

	_, err = svc.ApplyTemplate(context.Background(), tpl.ID, "")
	var noneApplied *apperr.NoFieldsAppliedError
	if !errors.As(err, &noneApplied) {
		t.Fatalf("second apply: expected NoFieldsAppliedError, got %v", err)
	}
	if noneApplied.Skipped != 2 {
		t.Errorf("second apply: expected 2 skipped, got %d", noneApplied.Skipped)
	}
}

func TestApplyTemplateToTargetModule(t *testing.T) {
	repo := newFakeTemplateRepo()
	fields := newFieldServiceStub()
	svc := newTestTemplateService(repo, fields)

	tpl := &FieldTemplate{
		ID:     primitive.NewObjectID(),
		Module: "properties",
		NameEn: "Basic Property Fields",
		Fields: []TemplateField{
			{FieldKey: "manager_name", LabelEn: "Manager Name", FieldType: field.FieldTypeText},
		},
	}
	repo.templates[tpl.ID] = tpl

	result, err := svc.ApplyTemplate(context.Background(), tpl.ID, "leads")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if result.CreatedCount != 1 {
		t.Errorf("expected 1 created, got %d", result.CreatedCount)
	}
	if !fields.created["leads/manager_name"] {
		t.Errorf("expected field created under target module, got %v", fields.created)
	}
}

func TestApplyTemplateUnknownID(t *testing.T) {
	svc := newTestTemplateService(newFakeTemplateRepo(), newFieldServiceStub())

	_, err := svc.ApplyTemplate(context.Background(), primitive.NewObjectID(), "")
	var notFound *apperr.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCreateTemplateRejectsEmptyFieldList(t *testing.T) {
	svc := newTestTemplateService(newFakeTemplateRepo(), newFieldServiceStub())

	_, err := svc.CreateTemplate(context.Background(), &FieldTemplate{Module: "leads", NameEn: "Empty"})
	if err == nil {
		t.Fatal("expected an error for a template with no fields")
	}
}
