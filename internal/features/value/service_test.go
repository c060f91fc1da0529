package value

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeValueRepo struct {
	upserts []FieldValue
}

func (r *fakeValueRepo) Get(ctx context.Context, fieldID primitive.ObjectID, recordID string) (*FieldValue, error) {
	return nil, nil
}
func (r *fakeValueRepo) FindByRecord(ctx context.Context, module, recordID string) ([]FieldValue, error) {
	return nil, nil
}
func (r *fakeValueRepo) Upsert(ctx context.Context, val *FieldValue) error {
	r.upserts = append(r.upserts, *val)
	return nil
}
func (r *fakeValueRepo) EnsureIndexes(ctx context.Context) error { return nil }

func TestSaveValuesFiltersNonRows(t *testing.T) {
	repo := &fakeValueRepo{}
	svc := NewValueService(repo)

	fieldID := primitive.NewObjectID()
	inputs := []FieldValueInput{
		{FieldID: fieldID.Hex(), Value: "furnished"},
		{FieldID: primitive.NewObjectID().Hex()},     // empty, skipped
		{FieldID: "not-an-object-id", Value: "x"},    // garbage id, skipped
		{FieldID: primitive.NewObjectID().Hex(), FileURL: "/files/brochure.pdf", FileName: "brochure.pdf"},
	}
	if err := svc.SaveValues(context.Background(), "properties", "prop-9", inputs); err != nil {
		t.Fatalf("SaveValues: %v", err)
	}

	if len(repo.upserts) != 2 {
		t.Fatalf("expected 2 upserts, got %d", len(repo.upserts))
	}
	first := repo.upserts[0]
	if first.FieldID != fieldID || first.Module != "properties" || first.RecordID != "prop-9" {
		t.Errorf("upsert row mismatch: %+v", first)
	}
	if repo.upserts[1].FileName != "brochure.pdf" {
		t.Errorf("file-only input should still be a row: %+v", repo.upserts[1])
	}
}
