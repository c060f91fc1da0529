package value

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValueService is a dumb persistence boundary: no validation happens
// here. The form orchestrator is contractually required to have run the
// validation engine before calling SaveValues.
type ValueService interface {
	GetValue(ctx context.Context, fieldID primitive.ObjectID, recordID string) (*FieldValue, error)
	GetValuesForRecord(ctx context.Context, module, recordID string) ([]FieldValue, error)
	SaveValues(ctx context.Context, module, recordID string, values []FieldValueInput) error
}

type ValueServiceImpl struct {
	Repo ValueRepository
}

func NewValueService(repo ValueRepository) ValueService {
	return &ValueServiceImpl{
		Repo: repo,
	}
}

func (s *ValueServiceImpl) GetValue(ctx context.Context, fieldID primitive.ObjectID, recordID string) (*FieldValue, error) {
	return s.Repo.Get(ctx, fieldID, recordID)
}

func (s *ValueServiceImpl) GetValuesForRecord(ctx context.Context, module, recordID string) ([]FieldValue, error) {
	return s.Repo.FindByRecord(ctx, module, recordID)
}

// SaveValues upserts one row per field, filtering out inputs that carry
// neither a value nor a file. Each write is independent; there is no
// multi-row transaction.
func (s *ValueServiceImpl) SaveValues(ctx context.Context, module, recordID string, values []FieldValueInput) error {
	for _, in := range values {
		if in.Empty() {
			continue
		}
		fieldID, err := primitive.ObjectIDFromHex(in.FieldID)
		if err != nil {
			continue // unknown/garbage field ids are not rows either
		}
		val := &FieldValue{
			FieldID:  fieldID,
			Module:   module,
			RecordID: recordID,
			Value:    in.Value,
			FileURL:  in.FileURL,
			FileName: in.FileName,
		}
		if err := s.Repo.Upsert(ctx, val); err != nil {
			return err
		}
	}
	return nil
}
