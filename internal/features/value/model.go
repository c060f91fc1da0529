package value

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FieldValue is the per-record data stored against a field definition.
// Scalars are stored as strings; multi_select joins selections with
// commas; file fields store only the {url, name} pair handed over by the
// upload service.
type FieldValue struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FieldID   primitive.ObjectID `json:"field_id" bson:"field_id"`
	Module    string             `json:"module" bson:"module"`
	RecordID  string             `json:"record_id" bson:"record_id"`
	Value     string             `json:"value" bson:"value"`
	FileURL   string             `json:"file_url,omitempty" bson:"file_url,omitempty"`
	FileName  string             `json:"file_name,omitempty" bson:"file_name,omitempty"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// Empty reports whether the value carries no data at all. Empty values
// are filtered out before persistence; absence of data is not a row.
func (v *FieldValue) Empty() bool {
	return v.Value == "" && v.FileURL == ""
}

// FieldValueInput is one submitted value in the submit contract.
type FieldValueInput struct {
	FieldID  string `json:"field_id"`
	Value    string `json:"value"`
	FileURL  string `json:"file_url,omitempty"`
	FileName string `json:"file_name,omitempty"`
}

func (in *FieldValueInput) Empty() bool {
	return in.Value == "" && in.FileURL == ""
}
