package form

import (
	"go-crowdfund/internal/features/field"
	"go-crowdfund/internal/features/value"
)

// RenderedField is one entry of the render contract consumed by the UI
// layer: only visible fields are emitted, in display order, with their
// current value attached.
type RenderedField struct {
	Definition   field.FieldDefinition `json:"definition"`
	CurrentValue *value.FieldValue     `json:"current_value,omitempty"`
	IsVisible    bool                  `json:"is_visible"`
}

// SubmitInput is the submit contract received from the UI layer.
type SubmitInput struct {
	Module   string                  `json:"module"`
	RecordID string                  `json:"record_id"`
	Values   []value.FieldValueInput `json:"values"`
}

// SubmitResult reports a field-independent submission: fields that passed
// validation were persisted, fields that failed carry a message keyed by
// fieldKey. One field's failure never blocks the others.
type SubmitResult struct {
	SavedCount int               `json:"saved_count"`
	Errors     map[string]string `json:"errors,omitempty"`
}
