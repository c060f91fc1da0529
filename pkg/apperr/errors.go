package apperr

import "fmt"

// ConflictError signals a duplicate (module, fieldKey) pair on create.
// It is surfaced to the caller and never retried.
type ConflictError struct {
	Module   string
	FieldKey string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("field '%s' already exists in module '%s'", e.FieldKey, e.Module)
}

// NotFoundError signals an operation referencing a missing definition,
// template or value.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Resource, e.ID)
}

// NoFieldsAppliedError signals a template application that created zero
// fields from a non-empty template (every field already existed or failed).
type NoFieldsAppliedError struct {
	TemplateID string
	Skipped    int
}

func (e *NoFieldsAppliedError) Error() string {
	return fmt.Sprintf("template '%s' applied no fields (%d skipped)", e.TemplateID, e.Skipped)
}
