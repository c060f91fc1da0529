package template

import (
	"time"

	"go-crowdfund/internal/features/field"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TemplateField carries the same shape as a field definition minus
// id/module; the module is inherited from the template (or overridden at
// apply time).
type TemplateField struct {
	FieldKey        string          `json:"field_key" bson:"field_key"`
	LabelEn         string          `json:"label_en" bson:"label_en"`
	LabelAr         string          `json:"label_ar,omitempty" bson:"label_ar,omitempty"`
	FieldType       field.FieldType `json:"field_type" bson:"field_type"`
	Config          string          `json:"config,omitempty" bson:"config,omitempty"`
	IsRequired      bool            `json:"is_required" bson:"is_required"`
	ShowInAdmin     bool            `json:"show_in_admin" bson:"show_in_admin"`
	ShowInUserForm  bool            `json:"show_in_user_form" bson:"show_in_user_form"`
	DisplayOrder    int             `json:"display_order" bson:"display_order"`
	HelpTextEn      string          `json:"help_text_en,omitempty" bson:"help_text_en,omitempty"`
	HelpTextAr      string          `json:"help_text_ar,omitempty" bson:"help_text_ar,omitempty"`
	PlaceholderEn   string          `json:"placeholder_en,omitempty" bson:"placeholder_en,omitempty"`
	PlaceholderAr   string          `json:"placeholder_ar,omitempty" bson:"placeholder_ar,omitempty"`
	Dependencies    string          `json:"dependencies,omitempty" bson:"dependencies,omitempty"`
	ValidationRules string          `json:"validation_rules,omitempty" bson:"validation_rules,omitempty"`
}

// FieldTemplate is a named, reusable bundle of field definitions for
// quick setup of a module.
type FieldTemplate struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Module        string             `json:"module" bson:"module"`
	NameEn        string             `json:"name_en" bson:"name_en"`
	NameAr        string             `json:"name_ar,omitempty" bson:"name_ar,omitempty"`
	DescriptionEn string             `json:"description_en,omitempty" bson:"description_en,omitempty"`
	DescriptionAr string             `json:"description_ar,omitempty" bson:"description_ar,omitempty"`
	IsSystem      bool               `json:"is_system" bson:"is_system"`
	Fields        []TemplateField    `json:"fields" bson:"fields"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// ApplyResult reports how a template application went. Skipped counts
// fields whose (module, fieldKey) already existed; re-running a template
// is always safe.
type ApplyResult struct {
	CreatedCount int `json:"created_count"`
	SkippedCount int `json:"skipped_count"`
}

// Definition expands a template field into a full definition for the
// target module.
func (f TemplateField) Definition(module string) *field.FieldDefinition {
	return &field.FieldDefinition{
		Module:          module,
		FieldKey:        f.FieldKey,
		LabelEn:         f.LabelEn,
		LabelAr:         f.LabelAr,
		FieldType:       f.FieldType,
		Config:          f.Config,
		IsRequired:      f.IsRequired,
		ShowInAdmin:     f.ShowInAdmin,
		ShowInUserForm:  f.ShowInUserForm,
		DisplayOrder:    f.DisplayOrder,
		HelpTextEn:      f.HelpTextEn,
		HelpTextAr:      f.HelpTextAr,
		PlaceholderEn:   f.PlaceholderEn,
		PlaceholderAr:   f.PlaceholderAr,
		Dependencies:    f.Dependencies,
		ValidationRules: f.ValidationRules,
	}
}
