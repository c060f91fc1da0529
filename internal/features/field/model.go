package field

import (
	"encoding/json"
	"strings"
	"time"

	common_models "go-crowdfund/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FieldType string

const (
	FieldTypeText        FieldType = "text"
	FieldTypeTextArea    FieldType = "textarea"
	FieldTypeNumber      FieldType = "number"
	FieldTypeDate        FieldType = "date"
	FieldTypeDateTime    FieldType = "datetime"
	FieldTypeDropdown    FieldType = "dropdown"
	FieldTypeMultiSelect FieldType = "multi_select"
	FieldTypeCountry     FieldType = "country"
	FieldTypeFile        FieldType = "file"
	FieldTypeBoolean     FieldType = "boolean"
	FieldTypeEmail       FieldType = "email"
	FieldTypePhone       FieldType = "phone"
	FieldTypeURL         FieldType = "url"
)

// Valid reports whether t is a member of the closed field-type set.
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeText, FieldTypeTextArea, FieldTypeNumber, FieldTypeDate,
		FieldTypeDateTime, FieldTypeDropdown, FieldTypeMultiSelect,
		FieldTypeCountry, FieldTypeFile, FieldTypeBoolean, FieldTypeEmail,
		FieldTypePhone, FieldTypeURL:
		return true
	}
	return false
}

type SelectOption struct {
	Value string `json:"value" bson:"value"`
	Label string `json:"label" bson:"label"`
}

// FieldConfig is the decoded form of the opaque config payload. Only
// dropdown/multi_select use it today (ordered option list).
type FieldConfig struct {
	Options []SelectOption `json:"options,omitempty"`
}

// ParseConfig decodes a config payload defensively: malformed config means
// no options, never an error.
func ParseConfig(raw string) FieldConfig {
	if strings.TrimSpace(raw) == "" {
		return FieldConfig{}
	}
	var cfg FieldConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return FieldConfig{}
	}
	return cfg
}

// FieldDefinition is the schema describing one dynamic field within a
// module. The config/dependencies/validation_rules payloads are stored as
// JSON text and parsed defensively at evaluation time.
type FieldDefinition struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Module          string             `json:"module" bson:"module"` // Open set: "properties", "users", "leads", "invoices", ...
	FieldKey        string             `json:"field_key" bson:"field_key"`
	LabelEn         string             `json:"label_en" bson:"label_en"`
	LabelAr         string             `json:"label_ar,omitempty" bson:"label_ar,omitempty"`
	FieldType       FieldType          `json:"field_type" bson:"field_type"`
	Config          string             `json:"config,omitempty" bson:"config,omitempty"`
	IsRequired      bool               `json:"is_required" bson:"is_required"`
	ShowInAdmin     bool               `json:"show_in_admin" bson:"show_in_admin"`
	ShowInUserForm  bool               `json:"show_in_user_form" bson:"show_in_user_form"`
	DisplayOrder    int                `json:"display_order" bson:"display_order"`
	HelpTextEn      string             `json:"help_text_en,omitempty" bson:"help_text_en,omitempty"`
	HelpTextAr      string             `json:"help_text_ar,omitempty" bson:"help_text_ar,omitempty"`
	PlaceholderEn   string             `json:"placeholder_en,omitempty" bson:"placeholder_en,omitempty"`
	PlaceholderAr   string             `json:"placeholder_ar,omitempty" bson:"placeholder_ar,omitempty"`
	Dependencies    string             `json:"dependencies,omitempty" bson:"dependencies,omitempty"`
	ValidationRules string             `json:"validation_rules,omitempty" bson:"validation_rules,omitempty"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

// Label returns the display label for the requested language, falling
// back to English.
func (d *FieldDefinition) Label(lang common_models.Language) string {
	if lang == common_models.LanguageArabic && d.LabelAr != "" {
		return d.LabelAr
	}
	return d.LabelEn
}

// VisibleIn reports whether the definition is enabled for the given form
// context.
func (d *FieldDefinition) VisibleIn(formCtx common_models.FormContext) bool {
	if formCtx == common_models.FormContextAdmin {
		return d.ShowInAdmin
	}
	return d.ShowInUserForm
}
