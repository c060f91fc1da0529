package rules

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Dependency and validation payloads are stored as JSON text on the field
// definition and parsed defensively: anything that does not decode becomes
// the Unparseable variant, which the evaluators treat as "no constraint".

// ShowIf is a single conditional-visibility clause evaluated against
// sibling field values. No AND/OR composition is supported.
type ShowIf struct {
	FieldKey string      `json:"fieldKey"`
	Operator string      `json:"operator"`
	Value    interface{} `json:"value,omitempty"`
}

type DependencyRule struct {
	ShowIf      *ShowIf `json:"showIf,omitempty"`
	unparseable bool
}

// Unparseable reports whether the raw payload failed to decode.
func (r DependencyRule) Unparseable() bool {
	return r.unparseable
}

// References reports whether the rule conditions on the given field key.
func (r DependencyRule) References(fieldKey string) bool {
	return r.ShowIf != nil && r.ShowIf.FieldKey == fieldKey
}

// ParseDependency decodes a dependencies payload. An empty payload means
// no rule; a malformed one yields the Unparseable variant.
func ParseDependency(raw string) DependencyRule {
	if strings.TrimSpace(raw) == "" {
		return DependencyRule{}
	}
	var r DependencyRule
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return DependencyRule{unparseable: true}
	}
	return r
}

// ValidationRule is one check in an ordered chain applied to a candidate
// value. Value holds the rule parameter (length bound, pattern, list).
type ValidationRule struct {
	Type           string      `json:"type"`
	Value          interface{} `json:"value,omitempty"`
	ErrorMessageEn string      `json:"errorMessageEn,omitempty"`
	ErrorMessageAr string      `json:"errorMessageAr,omitempty"`
}

// ParseValidationRules decodes a validationRules payload. ok is false when
// the payload is present but not a valid rule list; callers must then skip
// validation entirely and log a warning.
func ParseValidationRules(raw string) (rules []ValidationRule, ok bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, true
	}
	if err := json.Unmarshal([]byte(raw), &rules); err != nil {
		return nil, false
	}
	return rules, true
}

// asString renders a rule/clause value the way it would compare against a
// stored field value (all values are persisted as strings).
func asString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return val.String()
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// asFloat extracts a numeric rule parameter.
func asFloat(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
