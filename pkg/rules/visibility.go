package rules

import "strings"

// Supported showIf operators. Anything else fails open.
const (
	OpEquals    = "equals"
	OpNotEquals = "notEquals"
	OpContains  = "contains"
	OpNotEmpty  = "notEmpty"
	OpEmpty     = "empty"
	OpIn        = "in"
)

// IsVisible evaluates the dependency rule against sibling values
// (fieldKey -> stored string value; absent keys read as empty strings).
// Malformed rules, missing showIf clauses and unknown operators all
// default to visible: a broken rule must never hide a field from every
// admin.
func (r DependencyRule) IsVisible(siblings map[string]string) bool {
	if r.unparseable || r.ShowIf == nil {
		return true
	}

	actual := siblings[r.ShowIf.FieldKey]

	switch r.ShowIf.Operator {
	case OpEquals:
		return actual == asString(r.ShowIf.Value)
	case OpNotEquals:
		return actual != asString(r.ShowIf.Value)
	case OpContains:
		if actual == "" {
			return false
		}
		return strings.Contains(actual, asString(r.ShowIf.Value))
	case OpNotEmpty:
		return strings.TrimSpace(actual) != ""
	case OpEmpty:
		return strings.TrimSpace(actual) == ""
	case OpIn:
		list, ok := r.ShowIf.Value.([]interface{})
		if !ok {
			return true // value is not a list: fail open
		}
		for _, item := range list {
			if actual == asString(item) {
				return true
			}
		}
		return false
	default:
		return true // unknown operator: fail open
	}
}
