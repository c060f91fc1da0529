package rules

import "testing"

func TestIsVisibleOperators(t *testing.T) {
	siblings := map[string]string{
		"status":       "funded",
		"manager_name": "Ahmed",
		"notes":        "  ",
	}

	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{
			name: "Equals Match",
			raw:  `{"showIf":{"fieldKey":"status","operator":"equals","value":"funded"}}`,
			want: true,
		},
		{
			name: "Equals Mismatch",
			raw:  `{"showIf":{"fieldKey":"status","operator":"equals","value":"draft"}}`,
			want: false,
		},
		{
			name: "NotEquals",
			raw:  `{"showIf":{"fieldKey":"status","operator":"notEquals","value":"draft"}}`,
			want: true,
		},
		{
			name: "Contains",
			raw:  `{"showIf":{"fieldKey":"manager_name","operator":"contains","value":"hme"}}`,
			want: true,
		},
		{
			name: "Contains On Absent Field",
			raw:  `{"showIf":{"fieldKey":"missing","operator":"contains","value":""}}`,
			want: false,
		},
		{
			name: "NotEmpty",
			raw:  `{"showIf":{"fieldKey":"manager_name","operator":"notEmpty"}}`,
			want: true,
		},
		{
			name: "NotEmpty On Whitespace",
			raw:  `{"showIf":{"fieldKey":"notes","operator":"notEmpty"}}`,
			want: false,
		},
		{
			name: "Empty On Absent Field",
			raw:  `{"showIf":{"fieldKey":"missing","operator":"empty"}}`,
			want: true,
		},
		{
			name: "In List Member",
			raw:  `{"showIf":{"fieldKey":"status","operator":"in","value":["draft","funded"]}}`,
			want: true,
		},
		{
			name: "In List Non Member",
			raw:  `{"showIf":{"fieldKey":"status","operator":"in","value":["draft","closed"]}}`,
			want: false,
		},
		{
			name: "In With Non List Value Fails Open",
			raw:  `{"showIf":{"fieldKey":"status","operator":"in","value":"funded"}}`,
			want: true,
		},
		{
			name: "Equals Numeric Value",
			raw:  `{"showIf":{"fieldKey":"units","operator":"equals","value":3}}`,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := ParseDependency(tt.raw)
			if got := rule.IsVisible(siblings); got != tt.want {
				t.Errorf("IsVisible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsVisibleFailOpen(t *testing.T) {
	siblings := map[string]string{"status": "funded"}

	tests := []struct {
		name string
		raw  string
	}{
		{"Empty Payload", ""},
		{"Garbage Payload", "{not json"},
		{"Wrong Shape", `["showIf"]`},
		{"Missing ShowIf", `{}`},
		{"Unknown Operator", `{"showIf":{"fieldKey":"status","operator":"matchesRegex","value":"x"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := ParseDependency(tt.raw)
			if !rule.IsVisible(siblings) {
				t.Errorf("expected fail-open visibility for %q", tt.raw)
			}
		})
	}
}

func TestDependencyReferences(t *testing.T) {
	rule := ParseDependency(`{"showIf":{"fieldKey":"manager_name","operator":"notEmpty"}}`)
	if !rule.References("manager_name") {
		t.Error("expected rule to reference manager_name")
	}
	if rule.References("status") {
		t.Error("did not expect rule to reference status")
	}
}
