package filter

import (
	"strings"
	"testing"
)

func TestApply(t *testing.T) {
	data := map[string]interface{}{
		"id":        float64(42),
		"name":      "Rooftop PV",
		"peakPower": 9.8,
	}

	tests := []struct {
		name       string
		expression string
		expected   interface{}
		expectErr  bool
	}{
		{
			name:       "empty expression returns input",
			expression: "",
			expected:   data,
		},
		{
			name:       "select field",
			expression: ".name",
			expected:   "Rooftop PV",
		},
		{
			name:       "numeric field",
			expression: ".peakPower",
			expected:   9.8,
		},
		{
			name:       "missing field yields null",
			expression: ".missing",
			expected:   nil,
		},
		{
			name:       "invalid expression",
			expression: ".[",
			expectErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Apply(data, tt.expression)
			if tt.expectErr {
				if err == nil {
					t.Fatal("Expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			switch want := tt.expected.(type) {
			case map[string]interface{}:
				got, ok := result.(map[string]interface{})
				if !ok || len(got) != len(want) {
					t.Errorf("Expected %v, got %v", want, result)
				}
			default:
				if result != tt.expected {
					t.Errorf("Expected %v, got %v", tt.expected, result)
				}
			}
		})
	}
}

func TestApplyArrayIteration(t *testing.T) {
	data := []interface{}{
		map[string]interface{}{"id": float64(1), "status": "Active"},
		map[string]interface{}{"id": float64(2), "status": "Disabled"},
	}

	result, err := Apply(data, `[.[] | select(.status == "Active") | .id]`)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	ids, ok := result.([]interface{})
	if !ok || len(ids) != 1 || ids[0] != float64(1) {
		t.Errorf("Expected [1], got %v", result)
	}
}

func TestNormalizeExpression(t *testing.T) {
	// Zsh escapes ! even inside single quotes.
	if got := NormalizeExpression(`.status \!= "Active"`); got != `.status != "Active"` {
		t.Errorf("Unexpected normalization %q", got)
	}
}

func TestApplyToJSON(t *testing.T) {
	input := []byte(`{"sites": [{"name": "Rooftop PV"}, {"name": "Barn Array"}]}`)

	out, err := ApplyToJSON(input, `.sites | length`)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if strings.TrimSpace(string(out)) != "2" {
		t.Errorf("Expected 2, got %s", out)
	}

	// Empty expression passes bytes through untouched.
	out, err = ApplyToJSON(input, "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(out) != string(input) {
		t.Error("Expected passthrough for empty expression")
	}
}

func TestApplyToJSONInvalidInput(t *testing.T) {
	if _, err := ApplyToJSON([]byte(`{broken`), ".x"); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestApplyFromJSON(t *testing.T) {
	result, err := ApplyFromJSON([]byte(`{"release": "1.0.0"}`), ".release")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result != "1.0.0" {
		t.Errorf("Expected 1.0.0, got %v", result)
	}
}
