package domain

import (
	"reflect"
	"testing"
)

func TestParsePreferenceList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"json array", `["South Indian", "Bengali"]`, []string{"South Indian", "Bengali"}},
		{"json array with blanks", `["veg", "", "  "]`, []string{"veg"}},
		{"comma separated", "gluten-free, jain", []string{"gluten-free", "jain"}},
		{"comma with empty segments", "dairy,,nuts, ", []string{"dairy", "nuts"}},
		{"single value", "lactose-free", []string{"lactose-free"}},
		{"single value padded", "  breakfast  ", []string{"breakfast"}},
		{"empty string", "", nil},
		{"whitespace only", "   ", nil},
		{"malformed json falls through to single", `["unterminated`, []string{`["unterminated`}},
		{"json object degrades to single value", `{"a":1}`, []string{`{"a":1}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePreferenceList(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePreferenceList(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestHasCuisinePreference(t *testing.T) {
	if (PreferenceProfile{}).HasCuisinePreference() {
		t.Error("empty profile must not report a cuisine preference")
	}
	p := PreferenceProfile{PreferredCuisines: []string{"Bengali"}}
	if !p.HasCuisinePreference() {
		t.Error("profile with cuisines must report a preference")
	}
}
