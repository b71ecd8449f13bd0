package domain

import (
	"encoding/json"
	"strings"
)

// PreferenceProfile holds a user's explicit taste preferences. Every field is
// optional; an absent preference is never treated as a filter.
type PreferenceProfile struct {
	DietaryType         DietaryType `json:"dietary_preferences,omitempty"`
	SpiceLevel          SpiceLevel  `json:"spice_level,omitempty"`
	PreferredCuisines   []string    `json:"preferred_cuisines,omitempty"`
	DietaryRestrictions []string    `json:"dietary_restrictions,omitempty"` // gluten-free, lactose-free, jain
	Allergens           []string    `json:"allergens,omitempty"`
	MealPreferences     []string    `json:"meal_preferences,omitempty"` // breakfast, lunch, dinner, snacks
	BudgetTier          BudgetTier  `json:"budget_preference,omitempty"`
}

// HasCuisinePreference reports whether at least one preferred cuisine is set
func (p PreferenceProfile) HasCuisinePreference() bool {
	return len(p.PreferredCuisines) > 0
}

// BehaviorSignals are derived from the user's order and review history for
// one recommendation call. They are never persisted.
type BehaviorSignals struct {
	OrderedItems   map[string]bool // items in paid orders
	OrderedVendors map[string]bool // vendors ordered from
	LikedItems     map[string]bool // items the user rated >= 4 in visible reviews
}

// NewBehaviorSignals returns empty signal sets
func NewBehaviorSignals() BehaviorSignals {
	return BehaviorSignals{
		OrderedItems:   make(map[string]bool),
		OrderedVendors: make(map[string]bool),
		LikedItems:     make(map[string]bool),
	}
}

// ParsePreferenceList parses a stored preference field into a clean list.
// Accepts a JSON array, a comma-separated string, or a single value.
// Malformed input degrades to an empty preference, never an error.
func ParsePreferenceList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var parsed []string
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		return cleanList(parsed)
	}

	if strings.Contains(raw, ",") {
		return cleanList(strings.Split(raw, ","))
	}
	return cleanList([]string{raw})
}

func cleanList(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
