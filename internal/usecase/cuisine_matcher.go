package usecase

import "strings"

// cuisineGroup maps one canonical cuisine group to the locale, language and
// dish substrings that identify it
type cuisineGroup struct {
	name     string
	variants []string
}

// cuisineGroups is checked in declared order; a string binds to the first
// group with a matching variant, so broader groups ("south indian" claims
// "kerala") must come before the narrow ones. Two strings binding to the
// same group are the same cuisine even with zero textual overlap
// ("Tamil" vs "South Indian").
var cuisineGroups = []cuisineGroup{
	{"south indian", []string{
		"south indian", "south", "tamil", "telugu", "kannada", "malayalam",
		"kerala", "kerala cuisine", "andhra", "andhra pradesh",
		"dosa", "idli", "sambar", "rasam",
	}},
	{"north indian", []string{
		"north indian", "north", "punjabi", "delhi", "rajasthani", "gujarati",
		"uttar pradesh", "haryana", "himachal",
	}},
	{"bengali", []string{"bengali", "bengal", "kolkata", "west bengal"}},
	{"gujarati", []string{"gujarati", "gujarat"}},
	{"maharashtrian", []string{"maharashtrian", "maharashtra", "marathi", "pune", "mumbai"}},
	{"punjabi", []string{"punjabi", "punjab"}},
	{"rajasthani", []string{"rajasthani", "rajasthan"}},
	{"kerala", []string{"kerala", "kerala cuisine", "malayalam", "kerala food"}},
}

// cuisineNoiseWords are generic tokens that carry no signal for the
// word-overlap fallback ("North Indian Food" vs "South Indian Food" share
// two of three tokens, none meaningful).
var cuisineNoiseWords = map[string]bool{
	"indian":  true,
	"cuisine": true,
	"food":    true,
	"style":   true,
	"cooking": true,
}

// CuisineMatcher decides whether a user-stated cuisine preference corresponds
// to a vendor-stated cuisine specialty
type CuisineMatcher struct{}

// NewCuisineMatcher creates a cuisine matcher
func NewCuisineMatcher() *CuisineMatcher {
	return &CuisineMatcher{}
}

// Matches reports whether userCuisine and vendorCuisine name the same
// cuisine. Rules are applied in a fixed order:
//
//  1. north/south conflict - never match, overrides everything below
//  2. same canonical group
//  3. exact match after normalization
//  4. substring containment either direction (conflict re-checked)
//  5. >= 50% meaningful word overlap (conflict re-checked)
func (m *CuisineMatcher) Matches(userCuisine, vendorCuisine string) bool {
	if userCuisine == "" || vendorCuisine == "" {
		return false
	}

	user := normalizeCuisine(userCuisine)
	vendor := normalizeCuisine(vendorCuisine)

	// "South Indian" must never match "North Indian" regardless of any
	// shared tokens or containment.
	if northSouthConflict(user, vendor) {
		return false
	}

	userGroup := cuisineGroupOf(user)
	if userGroup != "" && userGroup == cuisineGroupOf(vendor) {
		return true
	}

	if user == vendor {
		return true
	}

	if strings.Contains(vendor, user) || strings.Contains(user, vendor) {
		return !northSouthConflict(user, vendor)
	}

	userWords := meaningfulWords(user)
	vendorWords := meaningfulWords(vendor)

	common := 0
	for w := range userWords {
		if vendorWords[w] {
			common++
		}
	}

	smaller := len(userWords)
	if len(vendorWords) < smaller {
		smaller = len(vendorWords)
	}

	if common > 0 && float64(common) >= float64(smaller)*0.5 {
		return !northSouthConflict(user, vendor)
	}

	return false
}

// normalizeCuisine lowercases and trims a cuisine string
func normalizeCuisine(cuisine string) string {
	return strings.ToLower(strings.TrimSpace(cuisine))
}

// northSouthConflict reports the one hard conflict pair: a "north" string
// and a "south" string are never related
func northSouthConflict(a, b string) bool {
	return (strings.Contains(a, "north") && strings.Contains(b, "south")) ||
		(strings.Contains(a, "south") && strings.Contains(b, "north"))
}

// cuisineGroupOf returns the canonical group a normalized cuisine string
// belongs to, or "" when no variant substring matches
func cuisineGroupOf(cuisine string) string {
	for _, group := range cuisineGroups {
		for _, variant := range group.variants {
			if strings.Contains(cuisine, variant) {
				return group.name
			}
		}
	}
	return ""
}

// meaningfulWords tokenizes on whitespace and drops noise words
func meaningfulWords(cuisine string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(cuisine) {
		if !cuisineNoiseWords[w] {
			words[w] = true
		}
	}
	return words
}
