package usecase

import (
	"log"
	"strings"

	"github.com/homespice/backend/internal/domain"
)

// Score weight constants. The magnitudes are empirically tuned rather than
// derived from a model; treat them as tunable, but changing any of them
// changes result ordering.
const (
	cuisineMatchBonus      = 40.0 // vendor specialty matches a preferred cuisine
	extraCuisineMatchBonus = 5.0  // per additional preferred cuisine that also matches
	cuisineMissPenalty     = 20.0 // user has cuisine preferences, none match

	ratingWeight = 10.0 // 0-5 rating scaled to 0-50

	orderCountWeight = 0.1
	orderCountCap    = 20.0
	viewCountWeight  = 0.01
	viewCountCap     = 10.0

	knownVendorBonus = 25.0 // user ordered from this vendor before
	likedItemBonus   = 50.0 // user rated this item >= 4
	diversityBonus   = 5.0  // user never ordered this item

	dietaryMatchCuisineBonus   = 20.0 // dietary match while cuisine matched or filter applied
	dietaryMatchBonus          = 15.0
	dietaryMissCuisinePenalty  = 5.0 // mismatch on a cuisine-matched item
	dietaryMissFilteredPenalty = 10.0
	dietaryMissPenalty         = 15.0

	spiceMatchCuisineBonus  = 15.0
	spiceMatchBonus         = 12.0
	spiceMissCuisinePenalty = 2.0
	spiceMissPenalty        = 5.0

	mealMatchBonus  = 15.0
	mealMissPenalty = 5.0

	budgetMatchBonus       = 25.0
	budgetOverLowPenalty   = 40.0 // expensive dish for a low-budget user
	budgetUnderHighPenalty = 15.0 // very cheap dish for a high-budget user

	restrictionPenalty = 50.0 // per triggered dietary restriction
	allergenPenalty    = 60.0 // per avoided allergen found on the item

	// Budget tier boundaries in reference-currency units:
	// low <= 10, medium (10, 20], high > 20
	budgetLowMax    = 10.0
	budgetMediumMax = 20.0
)

// Inclusion thresholds. Cuisine-matched items are always included with their
// score floored; everything else must clear the inclusion threshold, and
// backfill during composition additionally requires the backfill threshold.
const (
	cuisineMatchFloor  = 20.0
	inclusionThreshold = -30.0
	backfillThreshold  = -20.0
)

// restrictionTriggers maps each dietary restriction tag to the ingredient
// terms that violate it when found in an item's description or ingredients
var restrictionTriggers = map[string][]string{
	"gluten-free":  {"gluten"},
	"lactose-free": {"dairy", "milk", "cream", "butter", "cheese", "yogurt", "curd"},
	"jain":         {"onion", "garlic", "root", "potato", "ginger"},
}

// ScoreBreakdown holds every named contribution to a candidate's score.
// Keeping the terms separate lets tests assert on individual signals instead
// of one opaque number.
type ScoreBreakdown struct {
	Cuisine      float64 `json:"cuisine"`
	Rating       float64 `json:"rating"`
	Popularity   float64 `json:"popularity"`
	Behavior     float64 `json:"behavior"`
	Dietary      float64 `json:"dietary"`
	Spice        float64 `json:"spice"`
	MealTime     float64 `json:"meal_time"`
	Budget       float64 `json:"budget"`
	Restrictions float64 `json:"restrictions"`
	Allergens    float64 `json:"allergens"`
}

// Total sums all contributions. The result is a signed real number and can
// go well below zero.
func (b ScoreBreakdown) Total() float64 {
	return b.Cuisine + b.Rating + b.Popularity + b.Behavior + b.Dietary +
		b.Spice + b.MealTime + b.Budget + b.Restrictions + b.Allergens
}

// ScoredCandidate pairs a menu item with its score for the duration of one
// recommendation call
type ScoredCandidate struct {
	Item         domain.MenuItem
	Breakdown    ScoreBreakdown
	Score        float64
	CuisineMatch bool
}

// Scorer computes the relevance score of a candidate item for a user
type Scorer struct {
	matcher *CuisineMatcher
	debug   bool
}

// NewScorer creates a scorer
func NewScorer(matcher *CuisineMatcher, debug bool) *Scorer {
	return &Scorer{matcher: matcher, debug: debug}
}

// Score computes the breakdown for one item. vendor may be nil when the
// vendor profile is unknown; the cuisine term is then skipped.
// cuisineFilterApplied reports whether the cascade restricted the pool by
// cuisine, which shifts the dietary and spice weights.
func (s *Scorer) Score(
	item domain.MenuItem,
	vendor *domain.Vendor,
	profile domain.PreferenceProfile,
	behavior domain.BehaviorSignals,
	cuisineFilterApplied bool,
) ScoredCandidate {
	var b ScoreBreakdown
	cuisineMatched := false

	if profile.HasCuisinePreference() && vendor != nil && vendor.CuisineSpecialty != "" {
		matches := 0
		for _, cuisine := range profile.PreferredCuisines {
			if s.matcher.Matches(cuisine, vendor.CuisineSpecialty) {
				matches++
			}
		}
		if matches > 0 {
			cuisineMatched = true
			b.Cuisine = cuisineMatchBonus + extraCuisineMatchBonus*float64(matches-1)
		} else {
			b.Cuisine = -cuisineMissPenalty
		}
	}

	b.Rating = item.Rating * ratingWeight

	b.Popularity = capped(float64(item.OrderCount)*orderCountWeight, orderCountCap) +
		capped(float64(item.ViewCount)*viewCountWeight, viewCountCap)

	if behavior.OrderedVendors[item.VendorID] {
		b.Behavior += knownVendorBonus
	}
	if behavior.LikedItems[item.ID] {
		b.Behavior += likedItemBonus
	}
	if !behavior.OrderedItems[item.ID] {
		b.Behavior += diversityBonus
	}

	if profile.DietaryType != "" && item.DietaryType != "" {
		switch {
		case item.DietaryType == profile.DietaryType && (cuisineMatched || cuisineFilterApplied):
			b.Dietary = dietaryMatchCuisineBonus
		case item.DietaryType == profile.DietaryType:
			b.Dietary = dietaryMatchBonus
		case cuisineMatched:
			b.Dietary = -dietaryMissCuisinePenalty
		case cuisineFilterApplied:
			b.Dietary = -dietaryMissFilteredPenalty
		default:
			b.Dietary = -dietaryMissPenalty
		}
	}

	if profile.SpiceLevel != "" && item.SpiceLevel != "" {
		switch {
		case item.SpiceLevel == profile.SpiceLevel && (cuisineMatched || cuisineFilterApplied):
			b.Spice = spiceMatchCuisineBonus
		case item.SpiceLevel == profile.SpiceLevel:
			b.Spice = spiceMatchBonus
		case cuisineMatched:
			b.Spice = -spiceMissCuisinePenalty
		default:
			b.Spice = -spiceMissPenalty
		}
	}

	if len(profile.MealPreferences) > 0 && item.Category != "" {
		category := strings.ToLower(item.Category)
		matched := false
		for _, pref := range profile.MealPreferences {
			p := strings.ToLower(strings.TrimSpace(pref))
			if p == "" {
				continue
			}
			if strings.Contains(category, p) || strings.Contains(p, category) {
				matched = true
				break
			}
		}
		if matched {
			b.MealTime = mealMatchBonus
		} else {
			b.MealTime = -mealMissPenalty
		}
	}

	if profile.BudgetTier != "" {
		price := item.Price.Reference()
		switch {
		case profile.BudgetTier == domain.BudgetLow && price <= budgetLowMax:
			b.Budget = budgetMatchBonus
		case profile.BudgetTier == domain.BudgetMedium && price > budgetLowMax && price <= budgetMediumMax:
			b.Budget = budgetMatchBonus
		case profile.BudgetTier == domain.BudgetHigh && price > budgetMediumMax:
			b.Budget = budgetMatchBonus
		case profile.BudgetTier == domain.BudgetLow && price > budgetMediumMax:
			b.Budget = -budgetOverLowPenalty
		case profile.BudgetTier == domain.BudgetHigh && price < budgetLowMax:
			b.Budget = -budgetUnderHighPenalty
		}
	}

	if len(profile.DietaryRestrictions) > 0 {
		text := strings.ToLower(item.Description + " " + item.Ingredients)
		for _, restriction := range profile.DietaryRestrictions {
			triggers, ok := restrictionTriggers[strings.ToLower(strings.TrimSpace(restriction))]
			if !ok {
				continue
			}
			for _, trigger := range triggers {
				if strings.Contains(text, trigger) {
					b.Restrictions -= restrictionPenalty
					break
				}
			}
		}
	}

	if len(profile.Allergens) > 0 && len(item.Allergens) > 0 {
		for _, avoided := range profile.Allergens {
			a := strings.ToLower(strings.TrimSpace(avoided))
			if a == "" {
				continue
			}
			for _, declared := range item.Allergens {
				d := strings.ToLower(strings.TrimSpace(declared))
				if d == "" {
					continue
				}
				if strings.Contains(d, a) || strings.Contains(a, d) {
					b.Allergens -= allergenPenalty
					break
				}
			}
		}
	}

	score := b.Total()

	// Cuisine-matched items carry a score floor so that stacked secondary
	// penalties can never push an explicitly requested cuisine out of the
	// result.
	if cuisineMatched && score < cuisineMatchFloor {
		score = cuisineMatchFloor
	}

	if s.debug {
		log.Printf("[SCORE] item=%s score=%.1f cuisineMatch=%v breakdown=%+v", item.ID, score, cuisineMatched, b)
	}

	return ScoredCandidate{Item: item, Breakdown: b, Score: score, CuisineMatch: cuisineMatched}
}

// Include reports whether a scored candidate survives into composition.
// Cuisine-matched items always do; others must beat the inclusion threshold.
func (s *Scorer) Include(c ScoredCandidate) bool {
	return c.CuisineMatch || c.Score > inclusionThreshold
}

func capped(value, cap float64) float64 {
	if value > cap {
		return cap
	}
	return value
}
