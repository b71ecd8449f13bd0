package usecase

import (
	"testing"

	"github.com/homespice/backend/internal/domain"
)

func newTestScorer() *Scorer {
	return NewScorer(NewCuisineMatcher(), false)
}

func southVendor() *domain.Vendor {
	return &domain.Vendor{
		ID: "v-south", KitchenName: "Priya's Kitchen", CuisineSpecialty: "South Indian",
		Status: domain.VendorStatusApproved, Active: true,
	}
}

func plainItem() domain.MenuItem {
	return domain.MenuItem{
		ID:        "d-1",
		VendorID:  "v-south",
		Name:      "Masala Dosa",
		Price:     domain.Money{Amount: 8, Currency: "GBP"},
		Available: true,
	}
}

func TestScorerCuisineContribution(t *testing.T) {
	s := newTestScorer()

	t.Run("match adds 40", func(t *testing.T) {
		profile := domain.PreferenceProfile{PreferredCuisines: []string{"South Indian"}}
		c := s.Score(plainItem(), southVendor(), profile, domain.NewBehaviorSignals(), false)
		if c.Breakdown.Cuisine != 40 {
			t.Errorf("cuisine = %v, want 40", c.Breakdown.Cuisine)
		}
		if !c.CuisineMatch {
			t.Error("expected cuisine match flag")
		}
	})

	t.Run("extra matching cuisines add 5 each", func(t *testing.T) {
		profile := domain.PreferenceProfile{PreferredCuisines: []string{"South Indian", "Tamil", "Kerala"}}
		c := s.Score(plainItem(), southVendor(), profile, domain.NewBehaviorSignals(), false)
		if c.Breakdown.Cuisine != 50 {
			t.Errorf("cuisine = %v, want 50 (40 + 2x5)", c.Breakdown.Cuisine)
		}
	})

	t.Run("miss subtracts 20 when preferences exist", func(t *testing.T) {
		profile := domain.PreferenceProfile{PreferredCuisines: []string{"Bengali"}}
		c := s.Score(plainItem(), southVendor(), profile, domain.NewBehaviorSignals(), false)
		if c.Breakdown.Cuisine != -20 {
			t.Errorf("cuisine = %v, want -20", c.Breakdown.Cuisine)
		}
	})

	t.Run("no preferences means no cuisine term", func(t *testing.T) {
		c := s.Score(plainItem(), southVendor(), domain.PreferenceProfile{}, domain.NewBehaviorSignals(), false)
		if c.Breakdown.Cuisine != 0 {
			t.Errorf("cuisine = %v, want 0", c.Breakdown.Cuisine)
		}
	})
}

func TestScorerRatingAndPopularity(t *testing.T) {
	s := newTestScorer()

	item := plainItem()
	item.Rating = 4.5
	item.OrderCount = 500  // capped at 20
	item.ViewCount = 50000 // capped at 10

	c := s.Score(item, southVendor(), domain.PreferenceProfile{}, domain.NewBehaviorSignals(), false)
	if c.Breakdown.Rating != 45 {
		t.Errorf("rating = %v, want 45", c.Breakdown.Rating)
	}
	if c.Breakdown.Popularity != 30 {
		t.Errorf("popularity = %v, want 30 (both terms capped)", c.Breakdown.Popularity)
	}
}

func TestScorerBehaviorContribution(t *testing.T) {
	s := newTestScorer()

	t.Run("new item from known vendor", func(t *testing.T) {
		behavior := domain.NewBehaviorSignals()
		behavior.OrderedVendors["v-south"] = true
		c := s.Score(plainItem(), southVendor(), domain.PreferenceProfile{}, behavior, false)
		// +25 known vendor, +5 diversity (item itself never ordered)
		if c.Breakdown.Behavior != 30 {
			t.Errorf("behavior = %v, want 30", c.Breakdown.Behavior)
		}
	})

	t.Run("liked and previously ordered item", func(t *testing.T) {
		behavior := domain.NewBehaviorSignals()
		behavior.OrderedVendors["v-south"] = true
		behavior.OrderedItems["d-1"] = true
		behavior.LikedItems["d-1"] = true
		c := s.Score(plainItem(), southVendor(), domain.PreferenceProfile{}, behavior, false)
		// +25 vendor, +50 liked, no diversity bonus
		if c.Breakdown.Behavior != 75 {
			t.Errorf("behavior = %v, want 75", c.Breakdown.Behavior)
		}
	})
}

func TestScorerDietaryAndSpiceAlignment(t *testing.T) {
	s := newTestScorer()

	item := plainItem()
	item.DietaryType = domain.DietaryVeg
	item.SpiceLevel = domain.SpiceHot

	t.Run("match without cuisine context", func(t *testing.T) {
		profile := domain.PreferenceProfile{DietaryType: domain.DietaryVeg, SpiceLevel: domain.SpiceHot}
		c := s.Score(item, southVendor(), profile, domain.NewBehaviorSignals(), false)
		if c.Breakdown.Dietary != 15 {
			t.Errorf("dietary = %v, want 15", c.Breakdown.Dietary)
		}
		if c.Breakdown.Spice != 12 {
			t.Errorf("spice = %v, want 12", c.Breakdown.Spice)
		}
	})

	t.Run("match is stronger on a cuisine-matched item", func(t *testing.T) {
		profile := domain.PreferenceProfile{
			DietaryType:       domain.DietaryVeg,
			SpiceLevel:        domain.SpiceHot,
			PreferredCuisines: []string{"South Indian"},
		}
		c := s.Score(item, southVendor(), profile, domain.NewBehaviorSignals(), true)
		if c.Breakdown.Dietary != 20 {
			t.Errorf("dietary = %v, want 20", c.Breakdown.Dietary)
		}
		if c.Breakdown.Spice != 15 {
			t.Errorf("spice = %v, want 15", c.Breakdown.Spice)
		}
	})

	t.Run("mismatch is softened on a cuisine-matched item", func(t *testing.T) {
		profile := domain.PreferenceProfile{
			DietaryType:       domain.DietaryNonVeg,
			SpiceLevel:        domain.SpiceMild,
			PreferredCuisines: []string{"South Indian"},
		}
		c := s.Score(item, southVendor(), profile, domain.NewBehaviorSignals(), true)
		if c.Breakdown.Dietary != -5 {
			t.Errorf("dietary = %v, want -5", c.Breakdown.Dietary)
		}
		if c.Breakdown.Spice != -2 {
			t.Errorf("spice = %v, want -2", c.Breakdown.Spice)
		}
	})

	t.Run("mismatch under cuisine filter but item not matched", func(t *testing.T) {
		profile := domain.PreferenceProfile{
			DietaryType:       domain.DietaryNonVeg,
			PreferredCuisines: []string{"Bengali"},
		}
		c := s.Score(item, southVendor(), profile, domain.NewBehaviorSignals(), true)
		if c.Breakdown.Dietary != -10 {
			t.Errorf("dietary = %v, want -10", c.Breakdown.Dietary)
		}
	})

	t.Run("mismatch with no cuisine context", func(t *testing.T) {
		profile := domain.PreferenceProfile{DietaryType: domain.DietaryNonVeg, SpiceLevel: domain.SpiceMild}
		c := s.Score(item, southVendor(), profile, domain.NewBehaviorSignals(), false)
		if c.Breakdown.Dietary != -15 {
			t.Errorf("dietary = %v, want -15", c.Breakdown.Dietary)
		}
		if c.Breakdown.Spice != -5 {
			t.Errorf("spice = %v, want -5", c.Breakdown.Spice)
		}
	})

	t.Run("no preference means no term", func(t *testing.T) {
		c := s.Score(item, southVendor(), domain.PreferenceProfile{}, domain.NewBehaviorSignals(), false)
		if c.Breakdown.Dietary != 0 || c.Breakdown.Spice != 0 {
			t.Errorf("dietary/spice = %v/%v, want 0/0", c.Breakdown.Dietary, c.Breakdown.Spice)
		}
	})
}

func TestScorerMealTimeAlignment(t *testing.T) {
	s := newTestScorer()

	item := plainItem()
	item.Category = "Lunch"

	t.Run("matching meal tag adds 15", func(t *testing.T) {
		profile := domain.PreferenceProfile{MealPreferences: []string{"lunch"}}
		c := s.Score(item, southVendor(), profile, domain.NewBehaviorSignals(), false)
		if c.Breakdown.MealTime != 15 {
			t.Errorf("mealTime = %v, want 15", c.Breakdown.MealTime)
		}
	})

	t.Run("non-matching meal tag subtracts 5", func(t *testing.T) {
		profile := domain.PreferenceProfile{MealPreferences: []string{"breakfast"}}
		c := s.Score(item, southVendor(), profile, domain.NewBehaviorSignals(), false)
		if c.Breakdown.MealTime != -5 {
			t.Errorf("mealTime = %v, want -5", c.Breakdown.MealTime)
		}
	})

	t.Run("substring matching works both ways", func(t *testing.T) {
		profile := domain.PreferenceProfile{MealPreferences: []string{"light lunch options"}}
		c := s.Score(item, southVendor(), profile, domain.NewBehaviorSignals(), false)
		if c.Breakdown.MealTime != 15 {
			t.Errorf("mealTime = %v, want 15 (category contained in tag)", c.Breakdown.MealTime)
		}
	})
}

func TestScorerBudgetAlignment(t *testing.T) {
	s := newTestScorer()

	priced := func(amount float64, currency string) domain.MenuItem {
		item := plainItem()
		item.Price = domain.Money{Amount: amount, Currency: currency}
		return item
	}

	cases := []struct {
		name   string
		tier   domain.BudgetTier
		item   domain.MenuItem
		budget float64
	}{
		{"low tier cheap dish", domain.BudgetLow, priced(8, "GBP"), 25},
		{"medium tier mid dish", domain.BudgetMedium, priced(15, "GBP"), 25},
		{"high tier pricey dish", domain.BudgetHigh, priced(30, "GBP"), 25},
		{"low tier pricey dish", domain.BudgetLow, priced(25, "GBP"), -40},
		{"high tier cheap dish", domain.BudgetHigh, priced(5, "GBP"), -15},
		{"medium tier cheap dish no term", domain.BudgetMedium, priced(5, "GBP"), 0},
		{"minor-unit price converts before comparison", domain.BudgetLow, priced(800, "INR"), 25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := domain.PreferenceProfile{BudgetTier: tc.tier}
			c := s.Score(tc.item, southVendor(), profile, domain.NewBehaviorSignals(), false)
			if c.Breakdown.Budget != tc.budget {
				t.Errorf("budget = %v, want %v", c.Breakdown.Budget, tc.budget)
			}
		})
	}
}

func TestScorerRestrictionPenalties(t *testing.T) {
	s := newTestScorer()

	t.Run("each triggered restriction subtracts 50", func(t *testing.T) {
		item := plainItem()
		item.Description = "Paneer in rich butter gravy with onion and garlic"
		profile := domain.PreferenceProfile{DietaryRestrictions: []string{"lactose-free", "jain"}}
		c := s.Score(item, southVendor(), profile, domain.NewBehaviorSignals(), false)
		if c.Breakdown.Restrictions != -100 {
			t.Errorf("restrictions = %v, want -100", c.Breakdown.Restrictions)
		}
	})

	t.Run("ingredients are scanned too", func(t *testing.T) {
		item := plainItem()
		item.Ingredients = "wheat flour, gluten, salt"
		profile := domain.PreferenceProfile{DietaryRestrictions: []string{"gluten-free"}}
		c := s.Score(item, southVendor(), profile, domain.NewBehaviorSignals(), false)
		if c.Breakdown.Restrictions != -50 {
			t.Errorf("restrictions = %v, want -50", c.Breakdown.Restrictions)
		}
	})

	t.Run("unknown restriction tag is ignored", func(t *testing.T) {
		item := plainItem()
		item.Description = "contains everything"
		profile := domain.PreferenceProfile{DietaryRestrictions: []string{"keto"}}
		c := s.Score(item, southVendor(), profile, domain.NewBehaviorSignals(), false)
		if c.Breakdown.Restrictions != 0 {
			t.Errorf("restrictions = %v, want 0", c.Breakdown.Restrictions)
		}
	})
}

func TestScorerAllergenPenalty(t *testing.T) {
	s := newTestScorer()

	t.Run("overlapping allergen costs exactly 60", func(t *testing.T) {
		safe := plainItem()
		risky := plainItem()
		risky.ID = "d-2"
		risky.Allergens = []string{"peanuts"}

		profile := domain.PreferenceProfile{Allergens: []string{"peanut"}}
		cSafe := s.Score(safe, southVendor(), profile, domain.NewBehaviorSignals(), false)
		cRisky := s.Score(risky, southVendor(), profile, domain.NewBehaviorSignals(), false)

		if diff := cSafe.Score - cRisky.Score; diff != 60 {
			t.Errorf("allergen delta = %v, want 60", diff)
		}
	})

	t.Run("substring matches either direction", func(t *testing.T) {
		item := plainItem()
		item.Allergens = []string{"nut"}
		profile := domain.PreferenceProfile{Allergens: []string{"Peanut"}}
		c := s.Score(item, southVendor(), profile, domain.NewBehaviorSignals(), false)
		if c.Breakdown.Allergens != -60 {
			t.Errorf("allergens = %v, want -60", c.Breakdown.Allergens)
		}
	})

	t.Run("penalty stacks per avoided allergen", func(t *testing.T) {
		item := plainItem()
		item.Allergens = []string{"peanuts", "shellfish"}
		profile := domain.PreferenceProfile{Allergens: []string{"peanut", "shellfish"}}
		c := s.Score(item, southVendor(), profile, domain.NewBehaviorSignals(), false)
		if c.Breakdown.Allergens != -120 {
			t.Errorf("allergens = %v, want -120", c.Breakdown.Allergens)
		}
	})
}

func TestScorerInclusionRules(t *testing.T) {
	s := newTestScorer()

	t.Run("cuisine match floors the score at 20", func(t *testing.T) {
		item := plainItem()
		item.Allergens = []string{"dairy", "nuts", "gluten"}
		profile := domain.PreferenceProfile{
			PreferredCuisines: []string{"South Indian"},
			Allergens:         []string{"dairy", "nuts", "gluten"},
		}
		c := s.Score(item, southVendor(), profile, domain.NewBehaviorSignals(), true)
		if c.Score != 20 {
			t.Errorf("score = %v, want floored 20", c.Score)
		}
		if !s.Include(c) {
			t.Error("cuisine-matched item must always be included")
		}
	})

	t.Run("non-matched item below threshold is excluded", func(t *testing.T) {
		item := plainItem()
		item.Allergens = []string{"dairy"}
		profile := domain.PreferenceProfile{
			PreferredCuisines: []string{"Bengali"},
			Allergens:         []string{"dairy"},
		}
		// -20 cuisine miss, -60 allergen, +5 diversity = -75
		c := s.Score(item, southVendor(), profile, domain.NewBehaviorSignals(), false)
		if s.Include(c) {
			t.Errorf("score %v should be excluded", c.Score)
		}
	})

	t.Run("non-matched item above threshold is included", func(t *testing.T) {
		item := plainItem()
		item.Rating = 3.0
		profile := domain.PreferenceProfile{PreferredCuisines: []string{"Bengali"}}
		// -20 cuisine miss, +30 rating, +5 diversity = +15
		c := s.Score(item, southVendor(), profile, domain.NewBehaviorSignals(), false)
		if !s.Include(c) {
			t.Errorf("score %v should be included", c.Score)
		}
	})
}
