package domain

// DietaryType classifies a dish or a user's dietary preference
type DietaryType string

const (
	DietaryVeg    DietaryType = "veg"
	DietaryNonVeg DietaryType = "non-veg"
	DietaryVegan  DietaryType = "vegan"
)

// SpiceLevel classifies a dish's heat or a user's tolerance
type SpiceLevel string

const (
	SpiceMild   SpiceLevel = "mild"
	SpiceMedium SpiceLevel = "medium"
	SpiceHot    SpiceLevel = "hot"
)

// BudgetTier groups prices into coarse affordability bands
type BudgetTier string

const (
	BudgetLow    BudgetTier = "low"
	BudgetMedium BudgetTier = "medium"
	BudgetHigh   BudgetTier = "high"
)

// Vendor approval status values
const (
	VendorStatusPending  = "pending"
	VendorStatusApproved = "approved"
	VendorStatusRejected = "rejected"
)

// Coordinates is a latitude/longitude pair in degrees
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// minorUnitRatio converts minor-unit stored prices (e.g. INR) to the
// major-unit reference currency used for all budget comparisons (1:100).
const minorUnitRatio = 100.0

// Money is a price with its stored currency code
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Reference returns the price in the major-unit reference currency.
// Prices stored in minor units (INR, or unlabelled values large enough that
// they can only be minor units) are divided by the fixed 1:100 ratio.
// Every budget comparison and every displayed price goes through this.
func (m Money) Reference() float64 {
	if m.Currency == "INR" || (m.Currency == "" && m.Amount > 50) {
		return m.Amount / minorUnitRatio
	}
	return m.Amount
}

// MenuItem is a read-only catalog snapshot of a single dish.
// The engine never mutates it.
type MenuItem struct {
	ID          string      `json:"id"`
	VendorID    string      `json:"vendor_id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Ingredients string      `json:"ingredients,omitempty"`
	Price       Money       `json:"price"`
	Category    string      `json:"category,omitempty"` // meal-time label, e.g. "Lunch"
	DietaryType DietaryType `json:"dietary_type,omitempty"`
	SpiceLevel  SpiceLevel  `json:"spice_level,omitempty"`
	Allergens   []string    `json:"allergens,omitempty"`
	Available   bool        `json:"is_available"`
	Rating      float64     `json:"average_rating"` // 0-5
	OrderCount  int         `json:"order_count"`
	ViewCount   int         `json:"view_count"`
}

// Vendor is a read-only snapshot of a home kitchen's profile
type Vendor struct {
	ID               string       `json:"id"`
	KitchenName      string       `json:"kitchen_name"`
	CuisineSpecialty string       `json:"cuisine_specialty"`
	Location         *Coordinates `json:"location,omitempty"`
	Status           string       `json:"status"`
	Active           bool         `json:"is_active"`
}

// Eligible reports whether the vendor may appear in any result
func (v Vendor) Eligible() bool {
	return v.Status == VendorStatusApproved && v.Active
}
