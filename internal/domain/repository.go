package domain

import "context"

// CatalogProvider reads available menu items. A nil vendorIDs slice means the
// whole catalog; a non-nil slice restricts to those vendors.
type CatalogProvider interface {
	ListAvailableItems(ctx context.Context, vendorIDs []string) ([]MenuItem, error)
}

// VendorProvider reads vendor profiles. ListEligibleVendors returns only
// approved, active vendors.
type VendorProvider interface {
	ListEligibleVendors(ctx context.Context) ([]Vendor, error)
	GetVendor(ctx context.Context, id string) (*Vendor, error)
}

// PaidOrder is one paid order in a user's history
type PaidOrder struct {
	VendorID string
	ItemIDs  []string
}

// ReviewEntry is one visible review left by a user
type ReviewEntry struct {
	ItemID string
	Rating float64
}

// HistoryProvider reads a user's order and review history
type HistoryProvider interface {
	PaidOrdersByUser(ctx context.Context, userID string) ([]PaidOrder, error)
	VisibleReviewsByUser(ctx context.Context, userID string) ([]ReviewEntry, error)
}

// ProfileProvider reads a user's stored preference profile
type ProfileProvider interface {
	GetProfile(ctx context.Context, userID string) (*PreferenceProfile, error)
}

// RankRequest carries everything a ranker needs for one recommendation call
type RankRequest struct {
	UserID  string            `json:"user_id"`
	Profile PreferenceProfile `json:"preferences"`
	Coords  *Coordinates      `json:"coords,omitempty"`
	Limit   int               `json:"limit"`
}

// Ranker produces an ordered list of menu items for a user. Implementations:
// the local rule-based pipeline, the remote ranking service client, and the
// fallback wrapper that combines the two.
type Ranker interface {
	Rank(ctx context.Context, req *RankRequest) ([]MenuItem, error)
}
