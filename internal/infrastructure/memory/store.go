package memory

import (
	"context"
	"sync"

	"github.com/homespice/backend/internal/domain"
)

// Store is a map-backed implementation of every read-only provider the
// engine consumes. It backs local development and tests; production uses the
// postgres providers.
type Store struct {
	mu       sync.RWMutex
	items    []domain.MenuItem
	vendors  []domain.Vendor
	orders   map[string][]domain.PaidOrder
	reviews  map[string][]domain.ReviewEntry
	profiles map[string]domain.PreferenceProfile
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		orders:   make(map[string][]domain.PaidOrder),
		reviews:  make(map[string][]domain.ReviewEntry),
		profiles: make(map[string]domain.PreferenceProfile),
	}
}

// AddVendors appends vendor snapshots
func (s *Store) AddVendors(vendors ...domain.Vendor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vendors = append(s.vendors, vendors...)
}

// AddItems appends menu item snapshots
func (s *Store) AddItems(items ...domain.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, items...)
}

// AddOrder records a paid order for a user
func (s *Store) AddOrder(userID string, order domain.PaidOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[userID] = append(s.orders[userID], order)
}

// AddReview records a visible review for a user
func (s *Store) AddReview(userID string, review domain.ReviewEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews[userID] = append(s.reviews[userID], review)
}

// SetProfile stores a user's preference profile
func (s *Store) SetProfile(userID string, profile domain.PreferenceProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[userID] = profile
}

// ListAvailableItems implements domain.CatalogProvider
func (s *Store) ListAvailableItems(ctx context.Context, vendorIDs []string) ([]domain.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var allowed map[string]bool
	if vendorIDs != nil {
		allowed = make(map[string]bool, len(vendorIDs))
		for _, id := range vendorIDs {
			allowed[id] = true
		}
	}

	var out []domain.MenuItem
	for _, item := range s.items {
		if !item.Available {
			continue
		}
		if allowed != nil && !allowed[item.VendorID] {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

// ListEligibleVendors implements domain.VendorProvider
func (s *Store) ListEligibleVendors(ctx context.Context) ([]domain.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Vendor
	for _, v := range s.vendors {
		if v.Eligible() {
			out = append(out, v)
		}
	}
	return out, nil
}

// GetVendor implements domain.VendorProvider
func (s *Store) GetVendor(ctx context.Context, id string) (*domain.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.vendors {
		if v.ID == id {
			vendor := v
			return &vendor, nil
		}
	}
	return nil, domain.ErrVendorNotFound
}

// PaidOrdersByUser implements domain.HistoryProvider
func (s *Store) PaidOrdersByUser(ctx context.Context, userID string) ([]domain.PaidOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]domain.PaidOrder, len(s.orders[userID]))
	copy(orders, s.orders[userID])
	return orders, nil
}

// VisibleReviewsByUser implements domain.HistoryProvider
func (s *Store) VisibleReviewsByUser(ctx context.Context, userID string) ([]domain.ReviewEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reviews := make([]domain.ReviewEntry, len(s.reviews[userID]))
	copy(reviews, s.reviews[userID])
	return reviews, nil
}

// GetProfile implements domain.ProfileProvider
func (s *Store) GetProfile(ctx context.Context, userID string) (*domain.PreferenceProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &profile, nil
}
