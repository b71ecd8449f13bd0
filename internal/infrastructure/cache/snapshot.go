package cache

import (
	"context"
	"sync"
	"time"

	"github.com/homespice/backend/internal/domain"
)

// VendorSnapshot wraps a VendorProvider with a TTL'd snapshot of the
// eligible-vendor list. The snapshot is immutable once taken, so every
// recommendation call sees one consistent view; refreshes happen between
// calls when the TTL lapses.
type VendorSnapshot struct {
	provider domain.VendorProvider
	ttl      time.Duration

	mu        sync.RWMutex
	vendors   []domain.Vendor
	fetchedAt time.Time
}

// NewVendorSnapshot creates a snapshot cache in front of provider
func NewVendorSnapshot(provider domain.VendorProvider, ttl time.Duration) *VendorSnapshot {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &VendorSnapshot{provider: provider, ttl: ttl}
}

// ListEligibleVendors implements domain.VendorProvider, serving from the
// snapshot and refreshing it when stale
func (c *VendorSnapshot) ListEligibleVendors(ctx context.Context) ([]domain.Vendor, error) {
	c.mu.RLock()
	if c.vendors != nil && time.Since(c.fetchedAt) < c.ttl {
		vendors := c.vendors
		c.mu.RUnlock()
		return vendors, nil
	}
	c.mu.RUnlock()

	vendors, err := c.provider.ListEligibleVendors(ctx)
	if err != nil {
		// Serve the stale snapshot if one exists rather than failing the call
		c.mu.RLock()
		defer c.mu.RUnlock()
		if c.vendors != nil {
			return c.vendors, nil
		}
		return nil, err
	}

	c.mu.Lock()
	c.vendors = vendors
	c.fetchedAt = time.Now()
	c.mu.Unlock()

	return vendors, nil
}

// GetVendor implements domain.VendorProvider, answering from the snapshot
// when possible and delegating otherwise
func (c *VendorSnapshot) GetVendor(ctx context.Context, id string) (*domain.Vendor, error) {
	c.mu.RLock()
	if c.vendors != nil && time.Since(c.fetchedAt) < c.ttl {
		for _, v := range c.vendors {
			if v.ID == id {
				vendor := v
				c.mu.RUnlock()
				return &vendor, nil
			}
		}
	}
	c.mu.RUnlock()

	return c.provider.GetVendor(ctx, id)
}

// Invalidate drops the snapshot so the next read refetches
func (c *VendorSnapshot) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vendors = nil
	c.fetchedAt = time.Time{}
}
