package usecase

import (
	"log"
	"sort"

	"github.com/homespice/backend/internal/domain"
)

// Default service radii in kilometers
const (
	RecommendRadiusKm = 20.0 // recommendation path casts a wider net
	PopularRadiusKm   = 10.0 // general popular listing
)

// scoringPoolFactor caps the candidate pool handed to the scorer at
// factor * requested limit to bound scoring cost
const scoringPoolFactor = 5

// CascadeResult is the outcome of one cascade run
type CascadeResult struct {
	Items []domain.MenuItem

	// CuisineFilterApplied is true when the cuisine stage restricted the
	// pool. The scorer weighs dietary/spice alignment differently in that
	// branch.
	CuisineFilterApplied bool

	// MatchedVendors holds the vendor ids whose specialty matched any
	// preferred cuisine, whether or not the filter was ultimately applied
	MatchedVendors map[string]bool
}

// FilterCascade narrows the catalog by location, cuisine, dietary type and
// spice level in a fixed priority order, relaxing filters in a defined order
// whenever a stage would leave nothing to recommend.
type FilterCascade struct {
	matcher *CuisineMatcher
	debug   bool
}

// NewFilterCascade creates a filter cascade
func NewFilterCascade(matcher *CuisineMatcher, debug bool) *FilterCascade {
	return &FilterCascade{matcher: matcher, debug: debug}
}

// Run filters the catalog for one recommendation call. items must already be
// availability-filtered; items from ineligible or unknown vendors are dropped
// here. The returned pool is sorted by rating, order count and view count and
// capped at scoringPoolFactor*limit.
func (fc *FilterCascade) Run(
	items []domain.MenuItem,
	vendors []domain.Vendor,
	profile domain.PreferenceProfile,
	coords *domain.Coordinates,
	radiusKm float64,
	limit int,
) CascadeResult {
	eligible := make(map[string]bool, len(vendors))
	for _, v := range vendors {
		if v.Eligible() {
			eligible[v.ID] = true
		}
	}

	all := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if item.Available && eligible[item.VendorID] {
			all = append(all, item)
		}
	}

	base := all

	// Location is a soft stage: it only becomes a hard filter when at
	// least one vendor is inside the radius. Geography alone must never
	// empty the pool.
	if coords != nil {
		nearby := make(map[string]bool)
		for _, v := range vendors {
			if !v.Eligible() {
				continue
			}
			if dist, ok := DistanceKm(coords, v.Location); ok && dist <= radiusKm {
				nearby[v.ID] = true
			}
		}
		if len(nearby) > 0 {
			base = filterByVendor(base, nearby)
			if fc.debug {
				log.Printf("[FILTER] location: %d vendors within %.0f km, %d items", len(nearby), radiusKm, len(base))
			}
		} else if fc.debug {
			log.Printf("[FILTER] location: no vendors within %.0f km, stage skipped", radiusKm)
		}
	}

	matched := fc.matchedVendors(vendors, profile.PreferredCuisines)

	result := CascadeResult{MatchedVendors: matched}
	var candidates []domain.MenuItem

	if profile.HasCuisinePreference() && len(matched) > 0 {
		// An explicit cuisine choice wins: restrict to matching vendors
		// and demote dietary/spice to scoring-only signals.
		result.CuisineFilterApplied = true
		candidates = filterByVendor(base, matched)
		if fc.debug {
			log.Printf("[FILTER] cuisine: %d matching vendors, %d items", len(matched), len(candidates))
		}
	} else {
		candidates = filterByDietary(base, profile.DietaryType)
		candidates = filterBySpice(candidates, profile.SpiceLevel)
		if fc.debug {
			log.Printf("[FILTER] dietary/spice: %d items", len(candidates))
		}
	}

	// Relaxation order when a stage emptied the pool: drop cuisine, then
	// spice, then dietary, then everything. Each stage starts from the full
	// available catalog so that an over-tight location radius cannot starve
	// the fallback either. First non-empty stage wins.
	if len(candidates) == 0 {
		fallbacks := []func() []domain.MenuItem{
			func() []domain.MenuItem {
				return filterBySpice(filterByDietary(all, profile.DietaryType), profile.SpiceLevel)
			},
			func() []domain.MenuItem { return filterByDietary(all, profile.DietaryType) },
			func() []domain.MenuItem { return all },
		}
		for level, stage := range fallbacks {
			if candidates = stage(); len(candidates) > 0 {
				result.CuisineFilterApplied = false
				if fc.debug {
					log.Printf("[FILTER] fallback level %d: %d items", level+1, len(candidates))
				}
				break
			}
		}
	}

	sortByPopularity(candidates)

	if limit > 0 && len(candidates) > limit*scoringPoolFactor {
		candidates = candidates[:limit*scoringPoolFactor]
	}

	result.Items = candidates
	return result
}

// matchedVendors returns the eligible vendors whose specialty matches any
// preferred cuisine
func (fc *FilterCascade) matchedVendors(vendors []domain.Vendor, cuisines []string) map[string]bool {
	matched := make(map[string]bool)
	if len(cuisines) == 0 {
		return matched
	}
	for _, v := range vendors {
		if !v.Eligible() || v.CuisineSpecialty == "" {
			continue
		}
		for _, cuisine := range cuisines {
			if fc.matcher.Matches(cuisine, v.CuisineSpecialty) {
				matched[v.ID] = true
				break
			}
		}
	}
	return matched
}

func filterByVendor(items []domain.MenuItem, vendorIDs map[string]bool) []domain.MenuItem {
	var out []domain.MenuItem
	for _, item := range items {
		if vendorIDs[item.VendorID] {
			out = append(out, item)
		}
	}
	return out
}

func filterByDietary(items []domain.MenuItem, dietary domain.DietaryType) []domain.MenuItem {
	if dietary == "" {
		return items
	}
	var out []domain.MenuItem
	for _, item := range items {
		if item.DietaryType == dietary {
			out = append(out, item)
		}
	}
	return out
}

func filterBySpice(items []domain.MenuItem, spice domain.SpiceLevel) []domain.MenuItem {
	if spice == "" {
		return items
	}
	var out []domain.MenuItem
	for _, item := range items {
		if item.SpiceLevel == spice {
			out = append(out, item)
		}
	}
	return out
}

// sortByPopularity orders by rating, then order count, then view count, all
// descending. The sort is stable so equal items keep catalog order.
func sortByPopularity(items []domain.MenuItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Rating != items[j].Rating {
			return items[i].Rating > items[j].Rating
		}
		if items[i].OrderCount != items[j].OrderCount {
			return items[i].OrderCount > items[j].OrderCount
		}
		return items[i].ViewCount > items[j].ViewCount
	})
}
