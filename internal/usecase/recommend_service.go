package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/homespice/backend/internal/domain"
)

// RecommendConfig holds configuration for the recommendation service
type RecommendConfig struct {
	RadiusKm           float64
	PopularRadiusKm    float64
	DefaultLimit       int
	EnableDebugLogging bool
}

// RecommendationService is the local rule-based ranking pipeline: filter
// cascade, relevance scorer and result composer over read-only provider
// snapshots. It holds no mutable state of its own, so concurrent calls are
// independent. It implements domain.Ranker.
type RecommendationService struct {
	catalog domain.CatalogProvider
	vendors domain.VendorProvider
	history domain.HistoryProvider

	cascade *FilterCascade
	scorer  *Scorer

	radiusKm        float64
	popularRadiusKm float64
	defaultLimit    int
	debug           bool
}

// NewRecommendationService creates the service with its providers
func NewRecommendationService(
	catalog domain.CatalogProvider,
	vendors domain.VendorProvider,
	history domain.HistoryProvider,
	config RecommendConfig,
) *RecommendationService {
	radius := config.RadiusKm
	if radius <= 0 {
		radius = RecommendRadiusKm
	}
	popularRadius := config.PopularRadiusKm
	if popularRadius <= 0 {
		popularRadius = PopularRadiusKm
	}
	limit := config.DefaultLimit
	if limit <= 0 {
		limit = 10
	}

	matcher := NewCuisineMatcher()
	return &RecommendationService{
		catalog:         catalog,
		vendors:         vendors,
		history:         history,
		cascade:         NewFilterCascade(matcher, config.EnableDebugLogging),
		scorer:          NewScorer(matcher, config.EnableDebugLogging),
		radiusKm:        radius,
		popularRadiusKm: popularRadius,
		defaultLimit:    limit,
		debug:           config.EnableDebugLogging,
	}
}

// Rank implements domain.Ranker: derives behavior signals for the user and
// runs the local pipeline
func (s *RecommendationService) Rank(ctx context.Context, req *domain.RankRequest) ([]domain.MenuItem, error) {
	if req == nil {
		return nil, domain.ErrInvalidRequest
	}

	behavior, err := s.BehaviorSignalsFor(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	return s.Recommend(ctx, req.Profile, behavior, req.Coords, req.Limit)
}

// BehaviorSignalsFor derives the user's behavior signals from order and
// review history: paid orders only, and liked items from visible reviews
// rated 4 or higher. An empty userID yields empty signals.
func (s *RecommendationService) BehaviorSignalsFor(ctx context.Context, userID string) (domain.BehaviorSignals, error) {
	signals := domain.NewBehaviorSignals()
	if userID == "" {
		return signals, nil
	}

	orders, err := s.history.PaidOrdersByUser(ctx, userID)
	if err != nil {
		return signals, fmt.Errorf("loading order history: %w", err)
	}
	for _, order := range orders {
		signals.OrderedVendors[order.VendorID] = true
		for _, itemID := range order.ItemIDs {
			signals.OrderedItems[itemID] = true
		}
	}

	reviews, err := s.history.VisibleReviewsByUser(ctx, userID)
	if err != nil {
		return signals, fmt.Errorf("loading review history: %w", err)
	}
	for _, review := range reviews {
		if review.Rating >= 4 {
			signals.LikedItems[review.ItemID] = true
		}
	}

	return signals, nil
}

// Recommend runs the full pipeline: cascade, scorer, composer. It is a pure
// function of its inputs and the provider snapshots; it performs no writes.
// An empty result means an empty catalog, never an over-strict preference.
func (s *RecommendationService) Recommend(
	ctx context.Context,
	profile domain.PreferenceProfile,
	behavior domain.BehaviorSignals,
	coords *domain.Coordinates,
	limit int,
) ([]domain.MenuItem, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}

	vendors, err := s.vendors.ListEligibleVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading vendors: %w", err)
	}

	items, err := s.catalog.ListAvailableItems(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	pool := s.cascade.Run(items, vendors, profile, coords, s.radiusKm, limit)
	if len(pool.Items) == 0 {
		return []domain.MenuItem{}, nil
	}

	vendorByID := make(map[string]*domain.Vendor, len(vendors))
	for i := range vendors {
		vendorByID[vendors[i].ID] = &vendors[i]
	}

	candidates := make([]ScoredCandidate, 0, len(pool.Items))
	for _, item := range pool.Items {
		scored := s.scorer.Score(item, vendorByID[item.VendorID], profile, behavior, pool.CuisineFilterApplied)
		if s.scorer.Include(scored) {
			candidates = append(candidates, scored)
		} else if s.debug {
			log.Printf("[SCORE] excluded item=%s score=%.1f", item.ID, scored.Score)
		}
	}

	return ComposeResults(candidates, profile.HasCuisinePreference(), limit), nil
}

// Popular returns the most popular available items, optionally restricted to
// vendors near the given coordinates. It is the public, preference-free
// listing: rating first, then order count, then view count.
func (s *RecommendationService) Popular(ctx context.Context, coords *domain.Coordinates, limit int) ([]domain.MenuItem, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}

	vendors, err := s.vendors.ListEligibleVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading vendors: %w", err)
	}

	items, err := s.catalog.ListAvailableItems(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	pool := s.cascade.Run(items, vendors, domain.PreferenceProfile{}, coords, s.popularRadiusKm, limit)

	result := pool.Items
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
