package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/homespice/backend/internal/domain"
)

// PopularLister serves the public popular-dishes listing
type PopularLister interface {
	Popular(ctx context.Context, coords *domain.Coordinates, limit int) ([]domain.MenuItem, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	ranker   domain.Ranker
	popular  PopularLister
	profiles domain.ProfileProvider
}

// NewHandler creates a new HTTP handler
func NewHandler(ranker domain.Ranker, popular PopularLister, profiles domain.ProfileProvider) *Handler {
	return &Handler{
		ranker:   ranker,
		popular:  popular,
		profiles: profiles,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "homespice-backend",
		"version": "1.0.0",
	})
}

// GetRecommendations returns personalized dish recommendations for the
// authenticated user. Authentication itself is upstream; this handler trusts
// the X-User-ID header set by the gateway.
func (h *Handler) GetRecommendations(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return
	}

	profile, err := h.profiles.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	req := &domain.RankRequest{
		UserID:  userID,
		Profile: *profile,
		Coords:  parseCoords(c),
		Limit:   parseLimit(c, 10),
	}

	items, err := h.ranker.Rank(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute recommendations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommendations": items,
		"count":           len(items),
	})
}

// GetPopularDishes returns popular dishes, no auth required
func (h *Handler) GetPopularDishes(c *gin.Context) {
	items, err := h.popular.Popular(c.Request.Context(), parseCoords(c), parseLimit(c, 10))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list popular dishes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dishes": items,
		"count":  len(items),
	})
}

// parseCoords reads optional lat/lon query parameters; both must parse for
// coordinates to count
func parseCoords(c *gin.Context) *domain.Coordinates {
	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr == "" || lonStr == "" {
		return nil
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return nil
	}
	return &domain.Coordinates{Latitude: lat, Longitude: lon}
}

// parseLimit reads the limit query parameter, falling back to def
func parseLimit(c *gin.Context, def int) int {
	limitStr := c.Query("limit")
	if limitStr == "" {
		return def
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return def
	}
	return limit
}
