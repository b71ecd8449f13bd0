package postgres

import (
	"context"
	"errors"

	"github.com/homespice/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfileRepository reads user preference profiles from postgres
type ProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository creates a profile repository
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// GetProfile implements domain.ProfileProvider. List fields are stored as
// JSON or comma-separated text; malformed values degrade to empty
// preferences rather than errors.
func (r *ProfileRepository) GetProfile(ctx context.Context, userID string) (*domain.PreferenceProfile, error) {
	query := `
        SELECT
            COALESCE(dietary_preferences, ''),
            COALESCE(spice_level, ''),
            COALESCE(preferred_cuisines, ''),
            COALESCE(dietary_restrictions, ''),
            COALESCE(allergens, ''),
            COALESCE(meal_preferences, ''),
            COALESCE(budget_preference, '')
        FROM users
        WHERE id = $1
    `

	var (
		dietary, spice, budget                       string
		cuisines, restrictions, allergens, mealPrefs string
	)
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&dietary,
		&spice,
		&cuisines,
		&restrictions,
		&allergens,
		&mealPrefs,
		&budget,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return &domain.PreferenceProfile{
		DietaryType:         domain.DietaryType(dietary),
		SpiceLevel:          domain.SpiceLevel(spice),
		PreferredCuisines:   domain.ParsePreferenceList(cuisines),
		DietaryRestrictions: domain.ParsePreferenceList(restrictions),
		Allergens:           domain.ParsePreferenceList(allergens),
		MealPreferences:     domain.ParsePreferenceList(mealPrefs),
		BudgetTier:          domain.BudgetTier(budget),
	}, nil
}
