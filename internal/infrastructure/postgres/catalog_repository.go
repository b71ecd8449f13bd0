package postgres

import (
	"context"

	"github.com/homespice/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogRepository reads available menu items from postgres
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository creates a catalog repository
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// ListAvailableItems implements domain.CatalogProvider
func (r *CatalogRepository) ListAvailableItems(ctx context.Context, vendorIDs []string) ([]domain.MenuItem, error) {
	query := `
        SELECT
            id,
            vendor_id,
            name,
            COALESCE(description, ''),
            COALESCE(ingredients, ''),
            price,
            COALESCE(currency, ''),
            COALESCE(category, ''),
            COALESCE(dietary_type, ''),
            COALESCE(spice_level, ''),
            COALESCE(allergens, ''),
            is_available,
            COALESCE(average_rating, 0),
            order_count,
            view_count
        FROM menu_items
        WHERE is_available = true
    `

	var (
		rows pgx.Rows
		err  error
	)
	if vendorIDs != nil {
		query += " AND vendor_id = ANY($1)"
		rows, err = r.pool.Query(ctx, query, vendorIDs)
	} else {
		rows, err = r.pool.Query(ctx, query)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var (
			item      domain.MenuItem
			allergens string
		)
		err := rows.Scan(
			&item.ID,
			&item.VendorID,
			&item.Name,
			&item.Description,
			&item.Ingredients,
			&item.Price.Amount,
			&item.Price.Currency,
			&item.Category,
			&item.DietaryType,
			&item.SpiceLevel,
			&allergens,
			&item.Available,
			&item.Rating,
			&item.OrderCount,
			&item.ViewCount,
		)
		if err != nil {
			return nil, err
		}
		item.Allergens = domain.ParsePreferenceList(allergens)
		items = append(items, item)
	}
	return items, rows.Err()
}
