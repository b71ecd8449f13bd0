package postgres

import (
	"context"

	"github.com/homespice/backend/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HistoryRepository reads a user's order and review history from postgres
type HistoryRepository struct {
	pool *pgxpool.Pool
}

// NewHistoryRepository creates a history repository
func NewHistoryRepository(pool *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{pool: pool}
}

// PaidOrdersByUser implements domain.HistoryProvider: paid orders only
func (r *HistoryRepository) PaidOrdersByUser(ctx context.Context, userID string) ([]domain.PaidOrder, error) {
	query := `
        SELECT o.id, o.vendor_id, oi.item_id
        FROM orders o
        JOIN order_items oi ON oi.order_id = o.id
        WHERE o.customer_id = $1 AND o.payment_status = 'paid'
        ORDER BY o.id
    `

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		orders  []domain.PaidOrder
		lastID  string
		current *domain.PaidOrder
	)
	for rows.Next() {
		var orderID, vendorID, itemID string
		if err := rows.Scan(&orderID, &vendorID, &itemID); err != nil {
			return nil, err
		}
		if current == nil || orderID != lastID {
			orders = append(orders, domain.PaidOrder{VendorID: vendorID})
			current = &orders[len(orders)-1]
			lastID = orderID
		}
		current.ItemIDs = append(current.ItemIDs, itemID)
	}
	return orders, rows.Err()
}

// VisibleReviewsByUser implements domain.HistoryProvider: visible reviews only
func (r *HistoryRepository) VisibleReviewsByUser(ctx context.Context, userID string) ([]domain.ReviewEntry, error) {
	query := `
        SELECT item_id, rating
        FROM reviews
        WHERE user_id = $1 AND is_visible = true
    `

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.ReviewEntry
	for rows.Next() {
		var review domain.ReviewEntry
		if err := rows.Scan(&review.ItemID, &review.Rating); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}
