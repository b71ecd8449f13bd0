package postgres

import (
	"context"
	"errors"

	"github.com/homespice/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// VendorRepository reads vendor profiles from postgres
type VendorRepository struct {
	pool *pgxpool.Pool
}

// NewVendorRepository creates a vendor repository
func NewVendorRepository(pool *pgxpool.Pool) *VendorRepository {
	return &VendorRepository{pool: pool}
}

const vendorColumns = `
    id,
    kitchen_name,
    COALESCE(cuisine_specialty, ''),
    latitude,
    longitude,
    status,
    is_active
`

// ListEligibleVendors implements domain.VendorProvider: approved and active
// vendors only
func (r *VendorRepository) ListEligibleVendors(ctx context.Context) ([]domain.Vendor, error) {
	query := `
        SELECT ` + vendorColumns + `
        FROM vendors
        WHERE status = 'approved' AND is_active = true
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vendors []domain.Vendor
	for rows.Next() {
		vendor, err := scanVendor(rows)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, vendor)
	}
	return vendors, rows.Err()
}

// GetVendor implements domain.VendorProvider
func (r *VendorRepository) GetVendor(ctx context.Context, id string) (*domain.Vendor, error) {
	query := `
        SELECT ` + vendorColumns + `
        FROM vendors
        WHERE id = $1
    `

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, domain.ErrVendorNotFound
	}

	vendor, err := scanVendor(rows)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVendorNotFound
		}
		return nil, err
	}
	return &vendor, nil
}

// scanVendor scans one vendor row; NULL coordinates become a nil Location
func scanVendor(rows pgx.Rows) (domain.Vendor, error) {
	var (
		vendor   domain.Vendor
		lat, lon *float64
	)
	err := rows.Scan(
		&vendor.ID,
		&vendor.KitchenName,
		&vendor.CuisineSpecialty,
		&lat,
		&lon,
		&vendor.Status,
		&vendor.Active,
	)
	if err != nil {
		return domain.Vendor{}, err
	}
	if lat != nil && lon != nil {
		vendor.Location = &domain.Coordinates{Latitude: *lat, Longitude: *lon}
	}
	return vendor, nil
}
