package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SanchitKumbhar/Bynry-Task/internal/domain/entity"
	"github.com/SanchitKumbhar/Bynry-Task/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo read adapter for suppliers over PostgreSQL.
type SupplierRepo struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository builds the adapter.
func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepo {
	return &SupplierRepo{pool: pool}
}

// GetByProduct resolves the supplier of a product via its supplier_id.
// Returns (nil, nil) when the product has no supplier.
func (r *SupplierRepo) GetByProduct(ctx context.Context, productID string) (*entity.Supplier, error) {
	const query = `
		SELECT s.id, s.name, s.contact_email, s.created_at, s.updated_at
		FROM suppliers s
		JOIN products p ON p.supplier_id = s.id
		WHERE p.id = $1`
	var s entity.Supplier
	err := r.pool.QueryRow(ctx, query, productID).Scan(
		&s.ID, &s.Name, &s.ContactEmail, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier for product: %w", err)
	}
	return &s, nil
}
