package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SanchitKumbhar/Bynry-Task/internal/domain/entity"
	"github.com/SanchitKumbhar/Bynry-Task/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo read adapter for sale events over PostgreSQL.
type SaleRepo struct {
	pool *pgxpool.Pool
}

// NewSaleRepository builds the adapter.
func NewSaleRepository(pool *pgxpool.Pool) *SaleRepo {
	return &SaleRepo{pool: pool}
}

// ListByProduct returns the full sale history of a product. No ORDER BY:
// consumers make no assumption about sale order.
func (r *SaleRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.Sale, error) {
	const query = `
		SELECT id, product_id, quantity, occurred_at
		FROM sales WHERE product_id = $1`
	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
