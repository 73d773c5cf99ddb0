package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SanchitKumbhar/Bynry-Task/internal/domain/entity"
	"github.com/SanchitKumbhar/Bynry-Task/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo read adapter for products over PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository builds the adapter.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// GetByID fetches one product by ID. Returns (nil, nil) when absent.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	const query = `
		SELECT id, name, sku, product_type, supplier_id, price, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.SKU, &p.ProductType, &p.SupplierID, &p.Price,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}
