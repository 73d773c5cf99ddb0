package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SanchitKumbhar/Bynry-Task/internal/domain/entity"
	"github.com/SanchitKumbhar/Bynry-Task/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo read adapter for inventory rows over PostgreSQL.
type InventoryRepo struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository builds the adapter.
func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepo {
	return &InventoryRepo{pool: pool}
}

// ListByWarehouses returns every inventory row held in the given warehouses.
// Ordered by row creation so the alert output is reproducible for a given
// data set.
func (r *InventoryRepo) ListByWarehouses(ctx context.Context, warehouseIDs []string) ([]*entity.Inventory, error) {
	if len(warehouseIDs) == 0 {
		return nil, nil
	}
	const query = `
		SELECT id, product_id, warehouse_id, quantity, created_at, updated_at
		FROM inventories WHERE warehouse_id = ANY($1) ORDER BY created_at, id`
	rows, err := r.pool.Query(ctx, query, warehouseIDs)
	if err != nil {
		return nil, fmt.Errorf("list inventories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
