package repository

import (
	"context"

	"github.com/SanchitKumbhar/Bynry-Task/internal/domain/entity"
)

// InventoryRepository defines the read port for Inventory rows (DIP).
type InventoryRepository interface {
	// ListByWarehouses returns every inventory row held in the given
	// warehouses. Row order is stable for a given data set so that alert
	// output stays reproducible.
	ListByWarehouses(ctx context.Context, warehouseIDs []string) ([]*entity.Inventory, error)
}
