package repository

import (
	"context"

	"github.com/SanchitKumbhar/Bynry-Task/internal/domain/entity"
)

// WarehouseRepository defines the read port for Warehouse (DIP).
type WarehouseRepository interface {
	// ListByCompany returns every warehouse owned by the company, oldest first.
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Warehouse, error)
}
