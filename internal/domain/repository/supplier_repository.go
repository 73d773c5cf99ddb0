package repository

import (
	"context"

	"github.com/SanchitKumbhar/Bynry-Task/internal/domain/entity"
)

// SupplierRepository defines the read port for Supplier (DIP).
type SupplierRepository interface {
	// GetByProduct resolves the supplier of a product. Returns (nil, nil)
	// when the product has no supplier.
	GetByProduct(ctx context.Context, productID string) (*entity.Supplier, error)
}
