package repository

import (
	"context"

	"github.com/SanchitKumbhar/Bynry-Task/internal/domain/entity"
)

// SaleRepository defines the read port for Sale events (DIP).
type SaleRepository interface {
	// ListByProduct returns the full sale history of a product, in no
	// particular order.
	ListByProduct(ctx context.Context, productID string) ([]*entity.Sale, error)
}
