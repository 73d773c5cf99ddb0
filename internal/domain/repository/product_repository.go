package repository

import (
	"context"

	"github.com/SanchitKumbhar/Bynry-Task/internal/domain/entity"
)

// ProductRepository defines the read port for Product (DIP).
// GetByID returns (nil, nil) when the product does not exist.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
}
