package repository

import (
	"context"

	"github.com/SanchitKumbhar/Bynry-Task/internal/domain/entity"
)

// CompanyRepository defines the read port for Company (DIP).
// Implementations live in infrastructure. GetByID returns (nil, nil) when
// the company does not exist.
type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
}
