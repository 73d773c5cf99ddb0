package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a stocked SKU. ProductType is a free-form label used as
// the key for the low-stock threshold policy (e.g. "fast-moving", "normal",
// "slow-moving"). SupplierID is nil for products without a supplier.
type Product struct {
	ID          string
	Name        string
	SKU         string // unique
	ProductType string
	SupplierID  *string
	Price       decimal.Decimal // sale price
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
