package entity

import "time"

// Inventory is the stock of one product in one warehouse. At most one row
// exists per (product, warehouse) pair; a missing row means the product is
// not tracked at that warehouse. Quantity is never negative.
type Inventory struct {
	ID          string
	ProductID   string
	WarehouseID string
	Quantity    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
