package entity

import "time"

// Supplier represents a vendor referenced by zero or more products.
type Supplier struct {
	ID           string
	Name         string
	ContactEmail string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
