package entity

import "time"

// Warehouse represents a storage location belonging to one company.
type Warehouse struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
