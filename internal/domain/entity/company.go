package entity

import "time"

// Company represents an organization that owns warehouses.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
