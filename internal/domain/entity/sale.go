package entity

import "time"

// Sale is a single sale event of a product. Quantity is always positive.
// Storage makes no ordering promise on OccurredAt.
type Sale struct {
	ID         string
	ProductID  string
	Quantity   int
	OccurredAt time.Time
}
