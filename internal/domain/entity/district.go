package entity

import "time"

// District groups the shops of one geographic area. Districts are never updated in place.
type District struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
