package entity

import "time"

// Category representa una categoría de productos (café, lácteos, desechables...).
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
