package entity

import "time"

// Supplier representa un proveedor de la cafetería.
type Supplier struct {
	ID          string
	Name        string
	ContactName string
	Email       string
	Phone       string
	Address     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
