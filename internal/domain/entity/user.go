package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin   = "admin"
	RoleBarista = "barista"
)

// User representa un usuario de la aplicación.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | barista
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
