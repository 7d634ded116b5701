package dto

import "time"

// CategoryRequest body para crear o actualizar una categoría.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryResponse representación de una categoría en respuestas.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
