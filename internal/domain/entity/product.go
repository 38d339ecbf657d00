package entity

import "time"

// Product agrupa variantes bajo un mismo artículo del catálogo
// (ej. "Camisa oxford" con variantes por talla y color).
type Product struct {
	ID          string
	Name        string
	Description string
	DesignNo    string
	CategoryID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
