package entity

import "time"

// Category clasifica productos del catálogo.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
