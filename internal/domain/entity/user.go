package entity

import "time"

// User es un operador de la caja (autenticación JWT).
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
