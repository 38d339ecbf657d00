package repository

import (
	"context"

	"github.com/jhoicas/caja-pos-api/internal/domain/entity"
)

// UserRepository administra operadores de caja.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
