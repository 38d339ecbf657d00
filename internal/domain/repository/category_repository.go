package repository

import (
	"context"

	"github.com/jhoicas/caja-pos-api/internal/domain/entity"
)

// CategoryRepository administra las categorías del catálogo.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
}
