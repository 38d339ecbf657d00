package repository

import (
	"context"

	"github.com/jhoicas/caja-pos-api/internal/domain/entity"
)

// ProductRepository administra los productos del catálogo.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error)
}
