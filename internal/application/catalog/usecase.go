package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/caja-pos-api/internal/application/dto"
	"github.com/jhoicas/caja-pos-api/internal/domain"
	"github.com/jhoicas/caja-pos-api/internal/domain/entity"
	"github.com/jhoicas/caja-pos-api/internal/domain/repository"
)

// UseCase administra productos y categorías del catálogo.
type UseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *UseCase {
	return &UseCase{productRepo: productRepo, categoryRepo: categoryRepo}
}

// CreateProduct crea un producto; la categoría debe existir.
func (uc *UseCase) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	p := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		DesignNo:    in.DesignNo,
		CategoryID:  in.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p, category.Name), nil
}

// ListProducts devuelve los productos; con categoryID filtra por categoría.
func (uc *UseCase) ListProducts(ctx context.Context, categoryID string) ([]dto.ProductResponse, error) {
	var (
		products []*entity.Product
		err      error
	)
	if categoryID != "" {
		products, err = uc.productRepo.ListByCategory(ctx, categoryID)
	} else {
		products, err = uc.productRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p, ""))
	}
	return out, nil
}

// GetProduct devuelve un producto por ID.
func (uc *UseCase) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(p, ""), nil
}

// CreateCategory crea una categoría.
func (uc *UseCase) CreateCategory(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: time.Now(),
	}
	if err := uc.categoryRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name}, nil
}

// ListCategories devuelve todas las categorías.
func (uc *UseCase) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

func toProductResponse(p *entity.Product, categoryName string) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		DesignNo:     p.DesignNo,
		CategoryID:   p.CategoryID,
		CategoryName: categoryName,
	}
}
