package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/caja-pos-api/internal/domain/entity"
)

// VariantPatch es la estructura de actualización parcial con campos
// explícitamente permitidos (nil = no tocar). Reemplaza la construcción
// dinámica de cláusulas SET a partir de mapas arbitrarios.
type VariantPatch struct {
	Name     *string
	DesignNo *string
	Size     *string
	Color    *string
	Price    *decimal.Decimal
}

// VariantRepository administra el catálogo de variantes vendibles.
type VariantRepository interface {
	// Create inserta la variante. SKU o código duplicado retorna ErrDuplicate.
	Create(ctx context.Context, v *entity.Variant) error

	GetByCode(ctx context.Context, code string) (*entity.Variant, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Variant, error)
	List(ctx context.Context) ([]*entity.Variant, error)

	// UpdateByCode aplica el patch sobre la variante con ese código y devuelve
	// cuántas filas fueron afectadas (0 = no existe).
	UpdateByCode(ctx context.Context, code string, patch VariantPatch) (int64, error)

	// DeleteBySKU borra la variante y devuelve filas afectadas (0 = no existe).
	DeleteBySKU(ctx context.Context, sku string) (int64, error)
}
