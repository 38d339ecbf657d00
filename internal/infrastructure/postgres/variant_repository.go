package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/caja-pos-api/internal/domain"
	"github.com/jhoicas/caja-pos-api/internal/domain/entity"
	"github.com/jhoicas/caja-pos-api/internal/domain/repository"
)

var _ repository.VariantRepository = (*VariantRepo)(nil)

// VariantRepo implementación de VariantRepository sobre PostgreSQL
// (usable con pool o tx).
type VariantRepo struct {
	q Querier
}

// NewVariantRepository construye el adaptador de variantes. Pasar pool o tx (Querier).
func NewVariantRepository(q Querier) *VariantRepo {
	return &VariantRepo{q: q}
}

const variantColumns = `id, product_id, sku, code, name, design_no, size, color, price, created_at, updated_at`

// Create persiste una nueva variante.
func (r *VariantRepo) Create(ctx context.Context, v *entity.Variant) error {
	query := `
		INSERT INTO variants (` + variantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		v.ID, nullIfEmpty(v.ProductID), v.SKU, v.Code, v.Name, v.DesignNo, v.Size, v.Color,
		v.Price, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert variant: %w", err)
	}
	return nil
}

// GetByCode obtiene una variante por código de barras. (nil, nil) si no existe.
func (r *VariantRepo) GetByCode(ctx context.Context, code string) (*entity.Variant, error) {
	return r.getOne(ctx, `SELECT `+variantColumns+` FROM variants WHERE code = $1`, code)
}

// GetBySKU obtiene una variante por SKU. (nil, nil) si no existe.
func (r *VariantRepo) GetBySKU(ctx context.Context, sku string) (*entity.Variant, error) {
	return r.getOne(ctx, `SELECT `+variantColumns+` FROM variants WHERE sku = $1`, sku)
}

func (r *VariantRepo) getOne(ctx context.Context, query string, arg any) (*entity.Variant, error) {
	var v entity.Variant
	var productID *string
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&v.ID, &productID, &v.SKU, &v.Code, &v.Name, &v.DesignNo, &v.Size, &v.Color,
		&v.Price, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variant: %w", err)
	}
	if productID != nil {
		v.ProductID = *productID
	}
	return &v, nil
}

// List devuelve todas las variantes, más reciente primero.
func (r *VariantRepo) List(ctx context.Context) ([]*entity.Variant, error) {
	query := `SELECT ` + variantColumns + ` FROM variants ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()

	var out []*entity.Variant
	for rows.Next() {
		var v entity.Variant
		var productID *string
		if err := rows.Scan(
			&v.ID, &productID, &v.SKU, &v.Code, &v.Name, &v.DesignNo, &v.Size, &v.Color,
			&v.Price, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		if productID != nil {
			v.ProductID = *productID
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}

// UpdateByCode aplica el patch con campos explícitamente permitidos: cada
// columna se actualiza solo si su puntero no es nil (COALESCE sobre
// parámetros, nunca SQL construido desde claves del request).
func (r *VariantRepo) UpdateByCode(ctx context.Context, code string, patch repository.VariantPatch) (int64, error) {
	query := `
		UPDATE variants
		SET name       = COALESCE($2, name),
		    design_no  = COALESCE($3, design_no),
		    size       = COALESCE($4, size),
		    color      = COALESCE($5, color),
		    price      = COALESCE($6, price),
		    updated_at = now()
		WHERE code = $1`
	tag, err := r.q.Exec(ctx, query, code,
		patch.Name, patch.DesignNo, patch.Size, patch.Color, patch.Price,
	)
	if err != nil {
		return 0, fmt.Errorf("update variant: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteBySKU borra la variante (y su stock, por FK ON DELETE CASCADE).
func (r *VariantRepo) DeleteBySKU(ctx context.Context, sku string) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM variants WHERE sku = $1`, sku)
	if err != nil {
		return 0, fmt.Errorf("delete variant: %w", err)
	}
	return tag.RowsAffected(), nil
}

// nullIfEmpty convierte "" en NULL para columnas opcionales.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
