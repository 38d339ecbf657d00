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

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del ledger de inventario sobre PostgreSQL
// (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// GetStockAndPrice obtiene variante, precio y stock actual por código
// escaneable. Retorna (nil, nil) si el código no existe.
func (r *StockRepo) GetStockAndPrice(ctx context.Context, code string) (*entity.VariantStock, error) {
	query := `
		SELECT v.id, v.code, v.name, v.price, COALESCE(s.quantity, 0)
		FROM variants v
		LEFT JOIN stock_records s ON s.variant_id = v.id
		WHERE v.code = $1`
	var vs entity.VariantStock
	err := r.q.QueryRow(ctx, query, code).Scan(
		&vs.VariantID, &vs.Code, &vs.Name, &vs.Price, &vs.Stock,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock and price: %w", err)
	}
	return &vs, nil
}

// Decrement descuenta qty en una sola sentencia condicional: el UPDATE toma el
// lock de fila y solo aplica si quantity >= qty, de modo que el read-then-write
// es atómico frente a checkouts concurrentes sobre la misma variante. Cero
// filas afectadas = stock insuficiente, sin mutación.
func (r *StockRepo) Decrement(ctx context.Context, variantID string, qty int64) error {
	query := `
		UPDATE stock_records
		SET quantity = quantity - $2, updated_at = now()
		WHERE variant_id = $1 AND quantity >= $2`
	tag, err := r.q.Exec(ctx, query, variantID, qty)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Releer para reportar el disponible real al caller
		var code string
		var available int64
		err := r.q.QueryRow(ctx, `
			SELECT v.code, COALESCE(s.quantity, 0)
			FROM variants v
			LEFT JOIN stock_records s ON s.variant_id = v.id
			WHERE v.id = $1`, variantID).Scan(&code, &available)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("decrement stock reread: %w", err)
		}
		return &domain.InsufficientStockError{Code: code, Requested: qty, Available: available}
	}
	return nil
}

// Increment suma qty al stock (reposición). Crea la fila si no existe.
func (r *StockRepo) Increment(ctx context.Context, variantID string, qty int64) error {
	query := `
		INSERT INTO stock_records (variant_id, quantity, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (variant_id)
		DO UPDATE SET quantity = stock_records.quantity + EXCLUDED.quantity, updated_at = now()`
	if _, err := r.q.Exec(ctx, query, variantID, qty); err != nil {
		return fmt.Errorf("increment stock: %w", err)
	}
	return nil
}

// Get obtiene el registro de stock de una variante. (nil, nil) si no hay fila.
func (r *StockRepo) Get(ctx context.Context, variantID string) (*entity.StockRecord, error) {
	query := `
		SELECT variant_id, quantity, reserved, incoming, updated_at
		FROM stock_records WHERE variant_id = $1`
	var s entity.StockRecord
	err := r.q.QueryRow(ctx, query, variantID).Scan(
		&s.VariantID, &s.Quantity, &s.Reserved, &s.Incoming, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock record: %w", err)
	}
	return &s, nil
}

// Upsert crea o reemplaza el registro de stock.
func (r *StockRepo) Upsert(ctx context.Context, record *entity.StockRecord) error {
	query := `
		INSERT INTO stock_records (variant_id, quantity, reserved, incoming, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (variant_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, reserved = EXCLUDED.reserved,
		              incoming = EXCLUDED.incoming, updated_at = now()`
	if _, err := r.q.Exec(ctx, query, record.VariantID, record.Quantity, record.Reserved, record.Incoming); err != nil {
		return fmt.Errorf("upsert stock record: %w", err)
	}
	return nil
}
