package repository

import (
	"context"

	"github.com/jhoicas/caja-pos-api/internal/domain/entity"
)

// StockRepository es el ledger de inventario: lectura de precio+stock por
// código escaneable y decremento condicional atómico. No maneja límites de
// transacción; opera sobre el Querier (pool o tx) con el que se construyó.
type StockRepository interface {
	// GetStockAndPrice devuelve variante, precio y stock actual para un código
	// vendible. Retorna (nil, nil) si el código no existe.
	GetStockAndPrice(ctx context.Context, code string) (*entity.VariantStock, error)

	// Decrement descuenta qty del stock en una sola sentencia condicional
	// (WHERE quantity >= qty). Retorna ErrInsufficientStock sin mutar nada si
	// el stock no alcanza. Seguro frente a checkouts concurrentes: el UPDATE
	// toma el lock de fila y el perdedor ve la cantidad ya descontada.
	Decrement(ctx context.Context, variantID string, qty int64) error

	// Increment suma qty al stock (reposición / ajuste de entrada).
	Increment(ctx context.Context, variantID string, qty int64) error

	// Get devuelve el registro de stock de una variante. (nil, nil) si no hay fila.
	Get(ctx context.Context, variantID string) (*entity.StockRecord, error)

	// Upsert crea o reemplaza el registro de stock de una variante.
	Upsert(ctx context.Context, record *entity.StockRecord) error
}
