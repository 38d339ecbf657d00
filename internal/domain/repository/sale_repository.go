package repository

import (
	"context"
	"time"

	"github.com/jhoicas/caja-pos-api/internal/domain/entity"
)

// SaleRepository persiste cabeceras y líneas de venta.
type SaleRepository interface {
	// Create inserta la cabecera. Código duplicado retorna ErrDuplicate.
	Create(ctx context.Context, sale *entity.Sale) error

	// CreateItem inserta una línea. El caller garantiza que SaleID y VariantID
	// ya existen dentro de la misma transacción.
	CreateItem(ctx context.Context, item *entity.SaleItem) error

	GetByCode(ctx context.Context, code string) (*entity.Sale, error)
	ItemsBySaleID(ctx context.Context, saleID string) ([]*entity.SaleItem, error)

	// ListWithPayments devuelve el historial de ventas con su pago (JOIN),
	// más reciente primero.
	ListWithPayments(ctx context.Context) ([]*entity.SaleWithPayment, error)

	// DailyReport agrega las ventas del día indicado (cierre de caja).
	DailyReport(ctx context.Context, day time.Time) (*entity.DailySalesReport, error)
}
