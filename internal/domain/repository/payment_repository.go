package repository

import (
	"context"

	"github.com/jhoicas/caja-pos-api/internal/domain/entity"
)

// PaymentRepository persiste el pago de una venta.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetBySaleID(ctx context.Context, saleID string) (*entity.Payment, error)
}
