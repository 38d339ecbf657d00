package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/caja-pos-api/internal/domain/entity"
	"github.com/jhoicas/caja-pos-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository sobre PostgreSQL
// (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador de pagos. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste el pago de una venta.
func (r *PaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, sale_id, method, amount, paid_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		payment.ID, payment.SaleID, payment.Method, payment.Amount, payment.PaidAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetBySaleID obtiene el pago de una venta. (nil, nil) si no existe.
func (r *PaymentRepo) GetBySaleID(ctx context.Context, saleID string) (*entity.Payment, error) {
	query := `
		SELECT id, sale_id, method, amount, paid_at
		FROM payments WHERE sale_id = $1`
	var p entity.Payment
	err := r.q.QueryRow(ctx, query, saleID).Scan(
		&p.ID, &p.SaleID, &p.Method, &p.Amount, &p.PaidAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment by sale: %w", err)
	}
	return &p, nil
}
