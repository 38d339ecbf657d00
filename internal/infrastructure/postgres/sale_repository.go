package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/caja-pos-api/internal/domain"
	"github.com/jhoicas/caja-pos-api/internal/domain/entity"
	"github.com/jhoicas/caja-pos-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL
// (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, code, sale_date, total, discount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.Code, sale.Date, sale.Total, sale.Discount, sale.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la venta.
func (r *SaleRepo) CreateItem(ctx context.Context, item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, variant_id, quantity, line_price, line_discount)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.SaleID, item.VariantID, item.Quantity, item.LinePrice, item.LineDiscount,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByCode obtiene una venta por su código. (nil, nil) si no existe.
func (r *SaleRepo) GetByCode(ctx context.Context, code string) (*entity.Sale, error) {
	query := `
		SELECT id, code, sale_date, total, discount, created_at
		FROM sales WHERE code = $1`
	var s entity.Sale
	err := r.q.QueryRow(ctx, query, code).Scan(
		&s.ID, &s.Code, &s.Date, &s.Total, &s.Discount, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale by code: %w", err)
	}
	return &s, nil
}

// ItemsBySaleID devuelve las líneas de una venta.
func (r *SaleRepo) ItemsBySaleID(ctx context.Context, saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, variant_id, quantity, line_price, line_discount
		FROM sale_items WHERE sale_id = $1`
	rows, err := r.q.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()

	var out []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.VariantID, &it.Quantity, &it.LinePrice, &it.LineDiscount); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}

// ListWithPayments devuelve el historial de ventas con su pago,
// más reciente primero.
func (r *SaleRepo) ListWithPayments(ctx context.Context) ([]*entity.SaleWithPayment, error) {
	query := `
		SELECT s.id, s.code, s.sale_date, s.total, s.discount, s.created_at,
		       COALESCE(p.method, ''), COALESCE(p.amount, 0), COALESCE(p.paid_at, s.sale_date)
		FROM sales s
		LEFT JOIN payments p ON p.sale_id = s.id
		ORDER BY s.sale_date DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sales with payments: %w", err)
	}
	defer rows.Close()

	var out []*entity.SaleWithPayment
	for rows.Next() {
		var sw entity.SaleWithPayment
		if err := rows.Scan(
			&sw.ID, &sw.Code, &sw.Date, &sw.Total, &sw.Discount, &sw.CreatedAt,
			&sw.PaymentMethod, &sw.PaidAmount, &sw.PaymentDate,
		); err != nil {
			return nil, fmt.Errorf("scan sale with payment: %w", err)
		}
		out = append(out, &sw)
	}
	return out, rows.Err()
}

// DailyReport agrega las ventas del día indicado.
func (r *SaleRepo) DailyReport(ctx context.Context, day time.Time) (*entity.DailySalesReport, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(total), 0), COALESCE(SUM(discount), 0)
		FROM sales
		WHERE sale_date >= $1 AND sale_date < $1 + INTERVAL '1 day'`
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	report := &entity.DailySalesReport{Day: start}
	err := r.q.QueryRow(ctx, query, start).Scan(
		&report.SalesCount, &report.TotalSold, &report.TotalDiscount,
	)
	if err != nil {
		return nil, fmt.Errorf("daily sales report: %w", err)
	}
	return report, nil
}
