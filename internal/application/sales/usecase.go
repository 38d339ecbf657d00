package sales

import (
	"context"
	"time"

	"github.com/jhoicas/caja-pos-api/internal/application/dto"
	"github.com/jhoicas/caja-pos-api/internal/domain"
	"github.com/jhoicas/caja-pos-api/internal/domain/repository"
)

// UseCase consulta el historial de ventas y el cierre de caja. Solo lecturas;
// la creación de ventas es del orquestador de checkout.
type UseCase struct {
	saleRepo repository.SaleRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(saleRepo repository.SaleRepository) *UseCase {
	return &UseCase{saleRepo: saleRepo}
}

// History devuelve todas las ventas con su pago, más reciente primero.
func (uc *UseCase) History(ctx context.Context) (*dto.SalesHistoryResponse, error) {
	rows, err := uc.saleRepo.ListWithPayments(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.SalesHistoryResponse{Sales: make([]dto.SaleHistoryItem, 0, len(rows))}
	for _, r := range rows {
		out.Sales = append(out.Sales, dto.SaleHistoryItem{
			SaleCode:      r.Code,
			Date:          r.Date.Format(time.RFC3339),
			Total:         r.Total,
			Discount:      r.Discount,
			PaymentMethod: r.PaymentMethod,
			PaidAmount:    r.PaidAmount,
		})
	}
	return out, nil
}

// DailyReport agrega las ventas de un día (formato 2006-01-02; vacío = hoy).
func (uc *UseCase) DailyReport(ctx context.Context, day string) (*dto.DailyReportResponse, error) {
	d := time.Now()
	if day != "" {
		parsed, err := time.Parse("2006-01-02", day)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		d = parsed
	}
	report, err := uc.saleRepo.DailyReport(ctx, d)
	if err != nil {
		return nil, err
	}
	return &dto.DailyReportResponse{
		Day:           report.Day.Format("2006-01-02"),
		SalesCount:    report.SalesCount,
		TotalSold:     report.TotalSold,
		TotalDiscount: report.TotalDiscount,
	}, nil
}
