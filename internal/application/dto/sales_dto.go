package dto

import "github.com/shopspring/decimal"

// SaleHistoryItem una venta del historial con su pago.
type SaleHistoryItem struct {
	SaleCode      string          `json:"saleCode"`
	Date          string          `json:"date"`
	Total         decimal.Decimal `json:"total"`
	Discount      decimal.Decimal `json:"discount"`
	PaymentMethod string          `json:"paymentType"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
}

// SalesHistoryResponse historial completo, más reciente primero.
type SalesHistoryResponse struct {
	Sales []SaleHistoryItem `json:"sales"`
}

// DailyReportResponse cierre de caja de un día.
type DailyReportResponse struct {
	Day           string          `json:"day"`
	SalesCount    int64           `json:"salesCount"`
	TotalSold     decimal.Decimal `json:"totalSold"`
	TotalDiscount decimal.Decimal `json:"totalDiscount"`
}
