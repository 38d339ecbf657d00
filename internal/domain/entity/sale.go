package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es la cabecera de una venta completada. Total es el monto efectivamente
// pagado (el paidAmount del caller es autoritativo). Inmutable después de
// creada; nunca se borra desde la caja.
type Sale struct {
	ID        string
	Code      string // código identificador de la venta, imprimible en code128
	Date      time.Time
	Total     decimal.Decimal
	Discount  decimal.Decimal
	CreatedAt time.Time
}

// SaleItem es una línea de la venta. Su ciclo de vida pertenece por completo
// a la Sale padre: se crea en la misma transacción que la cabecera.
type SaleItem struct {
	ID           string
	SaleID       string
	VariantID    string
	Quantity     int64
	LinePrice    decimal.Decimal // precio unitario × cantidad
	LineDiscount decimal.Decimal
}

// SaleWithPayment es el modelo de lectura del historial de ventas
// (sale JOIN payment).
type SaleWithPayment struct {
	Sale
	PaymentMethod string
	PaidAmount    decimal.Decimal
	PaymentDate   time.Time
}

// DailySalesReport agrega las ventas de un día para el cierre de caja.
type DailySalesReport struct {
	Day           time.Time
	SalesCount    int64
	TotalSold     decimal.Decimal
	TotalDiscount decimal.Decimal
}
