package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en caja.
const (
	PaymentMethodCash = "Cash"
	PaymentMethodCard = "Card"
)

// ValidPaymentMethod reporta si el método pertenece a la enumeración fija.
func ValidPaymentMethod(method string) bool {
	return method == PaymentMethodCash || method == PaymentMethodCard
}

// Payment es el registro de pago de una venta (uno a uno con Sale en el
// alcance actual). Se crea en la misma transacción que la venta.
type Payment struct {
	ID     string
	SaleID string
	Method string
	Amount decimal.Decimal
	PaidAt time.Time
}
