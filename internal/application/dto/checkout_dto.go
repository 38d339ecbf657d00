package dto

import "github.com/shopspring/decimal"

// CartLine es una línea del carrito tal como la envía la caja: código
// escaneado y cantidad. El descuento de línea es opcional.
type CartLine struct {
	Code         string          `json:"barcode"`
	Quantity     int64           `json:"quantity"`
	LineDiscount decimal.Decimal `json:"item_discount"`
}

// CheckoutRequest es el carrito completo más la información de pago.
// PaidAmount es el monto efectivamente cobrado y es autoritativo para el
// total de la venta.
type CheckoutRequest struct {
	Cart          []CartLine      `json:"cart"`
	PaymentMethod string          `json:"paymentType"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	Discount      decimal.Decimal `json:"discount"`
}

// CheckoutResponse respuesta de un checkout exitoso. Total es la suma
// calculada de las líneas (informativa/auditable); PaidAmount lo cobrado.
type CheckoutResponse struct {
	SaleCode   string          `json:"saleCode"`
	Total      decimal.Decimal `json:"total"`
	PaidAmount decimal.Decimal `json:"paidAmount"`
	Discount   decimal.Decimal `json:"discount"`
}
