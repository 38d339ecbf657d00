package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Variant representa una configuración vendible de un producto (talla/color),
// identificada por un código escaneable (code128). El precio vive aquí porque
// cada variante puede tener el suyo; el stock vive en StockRecord.
type Variant struct {
	ID        string
	ProductID string
	SKU       string // código interno por catálogo, único
	Code      string // código de barras escaneable, único
	Name      string
	DesignNo  string
	Size      string
	Color     string
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VariantStock es el modelo de lectura que usa el checkout: lo mínimo que la
// caja necesita para validar y descontar una línea del carrito.
type VariantStock struct {
	VariantID string
	Code      string
	Name      string
	Price     decimal.Decimal
	Stock     int64
}
