package dto

import "github.com/shopspring/decimal"

// VariantInput un ítem del alta/actualización masiva de inventario. Para SKUs
// nuevos el backend genera el código de barras; para existentes actualiza.
type VariantInput struct {
	SKU         string          `json:"sku"`
	ProductID   string          `json:"product_id"`
	Name        string          `json:"item_name"`
	Description string          `json:"description"`
	DesignNo    string          `json:"design_no"`
	Size        string          `json:"size"`
	Color       string          `json:"color"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
}

// CreateVariantsRequest alta/actualización masiva.
type CreateVariantsRequest struct {
	Items []VariantInput `json:"items"`
}

// VariantUpdateRequest actualización parcial con campos permitidos
// (puntero nil = no tocar).
type VariantUpdateRequest struct {
	Name     *string          `json:"item_name"`
	DesignNo *string          `json:"design_no"`
	Size     *string          `json:"size"`
	Color    *string          `json:"color"`
	Price    *decimal.Decimal `json:"price"`
}

// DeleteVariantRequest baja por SKU.
type DeleteVariantRequest struct {
	SKU string `json:"sku"`
}

// VariantResponse variante con su stock actual.
type VariantResponse struct {
	ID       string          `json:"id"`
	SKU      string          `json:"sku"`
	Code     string          `json:"barcode"`
	Name     string          `json:"item_name"`
	DesignNo string          `json:"design_no"`
	Size     string          `json:"size"`
	Color    string          `json:"color"`
	Price    decimal.Decimal `json:"price"`
	Stock    int64           `json:"stock"`
}

// PriceCheckResponse consulta rápida de precio por código escaneado.
type PriceCheckResponse struct {
	Code  string          `json:"barcode"`
	Name  string          `json:"item_name"`
	Price decimal.Decimal `json:"price"`
	Stock int64           `json:"stock"`
}

// PrintLabelsRequest impresión de etiquetas de código de barras.
type PrintLabelsRequest struct {
	Code     string `json:"barcode"`
	Quantity int    `json:"quantity"`
}
