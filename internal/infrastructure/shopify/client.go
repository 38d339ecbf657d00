// Package shopify implementa el cliente REST del Admin API de Shopify para el
// sync de productos. Solo empuja precio y stock; nunca se invoca dentro de
// una transacción de venta.
package shopify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	appshopify "github.com/jhoicas/caja-pos-api/internal/application/shopify"
	"github.com/jhoicas/caja-pos-api/pkg/config"
)

var _ appshopify.ProductPusher = (*Client)(nil)

// Client cliente HTTP del Admin API.
type Client struct {
	http *resty.Client
	cfg  config.ShopifyConfig
}

// NewClient construye el cliente. Con AccessToken vacío queda deshabilitado.
func NewClient(cfg config.ShopifyConfig) *Client {
	http := resty.New().
		SetBaseURL(fmt.Sprintf("https://%s/admin/api/%s", cfg.StoreDomain, cfg.APIVersion)).
		SetHeader("X-Shopify-Access-Token", cfg.AccessToken).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)
	return &Client{http: http, cfg: cfg}
}

// Enabled reporta si el sync está configurado.
func (c *Client) Enabled() bool {
	return c.cfg.AccessToken != "" && c.cfg.StoreDomain != ""
}

type variantPayload struct {
	Variant struct {
		SKU               string `json:"sku"`
		Title             string `json:"title"`
		Price             string `json:"price"`
		InventoryQuantity int64  `json:"inventory_quantity"`
	} `json:"variant"`
}

// PushVariant crea o actualiza la variante en Shopify (upsert por SKU).
func (c *Client) PushVariant(ctx context.Context, sku, name string, price decimal.Decimal, stock int64) error {
	var payload variantPayload
	payload.Variant.SKU = sku
	payload.Variant.Title = name
	payload.Variant.Price = price.StringFixed(2)
	payload.Variant.InventoryQuantity = stock

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		Put(fmt.Sprintf("/variants/%s.json", sku))
	if err != nil {
		return fmt.Errorf("shopify: push variant %s: %w", sku, err)
	}
	if resp.IsError() {
		return fmt.Errorf("shopify: push variant %s: status %d", sku, resp.StatusCode())
	}
	return nil
}
