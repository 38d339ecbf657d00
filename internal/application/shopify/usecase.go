package shopify

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/caja-pos-api/internal/domain/repository"
	"github.com/jhoicas/caja-pos-api/pkg/logger"
)

// ProductPusher es el colaborador que empuja una variante a la plataforma
// e-commerce. Implementado en infrastructure/shopify con resty.
type ProductPusher interface {
	PushVariant(ctx context.Context, sku, name string, price decimal.Decimal, stock int64) error
	Enabled() bool
}

// SyncResult resumen de una corrida de sincronización.
type SyncResult struct {
	Pushed int `json:"pushed"`
	Failed int `json:"failed"`
}

// UseCase sincroniza precio y stock de las variantes locales hacia Shopify.
// Corre fuera de cualquier transacción de venta; un fallo por ítem se loggea y
// no detiene el resto del lote.
type UseCase struct {
	variantRepo repository.VariantRepository
	stockRepo   repository.StockRepository
	pusher      ProductPusher
	log         *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(variantRepo repository.VariantRepository, stockRepo repository.StockRepository, pusher ProductPusher, log *logger.Logger) *UseCase {
	return &UseCase{
		variantRepo: variantRepo,
		stockRepo:   stockRepo,
		pusher:      pusher,
		log:         log.Component("shopify"),
	}
}

// SyncAll empuja todas las variantes con su stock actual.
func (uc *UseCase) SyncAll(ctx context.Context) (*SyncResult, error) {
	if !uc.pusher.Enabled() {
		uc.log.Warn().Msg("sync deshabilitado: sin access token configurado")
		return &SyncResult{}, nil
	}

	variants, err := uc.variantRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{}
	for _, v := range variants {
		stock, err := uc.stockRepo.Get(ctx, v.ID)
		if err != nil {
			return nil, err
		}
		var qty int64
		if stock != nil {
			qty = stock.Quantity
		}
		if err := uc.pusher.PushVariant(ctx, v.SKU, v.Name, v.Price, qty); err != nil {
			uc.log.Error().Err(err).Str("sku", v.SKU).Msg("fallo al empujar variante")
			result.Failed++
			continue
		}
		result.Pushed++
	}
	uc.log.Info().Int("pushed", result.Pushed).Int("failed", result.Failed).Msg("sincronización completada")
	return result, nil
}
