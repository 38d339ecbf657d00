package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/caja-pos-api/internal/application/dto"
	"github.com/jhoicas/caja-pos-api/internal/domain"
	"github.com/jhoicas/caja-pos-api/internal/domain/entity"
	"github.com/jhoicas/caja-pos-api/internal/domain/repository"
	"github.com/jhoicas/caja-pos-api/pkg/code"
	"github.com/jhoicas/caja-pos-api/pkg/logger"
)

// UseCase administra el catálogo de variantes y sus existencias por fuera del
// checkout: altas masivas con generación de código de barras, actualización
// parcial con campos permitidos, consulta de precio y bajas.
type UseCase struct {
	variantRepo repository.VariantRepository
	stockRepo   repository.StockRepository
	log         *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(variantRepo repository.VariantRepository, stockRepo repository.StockRepository, log *logger.Logger) *UseCase {
	return &UseCase{variantRepo: variantRepo, stockRepo: stockRepo, log: log.Component("inventory")}
}

// CreateOrUpdate procesa un lote de variantes: a los SKUs nuevos les genera
// código de barras (prefijo derivado del SKU) y los crea con su stock inicial;
// los existentes actualizan precio/atributos y reponen stock.
func (uc *UseCase) CreateOrUpdate(ctx context.Context, in dto.CreateVariantsRequest) error {
	if len(in.Items) == 0 {
		return domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.SKU == "" || item.Name == "" || !item.Price.GreaterThan(decimal.Zero) || item.Stock < 0 {
			return domain.ErrInvalidInput
		}
	}

	now := time.Now()
	for _, item := range in.Items {
		existing, err := uc.variantRepo.GetBySKU(ctx, item.SKU)
		if err != nil {
			return err
		}
		if existing == nil {
			v := &entity.Variant{
				ID:        uuid.New().String(),
				ProductID: item.ProductID,
				SKU:       item.SKU,
				Code:      code.Generate(item.SKU),
				Name:      item.Name,
				DesignNo:  item.DesignNo,
				Size:      item.Size,
				Color:     item.Color,
				Price:     item.Price,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := uc.variantRepo.Create(ctx, v); err != nil {
				return err
			}
			if err := uc.stockRepo.Upsert(ctx, &entity.StockRecord{
				VariantID: v.ID,
				Quantity:  item.Stock,
				UpdatedAt: now,
			}); err != nil {
				return err
			}
			uc.log.Info().Str("sku", v.SKU).Str("barcode", v.Code).Msg("variante creada con código generado")
			continue
		}

		// Nombre y precio son obligatorios en el lote; los atributos
		// opcionales omitidos no deben borrar lo ya registrado.
		patch := repository.VariantPatch{
			Name:  &item.Name,
			Price: &item.Price,
		}
		if item.DesignNo != "" {
			patch.DesignNo = &item.DesignNo
		}
		if item.Size != "" {
			patch.Size = &item.Size
		}
		if item.Color != "" {
			patch.Color = &item.Color
		}
		if _, err := uc.variantRepo.UpdateByCode(ctx, existing.Code, patch); err != nil {
			return err
		}
		if item.Stock > 0 {
			if err := uc.stockRepo.Increment(ctx, existing.ID, item.Stock); err != nil {
				return err
			}
		}
		uc.log.Info().Str("sku", existing.SKU).Msg("variante existente actualizada")
	}
	return nil
}

// GetByCode devuelve variante, precio y stock para un código escaneado
// (consulta de precio en caja).
func (uc *UseCase) GetByCode(ctx context.Context, barcode string) (*dto.PriceCheckResponse, error) {
	if barcode == "" {
		return nil, domain.ErrInvalidInput
	}
	vs, err := uc.stockRepo.GetStockAndPrice(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if vs == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.PriceCheckResponse{
		Code:  vs.Code,
		Name:  vs.Name,
		Price: vs.Price,
		Stock: vs.Stock,
	}, nil
}

// List devuelve todas las variantes con su stock actual.
func (uc *UseCase) List(ctx context.Context) ([]dto.VariantResponse, error) {
	variants, err := uc.variantRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VariantResponse, 0, len(variants))
	for _, v := range variants {
		stock, err := uc.stockRepo.Get(ctx, v.ID)
		if err != nil {
			return nil, err
		}
		var qty int64
		if stock != nil {
			qty = stock.Quantity
		}
		out = append(out, dto.VariantResponse{
			ID:       v.ID,
			SKU:      v.SKU,
			Code:     v.Code,
			Name:     v.Name,
			DesignNo: v.DesignNo,
			Size:     v.Size,
			Color:    v.Color,
			Price:    v.Price,
			Stock:    qty,
		})
	}
	return out, nil
}

// Update aplica una actualización parcial (campos permitidos) sobre la
// variante identificada por su código de barras.
func (uc *UseCase) Update(ctx context.Context, barcode string, in dto.VariantUpdateRequest) error {
	if barcode == "" {
		return domain.ErrInvalidInput
	}
	if in.Price != nil && !in.Price.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	patch := repository.VariantPatch{
		Name:     in.Name,
		DesignNo: in.DesignNo,
		Size:     in.Size,
		Color:    in.Color,
		Price:    in.Price,
	}
	rows, err := uc.variantRepo.UpdateByCode(ctx, barcode, patch)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la variante por SKU.
func (uc *UseCase) Delete(ctx context.Context, sku string) error {
	if sku == "" {
		return domain.ErrInvalidInput
	}
	rows, err := uc.variantRepo.DeleteBySKU(ctx, sku)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	uc.log.Info().Str("sku", sku).Msg("variante eliminada")
	return nil
}
