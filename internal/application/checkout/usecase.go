package checkout

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

// UseCase es el orquestador de la transacción de venta: valida el carrito,
// descuenta stock línea por línea, y registra venta + líneas + pago en una
// sola transacción. Cualquier fallo en cualquier paso hace rollback completo;
// ningún estado parcial queda visible.
type UseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewUseCase construye el orquestador.
func NewUseCase(txRunner TxRunner, log *logger.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, log: log.Component("checkout")}
}

// Checkout convierte un carrito en una venta confirmada.
//
// Secuencia dentro de la transacción, por cada línea en el orden enviado:
//  1. lookup por código (no existe -> UnknownVariantError, aborta todo)
//  2. validación de stock (insuficiente -> InsufficientStockError, aborta todo)
//  3. decremento inmediato: una línea posterior del mismo carrito ve el efecto
//     de las anteriores, lo que evita sobreventa con códigos duplicados
//  4. acumulación del total calculado (precio unitario × cantidad)
//
// Después de las líneas: cabecera de venta (total = PaidAmount del caller),
// líneas, pago, commit.
func (uc *UseCase) Checkout(ctx context.Context, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	now := time.Now()
	saleCode := code.NewSaleCode()
	saleID := uuid.New().String()

	var computedTotal decimal.Decimal

	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		saleRepo repository.SaleRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		// Líneas del carrito en el orden enviado. Códigos duplicados se
		// procesan como deducciones secuenciales independientes, sin fusionar.
		type pickedLine struct {
			variantID string
			quantity  int64
			linePrice decimal.Decimal
			discount  decimal.Decimal
		}
		picked := make([]pickedLine, 0, len(in.Cart))

		for _, line := range in.Cart {
			vs, err := stockRepo.GetStockAndPrice(ctx, line.Code)
			if err != nil {
				return err
			}
			if vs == nil {
				return &domain.UnknownVariantError{Code: line.Code}
			}
			if vs.Stock <= 0 || vs.Stock < line.Quantity {
				return &domain.InsufficientStockError{
					Code:      line.Code,
					Requested: line.Quantity,
					Available: vs.Stock,
				}
			}
			// Decremento inmediato con sentencia condicional atómica. Si otra
			// caja ganó la carrera entre el SELECT y el UPDATE, el UPDATE
			// afecta cero filas y el repo reporta stock insuficiente.
			if err := stockRepo.Decrement(ctx, vs.VariantID, line.Quantity); err != nil {
				return err
			}
			linePrice := vs.Price.Mul(decimal.NewFromInt(line.Quantity))
			computedTotal = computedTotal.Add(linePrice)
			picked = append(picked, pickedLine{
				variantID: vs.VariantID,
				quantity:  line.Quantity,
				linePrice: linePrice,
				discount:  line.LineDiscount,
			})
		}

		sale := &entity.Sale{
			ID:        saleID,
			Code:      saleCode,
			Date:      now,
			Total:     in.PaidAmount, // el monto cobrado es autoritativo
			Discount:  in.Discount,
			CreatedAt: now,
		}
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}

		for _, p := range picked {
			item := &entity.SaleItem{
				ID:           uuid.New().String(),
				SaleID:       saleID,
				VariantID:    p.variantID,
				Quantity:     p.quantity,
				LinePrice:    p.linePrice,
				LineDiscount: p.discount,
			}
			if err := saleRepo.CreateItem(ctx, item); err != nil {
				return err
			}
		}

		payment := &entity.Payment{
			ID:     uuid.New().String(),
			SaleID: saleID,
			Method: in.PaymentMethod,
			Amount: in.PaidAmount,
			PaidAt: now,
		}
		return paymentRepo.Create(ctx, payment)
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("sale_code", saleCode).Msg("checkout abortado, rollback completo")
		return nil, err
	}

	uc.log.Info().
		Str("sale_code", saleCode).
		Str("sale_id", saleID).
		Str("total_calculado", computedTotal.StringFixed(2)).
		Str("pagado", in.PaidAmount.StringFixed(2)).
		Int("lineas", len(in.Cart)).
		Msg("venta registrada")

	return &dto.CheckoutResponse{
		SaleCode:   saleCode,
		Total:      computedTotal,
		PaidAmount: in.PaidAmount,
		Discount:   in.Discount,
	}, nil
}

// validate aplica las precondiciones antes de abrir la transacción: carrito no
// vacío, cantidades >= 1, monto pagado positivo, descuentos no negativos y
// método de pago reconocido.
func validate(in dto.CheckoutRequest) error {
	if len(in.Cart) == 0 {
		return domain.ErrInvalidInput
	}
	for _, line := range in.Cart {
		if line.Code == "" || line.Quantity < 1 {
			return domain.ErrInvalidInput
		}
		if line.LineDiscount.LessThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
	}
	if !in.PaidAmount.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if in.Discount.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return domain.ErrInvalidInput
	}
	return nil
}
