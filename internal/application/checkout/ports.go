package checkout

import (
	"context"

	"github.com/jhoicas/caja-pos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del checkout: si fn
// retorna error se hace rollback completo; el commit solo ocurre si fn
// retorna nil. El ctx del caller se propaga a la transacción, de modo que una
// desconexión del cliente antes del commit la aborta.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		saleRepo repository.SaleRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}
