package checkout_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/caja-pos-api/internal/application/checkout"
	"github.com/jhoicas/caja-pos-api/internal/application/dto"
	"github.com/jhoicas/caja-pos-api/internal/domain"
	"github.com/jhoicas/caja-pos-api/internal/domain/entity"
	"github.com/jhoicas/caja-pos-api/internal/domain/repository"
	"github.com/jhoicas/caja-pos-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica transaccional real: el runner trabaja sobre
// una copia del estado y solo la publica si fn retorna nil. Un error en
// cualquier paso descarta la copia completa (rollback). El mutex del store
// serializa transacciones concurrentes, modelando el lock de fila que toma el
// UPDATE condicional en PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type variantRow struct {
	id    string
	code  string
	name  string
	price decimal.Decimal
	stock int64
}

type storeState struct {
	variants map[string]*variantRow // por código
	sales    map[string]*entity.Sale
	items    []*entity.SaleItem
	payments []*entity.Payment
}

func (s *storeState) clone() *storeState {
	c := &storeState{
		variants: make(map[string]*variantRow, len(s.variants)),
		sales:    make(map[string]*entity.Sale, len(s.sales)),
	}
	for k, v := range s.variants {
		cp := *v
		c.variants[k] = &cp
	}
	for k, v := range s.sales {
		cp := *v
		c.sales[k] = &cp
	}
	c.items = append([]*entity.SaleItem(nil), s.items...)
	c.payments = append([]*entity.Payment(nil), s.payments...)
	return c
}

type fakeStore struct {
	mu    sync.Mutex
	state *storeState

	runs      int
	commits   int
	rollbacks int
}

func newFakeStore() *fakeStore {
	return &fakeStore{state: &storeState{
		variants: make(map[string]*variantRow),
		sales:    make(map[string]*entity.Sale),
	}}
}

func (f *fakeStore) seedVariant(id, code, name string, price float64, stock int64) {
	f.state.variants[code] = &variantRow{
		id: id, code: code, name: name,
		price: decimal.NewFromFloat(price), stock: stock,
	}
}

func (f *fakeStore) stockOf(code string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.variants[code].stock
}

// Run implementa checkout.TxRunner sobre el estado en memoria.
func (f *fakeStore) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	saleRepo repository.SaleRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs++

	work := f.state.clone()
	err := fn(&fakeStockRepo{s: work}, &fakeSaleRepo{s: work}, &fakePaymentRepo{s: work})
	if err != nil {
		f.rollbacks++
		return err
	}
	f.state = work
	f.commits++
	return nil
}

type fakeStockRepo struct{ s *storeState }

var _ repository.StockRepository = (*fakeStockRepo)(nil)

func (r *fakeStockRepo) GetStockAndPrice(_ context.Context, code string) (*entity.VariantStock, error) {
	v, ok := r.s.variants[code]
	if !ok {
		return nil, nil
	}
	return &entity.VariantStock{
		VariantID: v.id, Code: v.code, Name: v.name, Price: v.price, Stock: v.stock,
	}, nil
}

func (r *fakeStockRepo) Decrement(_ context.Context, variantID string, qty int64) error {
	for _, v := range r.s.variants {
		if v.id == variantID {
			if v.stock < qty {
				return domain.ErrInsufficientStock
			}
			v.stock -= qty
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeStockRepo) Increment(_ context.Context, variantID string, qty int64) error {
	for _, v := range r.s.variants {
		if v.id == variantID {
			v.stock += qty
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeStockRepo) Get(_ context.Context, variantID string) (*entity.StockRecord, error) {
	for _, v := range r.s.variants {
		if v.id == variantID {
			return &entity.StockRecord{VariantID: v.id, Quantity: v.stock}, nil
		}
	}
	return nil, nil
}

func (r *fakeStockRepo) Upsert(_ context.Context, record *entity.StockRecord) error {
	for _, v := range r.s.variants {
		if v.id == record.VariantID {
			v.stock = record.Quantity
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeSaleRepo struct{ s *storeState }

var _ repository.SaleRepository = (*fakeSaleRepo)(nil)

func (r *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	if _, ok := r.s.sales[sale.Code]; ok {
		return domain.ErrDuplicate
	}
	cp := *sale
	r.s.sales[sale.Code] = &cp
	return nil
}

func (r *fakeSaleRepo) CreateItem(_ context.Context, item *entity.SaleItem) error {
	cp := *item
	r.s.items = append(r.s.items, &cp)
	return nil
}

func (r *fakeSaleRepo) GetByCode(_ context.Context, code string) (*entity.Sale, error) {
	sale, ok := r.s.sales[code]
	if !ok {
		return nil, nil
	}
	cp := *sale
	return &cp, nil
}

func (r *fakeSaleRepo) ItemsBySaleID(_ context.Context, saleID string) ([]*entity.SaleItem, error) {
	var out []*entity.SaleItem
	for _, it := range r.s.items {
		if it.SaleID == saleID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) ListWithPayments(_ context.Context) ([]*entity.SaleWithPayment, error) {
	var out []*entity.SaleWithPayment
	for _, sale := range r.s.sales {
		row := &entity.SaleWithPayment{Sale: *sale}
		for _, p := range r.s.payments {
			if p.SaleID == sale.ID {
				row.PaymentMethod = p.Method
				row.PaidAmount = p.Amount
				row.PaymentDate = p.PaidAt
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *fakeSaleRepo) DailyReport(_ context.Context, _ time.Time) (*entity.DailySalesReport, error) {
	return &entity.DailySalesReport{}, nil
}

type fakePaymentRepo struct{ s *storeState }

var _ repository.PaymentRepository = (*fakePaymentRepo)(nil)

func (r *fakePaymentRepo) Create(_ context.Context, payment *entity.Payment) error {
	cp := *payment
	r.s.payments = append(r.s.payments, &cp)
	return nil
}

func (r *fakePaymentRepo) GetBySaleID(_ context.Context, saleID string) (*entity.Payment, error) {
	for _, p := range r.s.payments {
		if p.SaleID == saleID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newUseCase(store *fakeStore) *checkout.UseCase {
	return checkout.NewUseCase(store, logger.New(logger.Config{Env: "test", Level: "error"}))
}

func cartOf(lines ...dto.CartLine) dto.CheckoutRequest {
	return dto.CheckoutRequest{
		Cart:          lines,
		PaymentMethod: entity.PaymentMethodCash,
		PaidAmount:    decimal.NewFromInt(15),
		Discount:      decimal.Zero,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario A: venta simple exitosa descuenta stock y calcula el total.
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_VentaExitosa_DescuentaStock(t *testing.T) {
	store := newFakeStore()
	store.seedVariant("v1", "V1", "Camisa oxford M", 5.00, 10)
	uc := newUseCase(store)

	resp, err := uc.Checkout(context.Background(), cartOf(dto.CartLine{Code: "V1", Quantity: 3}))
	require.NoError(t, err)

	assert.Equal(t, int64(7), store.stockOf("V1"), "stock debe pasar de 10 a 7")
	assert.True(t, decimal.NewFromInt(15).Equal(resp.Total), "total calculado = 5.00 × 3")
	assert.True(t, decimal.NewFromInt(15).Equal(resp.PaidAmount))
	assert.NotEmpty(t, resp.SaleCode)
	assert.Equal(t, 1, store.commits)
	assert.Equal(t, 0, store.rollbacks)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario B: stock insuficiente aborta el carrito completo sin mutar nada.
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_StockInsuficiente_AbortaTodo(t *testing.T) {
	store := newFakeStore()
	store.seedVariant("v1", "V1", "Camisa oxford M", 5.00, 2)
	uc := newUseCase(store)

	_, err := uc.Checkout(context.Background(), cartOf(dto.CartLine{Code: "V1", Quantity: 5}))
	require.Error(t, err)

	var insuf *domain.InsufficientStockError
	require.ErrorAs(t, err, &insuf)
	assert.Equal(t, "V1", insuf.Code)
	assert.Equal(t, int64(5), insuf.Requested)
	assert.Equal(t, int64(2), insuf.Available)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Lectura idempotente: el stock queda exactamente como antes del intento
	assert.Equal(t, int64(2), store.stockOf("V1"))
	assert.Equal(t, 1, store.rollbacks)
	assert.Empty(t, store.state.sales)
	assert.Empty(t, store.state.payments)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario C: el mismo código dos veces en un carrito se deduce en secuencia;
// la segunda línea ve el stock ya descontado por la primera y, si no alcanza,
// todo el checkout hace rollback.
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_CodigoDuplicado_SegundaLineaVeDeduccion(t *testing.T) {
	store := newFakeStore()
	store.seedVariant("v1", "V1", "Camisa oxford M", 5.00, 10)
	uc := newUseCase(store)

	_, err := uc.Checkout(context.Background(), cartOf(
		dto.CartLine{Code: "V1", Quantity: 6},
		dto.CartLine{Code: "V1", Quantity: 6},
	))
	require.Error(t, err)

	var insuf *domain.InsufficientStockError
	require.ErrorAs(t, err, &insuf)
	assert.Equal(t, int64(6), insuf.Requested)
	assert.Equal(t, int64(4), insuf.Available, "la segunda línea debe ver 10-6=4 disponibles")

	assert.Equal(t, int64(10), store.stockOf("V1"), "rollback: el stock vuelve a 10")
	assert.Empty(t, store.state.sales)
	assert.Empty(t, store.state.items)
}

func TestCheckout_CodigoDuplicado_ConStockSuficiente(t *testing.T) {
	store := newFakeStore()
	store.seedVariant("v1", "V1", "Camisa oxford M", 5.00, 10)
	uc := newUseCase(store)

	in := cartOf(
		dto.CartLine{Code: "V1", Quantity: 3},
		dto.CartLine{Code: "V1", Quantity: 3},
	)
	in.PaidAmount = decimal.NewFromInt(30)

	resp, err := uc.Checkout(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, int64(4), store.stockOf("V1"))
	assert.True(t, decimal.NewFromInt(30).Equal(resp.Total))
	assert.Len(t, store.state.items, 2, "las líneas duplicadas no se fusionan")
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario D: un código desconocido aborta el carrito completo aunque otras
// líneas fueran válidas.
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_VarianteDesconocida_AbortaTodo(t *testing.T) {
	store := newFakeStore()
	store.seedVariant("v1", "V1", "Camisa oxford M", 5.00, 10)
	uc := newUseCase(store)

	_, err := uc.Checkout(context.Background(), cartOf(
		dto.CartLine{Code: "V1", Quantity: 1},
		dto.CartLine{Code: "ZZZ", Quantity: 1},
	))
	require.Error(t, err)

	var unknown *domain.UnknownVariantError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ZZZ", unknown.Code)
	assert.ErrorIs(t, err, domain.ErrUnknownVariant)

	assert.Equal(t, int64(10), store.stockOf("V1"), "la línea válida tampoco se aplica")
	assert.Empty(t, store.state.sales)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario E: un checkout exitoso deja exactamente una venta, un pago con el
// mismo monto y tantas líneas como tenía el carrito.
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_HistorialConsistente(t *testing.T) {
	store := newFakeStore()
	store.seedVariant("v1", "V1", "Camisa oxford M", 5.00, 10)
	store.seedVariant("v2", "V2", "Camisa oxford L", 7.50, 4)
	uc := newUseCase(store)

	in := cartOf(
		dto.CartLine{Code: "V1", Quantity: 2},
		dto.CartLine{Code: "V2", Quantity: 1},
	)
	in.PaidAmount = decimal.NewFromFloat(17.50)

	resp, err := uc.Checkout(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, store.state.sales, 1)
	sale := store.state.sales[resp.SaleCode]
	require.NotNil(t, sale, "la venta debe quedar registrada con el saleCode retornado")
	assert.True(t, in.PaidAmount.Equal(sale.Total), "Sale.Total = monto pagado (autoritativo)")

	require.Len(t, store.state.payments, 1)
	payment := store.state.payments[0]
	assert.Equal(t, sale.ID, payment.SaleID)
	assert.True(t, in.PaidAmount.Equal(payment.Amount))
	assert.Equal(t, entity.PaymentMethodCash, payment.Method)

	assert.Len(t, store.state.items, 2, "una línea por cada entrada del carrito")
	for _, it := range store.state.items {
		assert.Equal(t, sale.ID, it.SaleID)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Precondiciones: se rechazan antes de abrir la transacción.
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_Precondiciones(t *testing.T) {
	base := func() dto.CheckoutRequest {
		return cartOf(dto.CartLine{Code: "V1", Quantity: 1})
	}

	cases := []struct {
		name   string
		mutate func(*dto.CheckoutRequest)
	}{
		{"carrito vacío", func(in *dto.CheckoutRequest) { in.Cart = nil }},
		{"cantidad cero", func(in *dto.CheckoutRequest) { in.Cart[0].Quantity = 0 }},
		{"cantidad negativa", func(in *dto.CheckoutRequest) { in.Cart[0].Quantity = -3 }},
		{"código vacío", func(in *dto.CheckoutRequest) { in.Cart[0].Code = "" }},
		{"monto pagado cero", func(in *dto.CheckoutRequest) { in.PaidAmount = decimal.Zero }},
		{"monto pagado negativo", func(in *dto.CheckoutRequest) { in.PaidAmount = decimal.NewFromInt(-5) }},
		{"descuento negativo", func(in *dto.CheckoutRequest) { in.Discount = decimal.NewFromInt(-1) }},
		{"descuento de línea negativo", func(in *dto.CheckoutRequest) {
			in.Cart[0].LineDiscount = decimal.NewFromInt(-1)
		}},
		{"método de pago desconocido", func(in *dto.CheckoutRequest) { in.PaymentMethod = "Cheque" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			store.seedVariant("v1", "V1", "Camisa oxford M", 5.00, 10)
			uc := newUseCase(store)

			in := base()
			tc.mutate(&in)

			_, err := uc.Checkout(context.Background(), in)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput), "esperaba ErrInvalidInput, obtuve: %v", err)
			assert.Equal(t, 0, store.runs, "la transacción no debe abrirse con entrada inválida")
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia: dos checkouts cuyas cantidades caben individualmente pero no
// juntas — exactamente uno gana y el total descontado nunca supera el stock
// inicial.
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_Concurrencia_SoloUnoGana(t *testing.T) {
	store := newFakeStore()
	store.seedVariant("v1", "V1", "Camisa oxford M", 5.00, 10)
	uc := newUseCase(store)

	in := cartOf(dto.CartLine{Code: "V1", Quantity: 6})
	in.PaidAmount = decimal.NewFromInt(30)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = uc.Checkout(context.Background(), in)
		}(i)
	}
	wg.Wait()

	var okCount, insufCount int
	for _, err := range results {
		switch {
		case err == nil:
			okCount++
		case errors.Is(err, domain.ErrInsufficientStock):
			insufCount++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, okCount, "exactamente un checkout debe ganar")
	assert.Equal(t, 1, insufCount, "el otro debe recibir stock insuficiente")
	assert.Equal(t, int64(4), store.stockOf("V1"), "nunca se descuenta más del stock inicial")
	assert.GreaterOrEqual(t, store.stockOf("V1"), int64(0), "el stock jamás es negativo")
}

// El stock nunca baja de cero sin importar la secuencia de checkouts.
func TestCheckout_Invariante_StockNuncaNegativo(t *testing.T) {
	store := newFakeStore()
	store.seedVariant("v1", "V1", "Camisa oxford M", 5.00, 5)
	uc := newUseCase(store)

	quantities := []int64{2, 2, 2, 2}
	for _, q := range quantities {
		in := cartOf(dto.CartLine{Code: "V1", Quantity: q})
		_, _ = uc.Checkout(context.Background(), in)
		require.GreaterOrEqual(t, store.stockOf("V1"), int64(0))
	}
	// 5 - 2 - 2 = 1; los dos últimos intentos de 2 fallan
	assert.Equal(t, int64(1), store.stockOf("V1"))
}
