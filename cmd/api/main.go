package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/caja-pos-api/internal/application/auth"
	"github.com/jhoicas/caja-pos-api/internal/application/catalog"
	"github.com/jhoicas/caja-pos-api/internal/application/checkout"
	"github.com/jhoicas/caja-pos-api/internal/application/inventory"
	"github.com/jhoicas/caja-pos-api/internal/application/sales"
	appshopify "github.com/jhoicas/caja-pos-api/internal/application/shopify"
	infrapdf "github.com/jhoicas/caja-pos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/caja-pos-api/internal/infrastructure/postgres"
	infrashopify "github.com/jhoicas/caja-pos-api/internal/infrastructure/shopify"
	httpRouter "github.com/jhoicas/caja-pos-api/internal/interfaces/http"
	"github.com/jhoicas/caja-pos-api/pkg/config"
	"github.com/jhoicas/caja-pos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios atados al pool (los del checkout se atan a la tx en el runner)
	variantRepo := postgres.NewVariantRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	checkoutUC := checkout.NewUseCase(txRunner, log)
	salesUC := sales.NewUseCase(saleRepo)
	inventoryUC := inventory.NewUseCase(variantRepo, stockRepo, log)
	catalogUC := catalog.NewUseCase(productRepo, categoryRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	shopifyClient := infrashopify.NewClient(cfg.Shopify)
	shopifyUC := appshopify.NewUseCase(variantRepo, stockRepo, shopifyClient, log)

	labelGenerator := infrapdf.NewLabelGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	registerSwagger(app, log, "./docs/swagger.json", "Caja POS API")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CheckoutUC:  checkoutUC,
		SalesUC:     salesUC,
		InventoryUC: inventoryUC,
		CatalogUC:   catalogUC,
		AuthUC:      authUC,
		ShopifyUC:   shopifyUC,
		Labels:      labelGenerator,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// registerSwagger monta la UI de docs solo si el swagger.json generado existe.
// El middleware de swagger entra en pánico con el archivo ausente, y la API
// debe arrancar igual sin él.
func registerSwagger(app *fiber.App, log *logger.Logger, filePath, title string) {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().Str("file", filePath).Msg("swagger.json no encontrado, UI de docs deshabilitada")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	}))
}
