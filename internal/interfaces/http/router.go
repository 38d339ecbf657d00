package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/caja-pos-api/internal/application/auth"
	"github.com/jhoicas/caja-pos-api/internal/application/catalog"
	"github.com/jhoicas/caja-pos-api/internal/application/checkout"
	"github.com/jhoicas/caja-pos-api/internal/application/inventory"
	"github.com/jhoicas/caja-pos-api/internal/application/sales"
	"github.com/jhoicas/caja-pos-api/internal/application/shopify"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CheckoutUC  *checkout.UseCase
	SalesUC     *sales.UseCase
	InventoryUC *inventory.UseCase
	CatalogUC   *catalog.UseCase
	AuthUC      *auth.UseCase
	ShopifyUC   *shopify.UseCase
	Labels      LabelGenerator
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Ventas (protegido): checkout, historial y cierre de caja
	salesGroup := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.CheckoutUC, deps.SalesUC)
	salesGroup.Post("/checkout", salesHandler.Checkout)
	salesGroup.Get("/", salesHandler.History)
	salesGroup.Get("/report", salesHandler.DailyReport)

	// Inventario (protegido): variantes, precio por código, etiquetas
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.Labels)
	invGroup.Post("/", inventoryHandler.CreateOrUpdate)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Get("/barcode/:barcode", inventoryHandler.PriceCheck)
	invGroup.Put("/:barcode", inventoryHandler.Update)
	invGroup.Delete("/", inventoryHandler.Delete)
	invGroup.Post("/labels", inventoryHandler.PrintLabels)

	// Catálogo (protegido)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	products := protected.Group("/products")
	products.Post("/", catalogHandler.CreateProduct)
	products.Get("/", catalogHandler.ListProducts)
	products.Get("/:id", catalogHandler.GetProduct)
	categories := protected.Group("/categories")
	categories.Post("/", catalogHandler.CreateCategory)
	categories.Get("/", catalogHandler.ListCategories)

	// Shopify (protegido)
	shopifyGroup := protected.Group("/shopify")
	shopifyHandler := NewShopifyHandler(deps.ShopifyUC)
	shopifyGroup.Post("/sync", shopifyHandler.Sync)
}
