package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/caja-pos-api/pkg/logger"
)

// Sin swagger.json generado, el arranque no debe interrumpirse: la UI de docs
// se omite y el resto de rutas sigue sirviendo.
func TestRegisterSwagger_SinArchivo_NoInterrumpeElArranque(t *testing.T) {
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	app := fiber.New()

	require.NotPanics(t, func() {
		registerSwagger(app, log, "./docs/swagger.json", "test")
	}, "la ausencia del swagger.json no debe tumbar el arranque")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"las rutas deben seguir sirviendo sin la UI de docs")
}

// Ruta inexistente (directorio en vez de archivo) tampoco debe registrar la UI.
func TestRegisterSwagger_RutaInvalida_NoRegistra(t *testing.T) {
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	app := fiber.New()

	require.NotPanics(t, func() {
		registerSwagger(app, log, "./no-existe/swagger.json", "test")
	})

	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode,
		"sin archivo la ruta /docs no debe existir")
}
