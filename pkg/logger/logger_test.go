package logger_test

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/caja-pos-api/pkg/logger"
)

// captureStdout redirige stdout mientras corre fn y devuelve lo escrito.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

// En production la salida es JSON y Component fija el campo "component".
func TestLogger_Component_AgregaCampo(t *testing.T) {
	out := captureStdout(t, func() {
		log := logger.New(logger.Config{Env: "production", Level: "info"})
		log.Component("checkout").Info().Msg("venta registrada")
	})

	assert.Contains(t, out, `"component":"checkout"`)
	assert.Contains(t, out, `"message":"venta registrada"`)
	assert.Contains(t, out, `"level":"info"`)
}

// El nivel configurado filtra eventos por debajo.
func TestLogger_NivelError_SuprimeInfo(t *testing.T) {
	out := captureStdout(t, func() {
		log := logger.New(logger.Config{Env: "production", Level: "error"})
		log.Info().Msg("no debe salir")
		log.Error().Msg("sí debe salir")
	})

	assert.NotContains(t, out, "no debe salir")
	assert.Contains(t, out, "sí debe salir")
}
