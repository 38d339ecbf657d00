package code_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/caja-pos-api/pkg/code"
)

// ──────────────────────────────────────────────────────────────────────────────
// Formato: prefijo (4) + timestamp ms (13 dígitos) + sufijo hex (4).
// El código debe ser alfanumérico puro para poder imprimirse en code128.
// ──────────────────────────────────────────────────────────────────────────────

var codePattern = regexp.MustCompile(`^[A-Z0-9]{4}\d{13}[A-F0-9]{4}$`)

func TestGenerate_FormatoEstable(t *testing.T) {
	c := code.Generate("SALE")
	assert.Len(t, c, 21, "el código debe tener longitud estable")
	assert.Regexp(t, codePattern, c)
}

func TestGenerate_PrefijoSanitizado(t *testing.T) {
	c := code.Generate("ca-mi 01x")
	assert.Equal(t, "CAMI", c[:4], "el prefijo debe quedar en mayúsculas y sin símbolos")
	assert.Len(t, c, 21)
}

func TestGenerate_PrefijoCortoSeRellena(t *testing.T) {
	c := code.Generate("ab")
	assert.Equal(t, "ABXX", c[:4], "prefijos cortos se rellenan para longitud estable")
}

func TestGenerate_PrefijoVacio(t *testing.T) {
	c := code.Generate("")
	assert.Equal(t, "XXXX", c[:4])
	assert.Len(t, c, 21)
}

func TestNewSaleCode_UsaPrefijoSale(t *testing.T) {
	c := code.NewSaleCode()
	assert.Equal(t, code.SalePrefix, c[:4])
}

// Dos códigos generados en el mismo milisegundo deben diferir por el sufijo
// aleatorio (el UNIQUE de la base respalda el caso residual).
func TestGenerate_SinColisionesEnRafaga(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		c := code.NewSaleCode()
		require.False(t, seen[c], "código repetido en ráfaga: %s", c)
		seen[c] = true
	}
}
