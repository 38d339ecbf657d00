// Package code genera los códigos identificadores imprimibles en code128:
// códigos de barras de variantes y códigos de venta.
package code

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SalePrefix es el prefijo de los códigos de venta, distinto de cualquier
// código de producto.
const SalePrefix = "SALE"

// prefixLen caracteres del prefijo que se conservan; suffixLen caracteres
// aleatorios que desambiguan generaciones dentro del mismo milisegundo.
const (
	prefixLen = 4
	suffixLen = 4
)

// Generate produce un código estable en longitud y apto para code128:
// prefijo alfanumérico (hasta 4 caracteres, en mayúsculas) + timestamp Unix en
// milisegundos (13 dígitos) + 4 hex aleatorios. La unicidad definitiva la
// respalda el constraint UNIQUE de la base de datos.
func Generate(prefix string) string {
	return sanitizePrefix(prefix) +
		strconv.FormatInt(time.Now().UnixMilli(), 10) +
		randomSuffix()
}

// NewSaleCode genera el código identificador de una venta.
func NewSaleCode() string {
	return Generate(SalePrefix)
}

// sanitizePrefix deja solo [A-Z0-9] y recorta a prefixLen.
func sanitizePrefix(prefix string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(prefix) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() == prefixLen {
				break
			}
		}
	}
	if b.Len() == 0 {
		return strings.Repeat("X", prefixLen)
	}
	// Rellenar para mantener longitud estable por prefijo
	return b.String() + strings.Repeat("X", prefixLen-b.Len())
}

func randomSuffix() string {
	u := uuid.New()
	return strings.ToUpper(u.String()[:suffixLen])
}
