// seed genera un script SQL para poblar el catálogo a partir de un CSV
// exportado por la caja legada (codificación ISO-8859-1).
//
// Columnas esperadas: sku, item_name, design_no, size, color, price, stock
//
// Uso: go run ./cmd/seed [ruta/catalogo.csv]
// Por defecto busca catalogo.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalog.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/caja-pos-api/pkg/code"
)

type catalogRow struct {
	sku      string
	name     string
	designNo string
	size     string
	color    string
	price    decimal.Decimal
	stock    int64
}

func main() {
	csvPath := "catalogo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// Los exports de la caja legada vienen en ISO-8859-1
	reader := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	reader.FieldsPerRecord = 7
	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	var rows []catalogRow
	for i, rec := range records {
		if i == 0 && strings.EqualFold(rec[0], "sku") {
			continue // encabezado
		}
		price, err := decimal.NewFromString(strings.TrimSpace(rec[5]))
		if err != nil || !price.GreaterThan(decimal.Zero) {
			fmt.Fprintf(os.Stderr, "Fila %d: precio inválido %q\n", i+1, rec[5])
			os.Exit(1)
		}
		stock, err := strconv.ParseInt(strings.TrimSpace(rec[6]), 10, 64)
		if err != nil || stock < 0 {
			fmt.Fprintf(os.Stderr, "Fila %d: stock inválido %q\n", i+1, rec[6])
			os.Exit(1)
		}
		rows = append(rows, catalogRow{
			sku:      strings.TrimSpace(rec[0]),
			name:     strings.TrimSpace(rec[1]),
			designNo: strings.TrimSpace(rec[2]),
			size:     strings.TrimSpace(rec[3]),
			color:    strings.TrimSpace(rec[4]),
			price:    price,
			stock:    stock,
		})
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo inicial de variantes y existencias\n")
	out.WriteString("-- Generado desde el export CSV de la caja legada\n\n")

	for _, r := range rows {
		variantID := uuid.New().String()
		barcode := code.Generate(r.sku)
		fmt.Fprintf(out, "INSERT INTO variants (id, sku, code, name, design_no, size, color, price, created_at, updated_at)\n")
		fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', '%s', '%s', '%s', '%s', %s, NOW(), NOW())\n",
			variantID, escapeSQL(r.sku), barcode, escapeSQL(r.name),
			escapeSQL(r.designNo), escapeSQL(r.size), escapeSQL(r.color), r.price.StringFixed(2))
		out.WriteString("ON CONFLICT (sku) DO UPDATE SET price = EXCLUDED.price;\n")
		fmt.Fprintf(out, "INSERT INTO stock_records (variant_id, quantity, updated_at)\n")
		fmt.Fprintf(out, "SELECT id, %d, NOW() FROM variants WHERE sku = '%s'\n", r.stock, escapeSQL(r.sku))
		out.WriteString("ON CONFLICT (variant_id) DO UPDATE SET quantity = EXCLUDED.quantity;\n\n")
	}

	fmt.Printf("Generado %s: %d variantes\n", outPath, len(rows))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
