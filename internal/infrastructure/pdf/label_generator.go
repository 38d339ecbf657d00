// Package pdf genera las etiquetas imprimibles de código de barras (code128),
// una etiqueta por página para impresoras térmicas de rollo.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/barcode"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// LabelGenerator renderiza etiquetas de código de barras con Maroto v2.
type LabelGenerator struct{}

// NewLabelGenerator construye el generador.
func NewLabelGenerator() *LabelGenerator { return &LabelGenerator{} }

// GenerateLabels genera un PDF con quantity copias de la etiqueta, una por
// página (la impresora corta entre páginas). Devuelve los bytes del documento.
func (g *LabelGenerator) GenerateLabels(codeText string, quantity int) ([]byte, error) {
	if codeText == "" || quantity < 1 {
		return nil, fmt.Errorf("pdf: código vacío o cantidad inválida")
	}

	// Etiqueta de 100x45mm
	cfg := config.NewBuilder().
		WithDimensions(100, 45).
		WithLeftMargin(5).WithRightMargin(5).
		WithTopMargin(5).WithBottomMargin(5).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		Build()

	m := maroto.New(cfg)

	for i := 0; i < quantity; i++ {
		m.AddPages(page.New().Add(
			row.New(25).Add(
				col.New(12).Add(
					code.NewBar(codeText, props.Barcode{
						Type:    barcode.Code128,
						Center:  true,
						Percent: 90,
					}),
				),
			),
			row.New(6).Add(
				col.New(12).Add(
					text.New(codeText, props.Text{Align: align.Center, Size: 8}),
				),
			),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiquetas: %w", err)
	}
	return doc.GetBytes(), nil
}
