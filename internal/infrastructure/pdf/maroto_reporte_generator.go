// Package pdf implementa el reporte tabular de productos en PDF.
//
// Layout de la página A4:
//
//	┌──────────────────────────────────────────────────────┐
//	│              Reporte de Productos (título)           │
//	│  ──────────────────────────────────────────────────  │
//	│  TABLA: Nombre | Descripción | Precio | Estado       │
//	│  ...una fila por producto...                         │
//	│                    pág N / M                         │
//	└──────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/gestion-productos-api/internal/application/usecase"
	"github.com/jhoicas/gestion-productos-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.ReporteGenerator = (*MarotoReporteGenerator)(nil)

// MarotoReporteGenerator implementa usecase.ReporteGenerator usando Maroto v2.
type MarotoReporteGenerator struct {
	printer *message.Printer
}

// NewMarotoReporteGenerator construye el generador con formato monetario es-CO.
func NewMarotoReporteGenerator() *MarotoReporteGenerator {
	return &MarotoReporteGenerator{
		printer: message.NewPrinter(language.MustParse("es-CO")),
	}
}

// Generate renderiza el reporte y devuelve sus bytes. Con lista vacía produce
// un PDF válido con título y cabecera de tabla sin filas de datos.
func (g *MarotoReporteGenerator) Generate(productos []*entity.Producto) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithPageNumber(props.PageNumber{
			Pattern: "{current} / {total}",
			Place:   props.Bottom,
			Size:    8,
			Color:   colorGray,
		}).
		WithTitle("Reporte de Productos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, p := range productos {
		m.AddRows(g.productoRow(p))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow() core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("Reporte de Productos", props.Text{
				Style: fontstyle.Bold, Size: 18, Align: align.Center,
				Color: colorPrimary, Top: 2,
			}),
		),
	)
}

// tableHeaderRow: cabecera fija Nombre | Descripción | Precio | Estado.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(9).Add(
		h("Nombre", 3, align.Left),
		h("Descripción", 5, align.Left),
		h("Precio", 2, align.Right),
		h("Estado", 2, align.Center),
	)
}

// productoRow: una fila de datos por producto.
func (g *MarotoReporteGenerator) productoRow(p *entity.Producto) core.Row {
	estado := "Inactivo"
	if p.Estado {
		estado = "Activo"
	}
	return row.New(7).Add(
		col.New(3).Add(text.New(p.Nombre, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(5).Add(text.New(p.Descripcion, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(2).Add(text.New(g.formatPrecio(p.Precio), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
		col.New(2).Add(text.New(estado, props.Text{
			Size: 8, Align: align.Center, Top: 1,
		})),
	)
}

// formatPrecio formatea el precio como moneda con separadores es-CO.
// Solo para presentación; el valor exacto vive en la DB como NUMERIC.
func (g *MarotoReporteGenerator) formatPrecio(precio decimal.Decimal) string {
	return g.printer.Sprintf("$ %.2f", precio.InexactFloat64())
}
