// Package pdf implementa la generación del reporte de valorización de
// inventario en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Categoría | Stock | P.Unit | Valor  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: valor total del inventario                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/jhoicas/cafe-stock-api/internal/application/dto"
	appreport "github.com/jhoicas/cafe-stock-api/internal/application/report"
)

var _ appreport.InventoryPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 74, Green: 44, Blue: 23} // marrón café
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.InventoryPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(
	_ context.Context,
	report *dto.InventoryReport,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, item := range report.Items {
		m.AddRows(itemRow(item))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("maroto generate: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Reporte de Valorización de Inventario", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("Generado: %s", generatedAt.Format("2006-01-02 15:04")), props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 3,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Size: 8, Style: fontstyle.Bold, Align: a, Color: colorWhite, Top: 1.5,
		}))
	}
	r := row.New(7).Add(
		header(2, "SKU", align.Left),
		header(4, "Producto", align.Left),
		header(2, "Categoría", align.Left),
		header(1, "Stock", align.Right),
		header(1, "P. Unit", align.Right),
		header(2, "Valor", align.Right),
	)
	r.WithStyle(&props.Cell{BackgroundColor: colorPrimary})
	return r
}

func itemRow(item dto.InventoryReportItem) core.Row {
	cell := func(size int, value string, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1}))
	}
	return row.New(6).Add(
		cell(2, item.SKU, align.Left),
		cell(4, item.Name, align.Left),
		cell(2, item.CategoryName, align.Left),
		cell(1, fmt.Sprintf("%d %s", item.CurrentStock, item.UnitMeasure), align.Right),
		cell(1, "$"+item.UnitPrice.StringFixed(2), align.Right),
		cell(2, "$"+item.TotalValue.StringFixed(2), align.Right),
	)
}

func totalRow(report *dto.InventoryReport) core.Row {
	return row.New(9).Add(
		col.New(8).Add(
			text.New(fmt.Sprintf("%d producto(s)", len(report.Items)), props.Text{
				Size: 8, Color: colorGray, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("TOTAL: $"+report.GrandTotal.StringFixed(2), props.Text{
				Size: 11, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
		),
	)
}
