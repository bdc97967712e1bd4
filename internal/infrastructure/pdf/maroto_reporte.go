// Package pdf implementa la generación del reporte de expedientes en PDF
// usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: DICRI + título del reporte  │  Período + emisión    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: N° Exp | Título | Estado | Técnico | Ind. | Fecha    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total de expedientes listados                          │
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

	appreporte "github.com/wilmarbg/dicri-api/internal/application/reporte"
	"github.com/wilmarbg/dicri-api/internal/domain/repository"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 58, Blue: 95}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appreporte.ReportePDFGenerator = (*MarotoReporteGenerator)(nil)

// MarotoReporteGenerator implementa reporte.ReportePDFGenerator usando Maroto v2.
type MarotoReporteGenerator struct{}

// NewMarotoReporteGenerator construye el generador.
func NewMarotoReporteGenerator() *MarotoReporteGenerator { return &MarotoReporteGenerator{} }

// GenerarReportePDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReporteGenerator) GenerarReportePDF(
	_ context.Context,
	periodo appreporte.Periodo,
	filas []repository.FilaReporte,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Expedientes", true).
		WithAuthor("DICRI", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(periodo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, f := range filas {
		m.AddRows(filaRow(f))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(len(filas)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del sistema (izq) y período + fecha de emisión (der).
func headerRow(periodo appreporte.Periodo) core.Row {
	rango := fmt.Sprintf("Período: %s a %s",
		periodo.Desde.Format("02/01/2006"),
		periodo.Hasta.Format("02/01/2006"))
	emision := "Emitido: " + time.Now().Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("DICRI", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de Expedientes e Indicios", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(rango, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 3,
			}),
			text.New(emision, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de expedientes.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("N° Expediente", 2, align.Left),
		h("Título", 3, align.Left),
		h("Estado", 2, align.Center),
		h("Técnico", 2, align.Left),
		h("Ind.", 1, align.Center),
		h("F. Registro", 2, align.Right),
	)
}

// filaRow: una fila por expediente del reporte.
func filaRow(f repository.FilaReporte) core.Row {
	return row.New(7).Add(
		col.New(2).Add(text.New(
			f.NumeroExpediente,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(3).Add(text.New(
			f.Titulo,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			f.NombreEstado,
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(2).Add(text.New(
			f.TecnicoRegistra,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(1).Add(text.New(
			fmt.Sprintf("%d", f.TotalIndicios),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(2).Add(text.New(
			f.FechaRegistro.Format("02/01/2006"),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalRow: pie con el total de expedientes listados.
func totalRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(
			fmt.Sprintf("Total de expedientes en el período: %d", total),
			props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 2, Right: 1,
			},
		)),
	)
}
