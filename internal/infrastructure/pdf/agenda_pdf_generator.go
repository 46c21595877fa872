// Package pdf implementa el render de la agenda diaria del salón.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del salón  │  Fecha de la agenda            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Hora | Cliente | Profesional | Servicios | Estado    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de citas / confirmadas / canceladas          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/vitta-app/vitta-api/internal/application/agenda"
	"github.com/vitta-app/vitta-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 122, Blue: 255}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorMuted   = &props.Color{Red: 160, Green: 160, Blue: 160}
)

var statusLabels = map[string]string{
	entity.StatusPending:   "Pendiente",
	entity.StatusConfirmed: "Confirmada",
	entity.StatusCancelled: "Cancelada",
	entity.StatusNoShow:    "No asistió",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoAgendaGenerator implementa agenda.PDFGenerator usando Maroto v2.
type MarotoAgendaGenerator struct{}

// NewMarotoAgendaGenerator construye el generador.
func NewMarotoAgendaGenerator() *MarotoAgendaGenerator { return &MarotoAgendaGenerator{} }

var _ agenda.PDFGenerator = (*MarotoAgendaGenerator)(nil)

// GenerateAgendaPDF genera el PDF y devuelve sus bytes.
func (g *MarotoAgendaGenerator) GenerateAgendaPDF(_ context.Context, day *agenda.Day) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Agenda diaria", true).
		WithAuthor(day.Tenant.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(day))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(day.Entries) == 0 {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("Sin citas para este día.", props.Text{
				Size: 10, Align: align.Center, Color: colorGray, Top: 4,
			}),
		)))
	} else {
		m.AddRows(tableHeaderRow())
		for _, r := range tableEntryRows(day.Entries) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(summaryRow(day.Entries))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del salón (izq) y fecha de la agenda (der).
func headerRow(day *agenda.Day) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(day.Tenant.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Agenda del día", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(day.Date.Format("Monday"), props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 2,
			}),
			text.New(day.Date.Format("02/01/2006"), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de citas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Hora", 2, align.Left),
		h("Cliente", 3, align.Left),
		h("Profesional", 2, align.Left),
		h("Servicios", 3, align.Left),
		h("Estado", 2, align.Right),
	)
}

// tableEntryRows: una fila por cita; las no bloqueantes van atenuadas.
func tableEntryRows(entries []agenda.Entry) []core.Row {
	result := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		textColor := (*props.Color)(nil)
		if e.Status == entity.StatusCancelled || e.Status == entity.StatusNoShow {
			textColor = colorMuted
		}
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{
				Size: 8, Align: a, Top: 1, Left: 1, Right: 1, Color: textColor,
			}))
		}
		hora := e.Start.Format("15:04") + "–" + e.End.Format("15:04")
		cliente := e.ClientName
		if cliente == "" {
			cliente = "—"
		}
		result = append(result, row.New(7).Add(
			cell(hora, 2, align.Left),
			cell(cliente, 3, align.Left),
			cell(e.EmployeeName, 2, align.Left),
			cell(strings.Join(e.Services, ", "), 3, align.Left),
			cell(statusLabel(e.Status), 2, align.Right),
		))
	}
	return result
}

// summaryRow: conteos por estado al pie de la agenda.
func summaryRow(entries []agenda.Entry) core.Row {
	counts := map[string]int{}
	for _, e := range entries {
		counts[e.Status]++
	}
	resumen := fmt.Sprintf(
		"Total: %d citas   |   Confirmadas: %d   |   Pendientes: %d   |   Canceladas: %d   |   No asistió: %d",
		len(entries),
		counts[entity.StatusConfirmed],
		counts[entity.StatusPending],
		counts[entity.StatusCancelled],
		counts[entity.StatusNoShow],
	)
	return row.New(8).Add(col.New(12).Add(
		text.New(resumen, props.Text{Size: 7.5, Color: colorGray, Top: 2}),
	))
}

func statusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}
