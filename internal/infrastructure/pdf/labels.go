// Package pdf genera los documentos imprimibles de la aplicación con Maroto
// v2: etiquetas con código de barras para estanterías/cajas/muestras y el
// informe del registro de auditoría.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/corsairpublic-create/sample-buddy-log/internal/domain/entity"
)

const mmPerInch = 25.4

var colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}

// LabelItem es un elemento a etiquetar.
type LabelItem struct {
	Code string // contenido del código de barras
	Kind string // shelf | box | sample, impreso como leyenda
}

// Generator produce los PDF de la aplicación.
type Generator struct{}

// NewGenerator construye el generador.
func NewGenerator() *Generator { return &Generator{} }

// LabelSheet genera una etiqueta por página con el tamaño configurado en los
// ajustes de impresión (pulgadas). Cada etiqueta lleva el código en Code 128
// y el texto legible debajo.
func (g *Generator) LabelSheet(items []LabelItem, ps entity.PrinterSettings) ([]byte, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("pdf: nada que etiquetar")
	}
	widthMM := ps.DefaultWidth * mmPerInch
	heightMM := ps.DefaultHeight * mmPerInch

	cfg := config.NewBuilder().
		WithDimensions(widthMM, heightMM).
		WithLeftMargin(3).WithRightMargin(3).
		WithTopMargin(3).WithBottomMargin(3).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		Build()

	m := maroto.New(cfg)

	barH := heightMM * 0.55
	for _, item := range items {
		m.AddRows(
			row.New(barH).Add(
				col.New(12).Add(code.NewBar(item.Code, props.Barcode{
					Percent: 90,
					Center:  true,
				})),
			),
			row.New(6).Add(
				col.New(12).Add(text.New(item.Code, props.Text{
					Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 1,
				})),
			),
			row.New(4).Add(
				col.New(12).Add(text.New(kindLabel(item.Kind), props.Text{
					Size: 6, Align: align.Center, Color: colorGray,
				})),
			),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiquetas: %w", err)
	}
	return doc.GetBytes(), nil
}

// LogReport genera el informe A4 del registro de auditoría, de más reciente a
// más antiguo (el orden en que ya está la secuencia).
func (g *Generator) LogReport(state *entity.AppState) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(10).Add(
		col.New(12).Add(text.New("Registro Operazioni", props.Text{
			Style: fontstyle.Bold, Size: 13, Top: 1,
		})),
	))
	m.AddRows(line.NewRow(2, props.Line{Thickness: 0.4}))
	m.AddRows(logHeaderRow())

	for _, e := range state.Logs {
		m.AddRows(logEntryRow(e))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar informe: %w", err)
	}
	return doc.GetBytes(), nil
}

func logHeaderRow() core.Row {
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Data/Ora", 2),
		h("Operatore", 2),
		h("Azione", 3),
		h("Dettagli", 5),
	)
}

func logEntryRow(e entity.LogEntry) core.Row {
	return row.New(5).Add(
		col.New(2).Add(text.New(e.Timestamp.Format("02/01/2006 15:04"), props.Text{Size: 7})),
		col.New(2).Add(text.New(e.Operator, props.Text{Size: 7})),
		col.New(3).Add(text.New(e.Action, props.Text{Size: 7})),
		col.New(5).Add(text.New(e.Details, props.Text{Size: 7, Color: colorGray})),
	)
}

func kindLabel(kind string) string {
	switch kind {
	case entity.ItemTypeShelf:
		return "Scaffale"
	case entity.ItemTypeBox:
		return "Cassetta"
	case entity.ItemTypeSample:
		return "Campione"
	default:
		return kind
	}
}
