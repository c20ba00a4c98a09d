// Package pdf implementa el reporte en PDF del tablero de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Valor total | Unidades | Productos | Stock bajo     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PARTICIPACIÓN: Categoría | Valor | %                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Cant. | P.Unit | Valor        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: umbral de stock bajo                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Inventario-dashboard/internal/application/analytics"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
)

var _ analytics.ReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarning = &props.Color{Red: 176, Green: 0, Blue: 32}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa analytics.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	title   string
	printer *message.Printer
}

// NewMarotoReportGenerator construye el generador; title aparece en la cabecera y en los metadatos.
func NewMarotoReportGenerator(title string) *MarotoReportGenerator {
	if title == "" {
		title = "Inventario"
	}
	return &MarotoReportGenerator{title: title, printer: message.NewPrinter(language.Spanish)}
}

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(
	_ context.Context,
	report *dto.DashboardResponse,
	generatedAt time.Time,
) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("pdf: reporte vacío")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("PARTICIPACIÓN POR CATEGORÍA"))
	m.AddRows(g.shareRows(report.Shares)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle(fmt.Sprintf("PRODUCTOS (%d de %d)", len(report.Items), report.ItemCount)))
	m.AddRows(itemsHeaderRow())
	m.AddRows(g.itemRows(report.Items)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Stock bajo: cantidad menor a %d unidades.", report.LowStockThreshold),
			props.Text{Size: 7, Color: colorGray, Top: 2}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoReportGenerator) headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(strings.ToUpper(g.title), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// summaryRow: los cuatro indicadores del tablero.
func (g *MarotoReportGenerator) summaryRow(r *dto.DashboardResponse) core.Row {
	kpi := func(label, value string, color *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Color: color, Top: 6, Align: align.Center}),
		)
	}
	lowColor := colorPrimary
	if r.LowStockCount > 0 {
		lowColor = colorWarning
	}
	return row.New(16).Add(
		kpi("Valor total", g.money(r.TotalValue), colorPrimary),
		kpi("Unidades", g.printer.Sprintf("%d", r.TotalUnits), colorPrimary),
		kpi("Productos", g.printer.Sprintf("%d", r.ItemCount), colorPrimary),
		kpi("Stock bajo", g.printer.Sprintf("%d", r.LowStockCount), lowColor),
	)
}

func (g *MarotoReportGenerator) shareRows(shares []dto.CategoryShareDTO) []core.Row {
	if len(shares) == 0 {
		return []core.Row{emptyRow("Sin datos")}
	}
	rows := make([]core.Row, 0, len(shares))
	for _, s := range shares {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(s.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(g.money(s.Value), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(s.Percent.StringFixed(2)+"%", props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Categoría", 3, align.Left),
		h("Cant.", 1, align.Center),
		h("Precio Unit.", 2, align.Right),
		h("Valor", 2, align.Right),
	)
}

// itemRows: una fila por línea; las de stock bajo en color de advertencia.
func (g *MarotoReportGenerator) itemRows(items []dto.DashboardLineDTO) []core.Row {
	if len(items) == 0 {
		return []core.Row{emptyRow("Ningún producto coincide con los filtros")}
	}
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		var qtyColor *props.Color
		if it.LowStock {
			qtyColor = colorWarning
		}
		rows = append(rows, row.New(7).Add(
			col.New(4).Add(text.New(it.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(it.CategoryName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(g.printer.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: qtyColor})),
			col.New(2).Add(text.New(g.money(it.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(g.money(it.LineValue),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func sectionTitle(s string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func emptyRow(s string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(s, props.Text{Size: 8, Color: colorGray, Top: 1, Align: align.Center}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// money formatea con separador de miles y dos decimales: 1234.5 → "1.234,50".
func (g *MarotoReportGenerator) money(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")
	return sign + formatMoney(intPart) + "," + frac
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
