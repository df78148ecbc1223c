// Package pdf genera el resumen imprimible de un contrato.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Trading name + Legal name │ Adquirente + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  COMERCIO: Registro / Director / Banco                       │
//	│  CONTRATO: Ventana + MID/TID + Tarifas                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA POS: Serial | Modelo | Precio | Hardware | Software   │
//	│  TABLA SERVICIOS: Servicio | Precio | Costo                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Ingresos / Costos / MARGEN                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con el id del contrato + fecha de generación     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-crm-api/internal/application/usecase"
	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
)

var _ usecase.ContractPDFRenderer = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const dateLayout = "02/01/2006"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.ContractPDFRenderer usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador; author figura en los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author}
}

// RenderContractSummary genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) RenderContractSummary(_ context.Context, doc usecase.ContractDocument) ([]byte, error) {
	if doc.Contract == nil || doc.Costumer == nil {
		return nil, fmt.Errorf("pdf: documento incompleto")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Contract summary "+doc.Costumer.TradingName, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(costumerRow(doc.Costumer))
	m.AddRows(contractRow(doc.Contract))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("TERMINALES"))
	m.AddRows(tableHeaderRow([]column{
		{"Serial", 3, align.Left}, {"Modelo", 3, align.Left}, {"Precio", 2, align.Right},
		{"Hardware", 2, align.Right}, {"Software", 2, align.Right},
	}))
	m.AddRows(posRows(doc.POS)...)

	m.AddRows(sectionTitle("SERVICIOS VIRTUALES"))
	m.AddRows(tableHeaderRow([]column{
		{"Servicio", 6, align.Left}, {"Precio", 3, align.Right}, {"Costo", 3, align.Right},
	}))
	m.AddRows(serviceRows(doc.Services)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(doc))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(doc))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombres del comercio (izq) y adquirente + fecha (der).
func headerRow(doc usecase.ContractDocument) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(doc.Costumer.TradingName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Costumer.LegalName, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CONTRACT SUMMARY", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(entity.AcquirerName(doc.Contract.Acquirer), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+doc.Generated.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// costumerRow: registro, director y banco del comercio.
func costumerRow(c *entity.Costumer) core.Row {
	return row.New(22).Add(
		col.New(12).Add(
			text.New("COMERCIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   %s   |   Company nº: %s",
				c.LegalEntity, c.BusinessType, nonEmpty(c.CompanyNumber, "-"),
			), props.Text{Size: 8, Top: 6}),
			text.New(fmt.Sprintf("Director: %s   |   %s   |   %s",
				nonEmpty(c.DirectorName, "-"), nonEmpty(c.DirectorEmail, "-"), nonEmpty(c.DirectorPhone, "-"),
			), props.Text{Size: 8, Top: 11, Color: colorGray}),
			text.New(fmt.Sprintf("Banco: %s   |   Sort code: %s   |   Cuenta: %s",
				nonEmpty(c.BusinessBankName, "-"), nonEmpty(c.SortCode, "-"), maskAccount(c.AccountNumber),
			), props.Text{Size: 8, Top: 16, Color: colorGray}),
		),
	)
}

// contractRow: ventana de vigencia, identificadores y tarifas.
func contractRow(c *entity.Contract) core.Row {
	return row.New(22).Add(
		col.New(12).Add(
			text.New("CONTRATO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Vigencia: %s - %s   |   Face to face: %d%%",
				c.LiveDate.Format(dateLayout), c.EndDate.Format(dateLayout), c.FaceToFaceSales,
			), props.Text{Size: 8, Top: 6}),
			text.New(fmt.Sprintf("MID: %s   |   TID: %s   |   E-commerce MID: %s   |   Amex MID: %s",
				nonEmpty(c.MID, "-"), nonEmpty(c.TID, "-"), nonEmpty(c.ECommerceMID, "-"), nonEmpty(c.AmexMID, "-"),
			), props.Text{Size: 8, Top: 11, Color: colorGray}),
			text.New(fmt.Sprintf("ATV: %s   |   Card turnover: %s   |   Auth fee: %.2f   |   PCI DSS: %.2f",
				money(c.ATV), money(c.AnnualCardTurnover), c.AuthorizationFee, c.PCIDSS,
			), props.Text{Size: 8, Top: 16, Color: colorGray}),
		),
	)
}

func sectionTitle(label string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

type column struct {
	label string
	size  int
	align align.Type
}

func tableHeaderRow(cols []column) core.Row {
	r := row.New(6)
	for _, c := range cols {
		r.Add(col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1,
		})))
	}
	return r
}

func cell(size int, s string, a align.Type) core.Col {
	return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
}

func emptyRow(label string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
	))
}

// posRows: una fila por POS vinculado.
func posRows(lines []usecase.ContractPOSLine) []core.Row {
	if len(lines) == 0 {
		return []core.Row{emptyRow("Sin terminales vinculados")}
	}
	out := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		serial, model := "-", "-"
		if l.Detail != nil {
			serial = l.Detail.SerialNumber
			model = l.Detail.Company.Name + " " + l.Detail.Model.Name
		}
		out = append(out, row.New(6).Add(
			cell(3, serial, align.Left),
			cell(3, model, align.Left),
			cell(2, money(l.Link.Price), align.Right),
			cell(2, money(l.Link.HardwareCost), align.Right),
			cell(2, money(l.Link.SoftwareCost), align.Right),
		))
	}
	return out
}

// serviceRows: una fila por servicio vinculado.
func serviceRows(lines []usecase.ContractServiceLine) []core.Row {
	if len(lines) == 0 {
		return []core.Row{emptyRow("Sin servicios vinculados")}
	}
	out := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		name := "-"
		if l.Service != nil {
			name = l.Service.Name
		}
		out = append(out, row.New(6).Add(
			cell(6, name, align.Left),
			cell(3, money(l.Link.Price), align.Right),
			cell(3, money(l.Link.Cost), align.Right),
		))
	}
	return out
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(doc usecase.ContractDocument) core.Row {
	rev := doc.Revenue
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	income := decimal.Sum(rev.POSPriceTotal, rev.ServicePriceTotal, rev.PaperRollPriceTotal, rev.MIDProfitTotal)
	costs := decimal.Sum(rev.POSCostTotal, rev.ServiceCostTotal, rev.PaperRollCostTotal, rev.DirectDebitTotal)

	return row.New(22).Add(
		col.New(4),
		col.New(4).Add(
			label("Ingresos:"),
			label("Costos:"),
			text.New("MARGEN:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 10,
			}),
		),
		col.New(4).Add(
			value(money(income)),
			text.New(money(costs), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 5}),
			text.New(money(rev.Margin), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 10,
			}),
		),
	)
}

// footerRow: QR con el id del contrato para localizarlo en el back-office.
func footerRow(doc usecase.ContractDocument) core.Row {
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(doc.Contract.ID, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Contrato "+doc.Contract.ID, props.Text{Size: 8, Top: 4, Left: 3, Color: colorGray}),
			text.New("Generado el "+doc.Generated.Format(dateLayout+" 15:04"), props.Text{
				Size: 8, Top: 10, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// maskAccount deja visibles los últimos 4 dígitos.
func maskAccount(s string) string {
	if len(s) <= 4 {
		return nonEmpty(s, "-")
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}

// money formatea en libras con separador de miles: 1234.5 -> "£1,234.50".
func money(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	intPart, frac, _ := strings.Cut(d.StringFixed(2), ".")
	return sign + "£" + groupThousands(intPart) + "." + frac
}

// groupThousands inserta comas de miles en un string numérico sin decimales.
// Ej: "25000" -> "25,000", "1000000" -> "1,000,000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
