// Package pdf gera a factura proforma do pedido em A4.
//
// Layout da página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: AgriConecta           │  N° Pedido + Data + Estado  │
//	│  ───────────────────────────────────────────────────────────│
//	│  CLIENTE: Nome + contacto + endereço de entrega             │
//	│  ───────────────────────────────────────────────────────────│
//	│  TABELA: Qtd | Produto | Preço Unit. | Subtotal             │
//	│  ───────────────────────────────────────────────────────────│
//	│  TOTAIS: Subtotal / Taxa de entrega / Desconto / TOTAL      │
//	│  ───────────────────────────────────────────────────────────│
//	│  PAGAMENTO: Banco + IBAN + QR de transferência              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	"github.com/agriconecta/agriconecta-api/internal/application/orders"
	"github.com/agriconecta/agriconecta-api/internal/domain/entity"
	"github.com/agriconecta/agriconecta-api/pkg/money"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 27, Green: 94, Blue: 32}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ orders.InvoicePDFGenerator = (*MarotoInvoiceGenerator)(nil)

// MarotoInvoiceGenerator implementa orders.InvoicePDFGenerator usando Maroto v2.
type MarotoInvoiceGenerator struct{}

// NewMarotoInvoiceGenerator constrói o gerador.
func NewMarotoInvoiceGenerator() *MarotoInvoiceGenerator { return &MarotoInvoiceGenerator{} }

// GenerateOrderInvoice gera o PDF da factura proforma e devolve os bytes.
func (g *MarotoInvoiceGenerator) GenerateOrderInvoice(
	_ context.Context,
	order *entity.Order,
	customer *entity.User,
	pay orders.PaymentInfo,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura Proforma "+order.Number, true).
		WithAuthor("AgriConecta", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(order, customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(order.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(order))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range paymentRows(order, pay) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secções ───────────────────────────────────────────────────────────────────

// headerRow: marca (esq) e número + data + estado do pedido (dir).
func headerRow(order *entity.Order) core.Row {
	data := order.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("AgriConecta", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Do campo para a sua mesa", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA PROFORMA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(order.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(fmt.Sprintf("Data: %s   |   Estado: %s", data, order.State.Label()), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: dados do cliente e endereço de entrega.
func customerRow(order *entity.Order, customer *entity.User) core.Row {
	name, email, phone := "—", "—", "—"
	if customer != nil {
		name = customer.Name
		email = nonEmpty(customer.Email, "—")
		phone = nonEmpty(customer.Phone, "—")
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s", email, phone),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
			text.New("Entrega: "+nonEmpty(order.DeliveryAddr, "—"),
				props.Text{Size: 8, Top: 16, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de itens.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd.", 1, align.Center),
		h("Produto", 6, align.Left),
		h("Preço Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableItemRows: uma linha por item do pedido.
func tableItemRows(items []entity.OrderItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				money.FormatKz(it.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				money.FormatKz(it.Subtotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloco de totais alinhado à direita.
func totalsRow(order *entity.Order) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	labels := []core.Component{label("Subtotal:"), label("Taxa de entrega:")}
	values := []core.Component{
		value(money.FormatKz(order.Subtotal)),
		value(money.FormatKz(order.DeliveryFee)),
	}
	if !order.Discount.IsZero() {
		labels = append(labels, label("Desconto:"))
		values = append(values, value("-"+money.FormatKz(order.Discount)))
	}
	labels = append(labels, grandLabel("TOTAL A PAGAR:"))
	values = append(values, grandValue(money.FormatKz(order.Total)))

	return row.New(30).Add(
		col.New(3),
		col.New(3).Add(labels...),
		col.New(3).Add(values...),
		col.New(3),
	)
}

// paymentRows: instruções de pagamento por transferência + QR.
func paymentRows(order *entity.Order, pay orders.PaymentInfo) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("PAGAMENTO POR TRANSFERÊNCIA BANCÁRIA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}

	if pay.IBAN != "" {
		qrData := fmt.Sprintf("IBAN:%s;BENEF:%s;REF:%s;VALOR:%s",
			pay.IBAN, pay.Beneficiary, order.Number, order.Total.StringFixed(2))
		rows = append(rows, row.New(40).Add(
			col.New(4).Add(code.NewQr(qrData, props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(8).Add(
				text.New(fmt.Sprintf("Banco: %s", nonEmpty(pay.BankName, "—")), props.Text{
					Size: 9, Top: 4, Left: 3,
				}),
				text.New(fmt.Sprintf("IBAN: %s", pay.IBAN), props.Text{
					Style: fontstyle.Bold, Size: 9, Top: 10, Left: 3,
				}),
				text.New(fmt.Sprintf("Beneficiário: %s", nonEmpty(pay.Beneficiary, "—")), props.Text{
					Size: 9, Top: 16, Left: 3,
				}),
				text.New("Use o número do pedido como referência\nda transferência.", props.Text{
					Size: 8, Top: 24, Left: 3, Color: colorGray,
				}),
			),
		))
	} else {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("Contacte-nos para instruções de pagamento.", props.Text{
				Size: 8, Color: colorGray, Top: 2,
			}),
		)))
	}

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Documento proforma emitido pela AgriConecta. "+
				"O pedido segue para preparação após confirmação do pagamento.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
