// Package pdf renders the printable invoice document.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Organization + EIN       │  INVOICE + N° + dates    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FROM: issuer snapshot   │  BILL TO: client contact block    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Qty | Description | Unit Price | Tax | Amount        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Subtotal / TOTAL DUE                                │
//	│  NOTES + PAYMENT INSTRUCTIONS                                │
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/udhaydurai/donor-breeze/internal/domain/billing"
	"github.com/udhaydurai/donor-breeze/internal/domain/entity"
)

// ── Color palette ─────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 115}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// usd formats amounts with US-style thousands separators.
var usd = message.NewPrinter(language.AmericanEnglish)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implements invoicing.InvoicePDFGenerator using Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator builds the generator.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF renders the invoice and returns the PDF bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	settings entity.OrganizationSettings,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+invoice.InvoiceNumber, true).
		WithAuthor(invoice.OrganizationInfo.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(invoice.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoice.Items))

	for _, r := range footerRows(invoice, settings) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// headerRow: organization identity (left) and invoice number + dates (right).
func headerRow(invoice *entity.Invoice) core.Row {
	org := invoice.OrganizationInfo

	left := col.New(7).Add(
		text.New(org.Name, props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
		}),
	)
	if org.TaxID != "" {
		left.Add(text.New("EIN: "+org.TaxID, props.Text{
			Size: 8, Top: 9, Color: colorGray,
		}))
	}
	left.Add(text.New("(a 501(c) Non-Profit Organization)", props.Text{
		Size: 8, Top: 13, Color: colorGray,
	}))

	return row.New(22).Add(
		left,
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+invoice.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 10,
			}),
			text.New("Date: "+formatDate(invoice.Date), props.Text{
				Size: 8, Align: align.Right, Top: 15, Color: colorGray,
			}),
			text.New("Due: "+formatDate(invoice.DueDate), props.Text{
				Size: 8, Align: align.Right, Top: 19, Color: colorGray,
			}),
		),
	)
}

// partiesRow: From (issuer snapshot) and Bill To side by side.
func partiesRow(invoice *entity.Invoice) core.Row {
	org := invoice.OrganizationInfo
	billTo := invoice.BillTo

	fromLines := []string{org.Name, org.Address, org.Email, org.Phone}
	if org.Website != "" {
		fromLines = append(fromLines, org.Website)
	}

	cityLine := billTo.City
	if billTo.State != "" {
		cityLine += ", " + billTo.State
	}
	if billTo.Zip != "" {
		cityLine += " " + billTo.Zip
	}
	toLines := []string{billTo.Name, billTo.Address, cityLine, billTo.Country}
	if billTo.Email != "" {
		toLines = append(toLines, billTo.Email)
	}
	if billTo.Phone != "" {
		toLines = append(toLines, billTo.Phone)
	}

	return row.New(34).Add(
		blockCol(6, "FROM", fromLines),
		blockCol(6, "BILL TO", toLines),
	)
}

// blockCol renders a captioned block of address lines, skipping blanks.
func blockCol(size int, caption string, lines []string) core.Col {
	c := col.New(size).Add(
		text.New(caption, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
	)
	top := 6.0
	for _, l := range lines {
		if l == "" {
			continue
		}
		c.Add(text.New(l, props.Text{Size: 8, Top: top, Color: colorGray}))
		top += 4.5
	}
	return c
}

// tableHeaderRow: line-item table caption row.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("Description", 6, align.Left),
		h("Unit Price", 2, align.Right),
		h("Tax", 1, align.Center),
		h("Amount", 2, align.Right),
	)
}

// tableItemRows: one row per line item. The tax column is informational
// and not reflected in the totals.
func tableItemRows(items []entity.LineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, item := range items {
		tax := "—"
		if item.Tax != nil {
			tax = item.Tax.String() + "%"
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", item.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				item.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				formatMoney(item.Price),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				tax,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				formatMoney(billing.LineAmount(item)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: subtotal and total, right-aligned. They are equal today
// because per-line tax is never aggregated.
func totalsRow(items []entity.LineItem) core.Row {
	return row.New(16).Add(
		col.New(6),
		col.New(3).Add(
			text.New("Subtotal:", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
			}),
			text.New("TOTAL DUE:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 7, Right: 2,
			}),
		),
		col.New(3).Add(
			text.New(formatMoney(billing.Subtotal(items)), props.Text{
				Size: 9, Align: align.Right, Right: 1,
			}),
			text.New(formatMoney(billing.Total(items)), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 7, Right: 1,
			}),
		),
	)
}

// footerRows: notes and payment instructions, when present.
func footerRows(invoice *entity.Invoice, settings entity.OrganizationSettings) []core.Row {
	rows := []core.Row{line.NewRow(3)}

	if invoice.Notes != "" {
		rows = append(rows, row.New(12).Add(col.New(12).Add(
			text.New("NOTES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.Notes, props.Text{Size: 8, Top: 6, Color: colorGray}),
		)))
	}

	if pi := invoice.PaymentInfo; pi != nil && pi.BankName != "" {
		rows = append(rows,
			line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}),
			row.New(26).Add(col.New(12).Add(
				text.New("PAYMENT INSTRUCTIONS", props.Text{
					Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
				}),
				text.New("Bank: "+pi.BankName, props.Text{Size: 8, Top: 6, Color: colorGray}),
				text.New("Account Name: "+pi.AccountName, props.Text{Size: 8, Top: 10.5, Color: colorGray}),
				text.New(fmt.Sprintf("Account N°: %s   |   Routing N°: %s", pi.AccountNumber, pi.RoutingNumber),
					props.Text{Size: 8, Top: 15, Color: colorGray}),
				text.New("Bank Address: "+pi.Address, props.Text{Size: 8, Top: 19.5, Color: colorGray}),
			)),
		)
	}

	thanks := "Thank you for supporting " + settings.Name + "."
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(thanks, props.Text{
			Size: 8, Align: align.Center, Color: colorGray, Top: 3,
		}),
	)))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatDate renders an ISO yyyy-mm-dd date as MM/dd/yyyy, falling back to
// the raw string when it does not parse.
func formatDate(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("01/02/2006")
}

// formatMoney renders a dollar amount rounded to two places with US-style
// separators. Ex: 1234.5 → "$1,234.50"
func formatMoney(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return usd.Sprintf("$%.2f", f)
}
