package pdf

import (
	"context"
	"fmt"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/SscSPs/oris_formation_app/internal/core/documents"
	"github.com/SscSPs/oris_formation_app/internal/utils"
)

// RenderBilling draws a quote, invoice or credit note on portrait A4.
func (r *MarotoRenderer) RenderBilling(ctx context.Context, sheet documents.BillingSheet) ([]byte, error) {
	m := r.newDocument(orientation.Vertical, 0)

	m.AddRows(billingHeader(sheet)...)
	m.AddRows(separator())
	m.AddRows(billTo(sheet.BillTo)...)
	if sheet.Cancels != "" {
		m.AddRows(text.NewRow(7, sheet.Cancels, props.Text{Size: 9, Style: fontstyle.BoldItalic, Color: brandBlue}))
	}
	m.AddRows(spacer(4))
	m.AddRows(itemsTable(sheet.Lines)...)
	m.AddRows(spacer(3))
	m.AddRows(totalsBlock(sheet)...)

	if sheet.Notes != "" {
		m.AddRows(spacer(4))
		m.AddRows(text.NewRow(6, "Notes", body(fontstyle.Bold, align.Left)))
		m.AddRows(text.NewRow(12, sheet.Notes, body(fontstyle.Normal, align.Left)))
	}
	if sheet.ShowConsent {
		m.AddRows(spacer(6))
		m.AddRows(row.New(24).Add(
			col.New(6),
			col.New(6).Add(
				text.New("Bon pour accord", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Center, Top: 2}),
				text.New("Date, signature et cachet du client", props.Text{Size: 8, Align: align.Center, Top: 7, Color: mutedGray}),
			).WithStyle(cellBorder),
		))
	}
	if sheet.ShowBank {
		m.AddRows(spacer(6))
		m.AddRows(
			text.NewRow(5, "Règlement par virement bancaire", small(fontstyle.Bold, align.Left)),
			text.NewRow(5, fmt.Sprintf("IBAN : %s  -  BIC : %s", sheet.Issuer.IBAN, sheet.Issuer.BIC), small(fontstyle.Normal, align.Left)),
		)
	}

	m.AddRows(spacer(8))
	for _, l := range sheet.Footer {
		m.AddRows(text.NewRow(4, l, props.Text{Size: 7, Align: align.Center, Color: mutedGray}))
	}
	return generate(ctx, m, sheet.FileName)
}

func billingHeader(sheet documents.BillingSheet) []core.Row {
	issuer := sheet.Issuer
	identity := []core.Component{
		text.New(issuer.Name, props.Text{Size: 13, Style: fontstyle.Bold, Color: brandBlue}),
		text.New(issuer.Address, props.Text{Size: 8, Top: 7}),
		text.New(fmt.Sprintf("%s %s", issuer.Zip, issuer.City), props.Text{Size: 8, Top: 11}),
		text.New(fmt.Sprintf("%s - %s", issuer.Phone, issuer.Email), props.Text{Size: 8, Top: 15}),
	}

	meta := []core.Component{
		text.New(sheet.Title, props.Text{Size: 18, Style: fontstyle.Bold, Align: align.Right, Color: brandBlue}),
		text.New("N° "+sheet.Number, props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Top: 9}),
		text.New("Date : "+utils.FormatFrenchDate(sheet.IssueDate), props.Text{Size: 8, Align: align.Right, Top: 14}),
	}
	if sheet.ValidUntil != nil {
		meta = append(meta, text.New("Valable jusqu'au : "+utils.FormatFrenchDate(*sheet.ValidUntil),
			props.Text{Size: 8, Align: align.Right, Top: 18}))
	}

	if logo, ext, ok := decodeLogo(issuer.LogoURL); ok {
		return []core.Row{row.New(24).Add(
			col.New(3).Add(logoImage(logo, ext)),
			col.New(4).Add(identity...),
			col.New(5).Add(meta...),
		)}
	}
	return []core.Row{row.New(24).Add(
		col.New(7).Add(identity...),
		col.New(5).Add(meta...),
	)}
}

func billTo(p documents.Party) []core.Row {
	block := []core.Component{
		text.New("Facturé à", props.Text{Size: 8, Color: mutedGray, Left: 2, Top: 1}),
		text.New(p.Name, props.Text{Size: 10, Style: fontstyle.Bold, Left: 2, Top: 5}),
	}
	if p.Known {
		block = append(block,
			text.New(p.Address, props.Text{Size: 8, Left: 2, Top: 11}),
			text.New(p.ZipCity(), props.Text{Size: 8, Left: 2, Top: 15}),
		)
		if p.VAT != "" {
			block = append(block, text.New("TVA : "+p.VAT, props.Text{Size: 8, Left: 2, Top: 19}))
		}
	}
	return []core.Row{
		row.New(26).Add(col.New(6), col.New(6).Add(block...).WithStyle(&props.Cell{BackgroundColor: headerGray})),
	}
}

func itemsTable(lines []documents.BillingLine) []core.Row {
	head := props.Text{Size: 8, Style: fontstyle.Bold, Top: 2, Left: 1, Right: 1}
	headRight := head
	headRight.Align = align.Right
	rows := []core.Row{
		row.New(8).Add(
			textCol(6, "Désignation", head),
			textCol(1, "Qté", headRight),
			textCol(2, "PU HT", headRight),
			textCol(1, "TVA", headRight),
			textCol(2, "Total HT", headRight),
		).WithStyle(&props.Cell{BackgroundColor: headerGray}),
	}
	for _, l := range lines {
		rows = append(rows, row.New(8).Add(
			textCol(6, l.Description, body(fontstyle.Normal, align.Left)),
			textCol(1, utils.FormatQuantity(l.Quantity), body(fontstyle.Normal, align.Right)),
			textCol(2, utils.FormatEuro(l.UnitPrice), body(fontstyle.Normal, align.Right)),
			textCol(1, fmt.Sprintf("%d %%", l.VATRate), body(fontstyle.Normal, align.Right)),
			textCol(2, utils.FormatEuro(l.AmountHT), body(fontstyle.Normal, align.Right)),
		))
	}
	return rows
}

func totalsBlock(sheet documents.BillingSheet) []core.Row {
	line := func(label, amount string, style fontstyle.Type) core.Row {
		return row.New(7).Add(
			col.New(7),
			textCol(3, label, body(style, align.Left)),
			textCol(2, amount, body(style, align.Right)),
		)
	}
	return []core.Row{
		line("Total HT", utils.FormatEuro(sheet.Totals.TotalHT), fontstyle.Normal),
		line("TVA", utils.FormatEuro(sheet.Totals.TotalVAT), fontstyle.Normal),
		line(sheet.TotalLabel, utils.FormatEuro(sheet.Totals.TotalTTC), fontstyle.Bold).
			WithStyle(&props.Cell{BackgroundColor: headerGray}),
	}
}
