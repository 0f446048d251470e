package pdf

import (
	"context"
	"fmt"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
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

// Attendance grid widths, in grid units.
const (
	nameUnits   = 8
	periodUnits = 3
)

// RenderAttendance draws the attendance sheet on landscape A4. The grid is sized
// so that every day gets a morning and an afternoon signature cell.
func (r *MarotoRenderer) RenderAttendance(ctx context.Context, sheet documents.AttendanceSheet) ([]byte, error) {
	dayUnits := periodUnits * len(sheet.Periods)
	grid := nameUnits + dayUnits*len(sheet.Days)
	m := r.newDocument(orientation.Horizontal, grid)

	m.AddRows(
		row.New(10).Add(
			textCol(grid/2, sheet.Company.Name, props.Text{Size: 12, Style: fontstyle.Bold, Color: brandBlue}),
			textCol(grid-grid/2, "FEUILLE D'ÉMARGEMENT", props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Right}),
		),
		text.NewRow(6, fmt.Sprintf("Formation : %s - %s", sheet.Training.Reference, sheet.Training.Title), props.Text{Size: 9, Style: fontstyle.Bold}),
		text.NewRow(5, fmt.Sprintf("Client : %s", sheet.Training.ClientName), props.Text{Size: 8}),
		text.NewRow(5, fmt.Sprintf("Du %s au %s (%d heures) - Lieu : %s - Formateur : %s",
			utils.FormatFrenchDate(sheet.Training.StartDate), utils.FormatFrenchDate(sheet.Training.EndDate),
			sheet.Training.Hours, sheet.Training.Location, sheet.Training.Trainer), props.Text{Size: 8}),
		spacer(4),
	)

	head := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center, Top: 1.5}
	dayRow := row.New(7).Add(textCol(nameUnits, "Stagiaire", head).WithStyle(cellBorder))
	periodRow := row.New(6).Add(col.New(nameUnits).WithStyle(cellBorder))
	for _, d := range sheet.Days {
		dayRow.Add(textCol(dayUnits, utils.FormatShortFrenchDay(d), head).WithStyle(cellBorder))
		for _, p := range sheet.Periods {
			periodRow.Add(textCol(periodUnits, p, props.Text{Size: 7, Align: align.Center, Top: 1}).WithStyle(cellBorder))
		}
	}
	dayRow.WithStyle(&props.Cell{BackgroundColor: headerGray})
	m.AddRows(dayRow, periodRow)

	for _, tr := range sheet.Rows {
		signatures := row.New(11).Add(textCol(nameUnits, tr.TraineeName, body(fontstyle.Normal, align.Left)).WithStyle(cellBorder))
		for range sheet.Days {
			for range sheet.Periods {
				signatures.Add(col.New(periodUnits).WithStyle(cellBorder))
			}
		}
		m.AddRows(signatures)
	}

	m.AddRows(
		spacer(6),
		row.New(20).Add(
			col.New(grid/2),
			col.New(grid-grid/2).Add(
				text.New("Signature du formateur", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center, Top: 2}),
			).WithStyle(cellBorder),
		),
	)
	return generate(ctx, m, sheet.FileName)
}

// RenderCertificates draws one certificate per page, or a single notice page
// when nobody is enrolled.
func (r *MarotoRenderer) RenderCertificates(ctx context.Context, set documents.CertificateSet) ([]byte, error) {
	m := r.newDocument(orientation.Vertical, 0)
	if set.Empty {
		m.AddPages(page.New().Add(
			spacer(40),
			text.NewRow(10, set.EmptyMessage, props.Text{Size: 12, Align: align.Center}),
		))
		return generate(ctx, m, set.FileName)
	}
	for _, cert := range set.Certificates {
		m.AddPages(page.New().Add(certificatePage(set, cert)...))
	}
	return generate(ctx, m, set.FileName)
}

func certificatePage(set documents.CertificateSet, cert documents.Certificate) []core.Row {
	centered := func(size float64, style fontstyle.Type) props.Text {
		return props.Text{Size: size, Style: style, Align: align.Center}
	}
	company := set.Company
	t := set.Training
	return []core.Row{
		text.NewRow(10, company.Name, props.Text{Size: 14, Style: fontstyle.Bold, Color: brandBlue}),
		text.NewRow(5, fmt.Sprintf("%s, %s %s", company.Address, company.Zip, company.City), props.Text{Size: 8}),
		text.NewRow(5, "SIRET : "+company.Siret, props.Text{Size: 8}),
		spacer(25),
		text.NewRow(14, "ATTESTATION DE FIN DE FORMATION", props.Text{Size: 18, Style: fontstyle.Bold, Align: align.Center, Color: brandBlue}),
		spacer(15),
		text.NewRow(8, fmt.Sprintf("Je soussigné, représentant de %s, atteste que :", company.Name), centered(10, fontstyle.Normal)),
		spacer(4),
		text.NewRow(12, cert.TraineeName, centered(16, fontstyle.Bold)),
		spacer(4),
		text.NewRow(8, fmt.Sprintf("salarié(e) de l'entreprise %s, a suivi la formation :", t.ClientName), centered(10, fontstyle.Normal)),
		text.NewRow(10, t.Title, centered(12, fontstyle.Bold)),
		text.NewRow(7, fmt.Sprintf("Référence : %s", t.Reference), centered(9, fontstyle.Normal)),
		text.NewRow(7, fmt.Sprintf("du %s au %s, d'une durée de %d heures, à %s.",
			utils.FormatFrenchDate(t.StartDate), utils.FormatFrenchDate(t.EndDate), t.Hours, t.Location), centered(10, fontstyle.Normal)),
		text.NewRow(7, "Formateur : "+t.Trainer, centered(9, fontstyle.Italic)),
		spacer(25),
		row.New(8).Add(
			col.New(6),
			textCol(6, fmt.Sprintf("Fait à %s, le %s", cert.IssuedAt, utils.FormatFrenchDate(cert.IssuedOn)), props.Text{Size: 10, Align: align.Center}),
		),
		row.New(30).Add(
			col.New(6),
			textCol(6, "Signature et cachet de l'organisme", props.Text{Size: 8, Align: align.Center, Top: 2, Color: mutedGray}).WithStyle(cellBorder),
		),
	}
}
