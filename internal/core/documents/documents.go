// Package documents projects stored records into print layouts. Layouts are plain
// data: the HTTP layer returns them as JSON and the PDF adapter draws them on A4 pages.
package documents

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

// Kind identifies a printable document.
type Kind string

const (
	KindQuote       Kind = "quote"
	KindInvoice     Kind = "invoice"
	KindCreditNote  Kind = "credit_note"
	KindAttendance  Kind = "attendance"
	KindCertificate Kind = "certificate"
)

// MinAttendanceRows is the default number of rows on an attendance sheet.
const MinAttendanceRows = 10

// HoursPerDay converts a training's duration in days into hours.
const HoursPerDay = 7

// Party is a printable address block.
type Party struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Zip     string `json:"zip"`
	City    string `json:"city"`
	VAT     string `json:"vat,omitempty"`
	Contact string `json:"contact,omitempty"`
	Known   bool   `json:"known"`
}

// ZipCity joins zip code and city.
func (p Party) ZipCity() string {
	return strings.TrimSpace(p.Zip + " " + p.City)
}

func clientParty(c *domain.Client) Party {
	if c == nil {
		return Party{Name: domain.UnknownClientName}
	}
	return Party{
		Name:    c.Name,
		Address: c.Address,
		Zip:     c.Zip,
		City:    c.City,
		VAT:     c.VATNumber,
		Contact: c.ContactName,
		Known:   true,
	}
}

// Issuer is the company block printed in headers and legal footers.
type Issuer struct {
	domain.CompanySettings
}

// LegalLines returns the legal footer of billing documents.
func (i Issuer) LegalLines() []string {
	return []string{
		fmt.Sprintf("SIRET : %s - TVA Intracommunautaire : %s", i.Siret, i.VAT),
		fmt.Sprintf("Siège social : %s, %s %s", i.Address, i.Zip, i.City),
		"Déclaration d'activité enregistrée auprès du préfet de région. Cet enregistrement ne vaut pas agrément de l'État.",
	}
}

// BillingLine is a row of the items table.
type BillingLine struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	VATRate     int             `json:"vatRate"`
	AmountHT    decimal.Decimal `json:"amountHt"`
}

// BillingSheet is the layout of a quote, invoice or credit note.
type BillingSheet struct {
	Kind        Kind          `json:"kind"`
	Title       string        `json:"title"`
	Number      string        `json:"number"`
	IssueDate   time.Time     `json:"issueDate"`
	ValidUntil  *time.Time    `json:"validUntil,omitempty"`
	Cancels     string        `json:"cancels,omitempty"`
	Issuer      Issuer        `json:"issuer"`
	BillTo      Party         `json:"billTo"`
	Lines       []BillingLine `json:"lines"`
	Totals      domain.Totals `json:"totals"`
	TotalLabel  string        `json:"totalLabel"`
	Notes       string        `json:"notes,omitempty"`
	ShowBank    bool          `json:"showBank"`
	ShowConsent bool          `json:"showConsent"`
	Footer      []string      `json:"footer"`
	FileName    string        `json:"fileName"`
}

func billingLines(items []domain.QuoteLine) []BillingLine {
	lines := make([]BillingLine, len(items))
	for i, it := range items {
		lines[i] = BillingLine{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			VATRate:     it.VATRate,
			AmountHT:    it.AmountHT(),
		}
	}
	return lines
}

// QuoteSheet lays out a quote. client may be nil when the reference dangles.
func QuoteSheet(q domain.Quote, client *domain.Client, company domain.CompanySettings) BillingSheet {
	validUntil := q.ValidUntil
	issuer := Issuer{company}
	return BillingSheet{
		Kind:        KindQuote,
		Title:       "DEVIS",
		Number:      q.Number,
		IssueDate:   q.Date,
		ValidUntil:  &validUntil,
		Issuer:      issuer,
		BillTo:      clientParty(client),
		Lines:       billingLines(q.Items),
		Totals:      q.Totals,
		TotalLabel:  "Net à payer",
		Notes:       q.Notes,
		ShowConsent: true,
		Footer:      issuer.LegalLines(),
		FileName:    fmt.Sprintf("Devis-%s.pdf", q.Number),
	}
}

// InvoiceSheet lays out an invoice or, for credit notes, the "AVOIR" variant.
func InvoiceSheet(inv domain.Invoice, client *domain.Client, company domain.CompanySettings) BillingSheet {
	issuer := Issuer{company}
	sheet := BillingSheet{
		Kind:       KindInvoice,
		Title:      "FACTURE",
		Number:     inv.Number,
		IssueDate:  inv.Date,
		Issuer:     issuer,
		BillTo:     clientParty(client),
		Lines:      billingLines(inv.Items),
		Totals:     inv.Totals,
		TotalLabel: "Net à payer",
		ShowBank:   true,
		Footer:     issuer.LegalLines(),
		FileName:   fmt.Sprintf("Facture-%s.pdf", inv.Number),
	}
	if inv.IsCreditNote() {
		sheet.Kind = KindCreditNote
		sheet.Title = "AVOIR"
		sheet.TotalLabel = "Net à déduire"
		sheet.FileName = fmt.Sprintf("Avoir-%s.pdf", inv.Number)
		if inv.OriginalInvoiceNumber != nil {
			sheet.Cancels = "Annule la facture N° " + *inv.OriginalInvoiceNumber
		}
	}
	return sheet
}

// TrainingInfo is the training block shared by session documents.
type TrainingInfo struct {
	Reference  string    `json:"reference"`
	Title      string    `json:"title"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Hours      int       `json:"hours"`
	Trainer    string    `json:"trainer"`
	Location   string    `json:"location"`
	ClientName string    `json:"clientName"`
}

func trainingInfo(s domain.Session, t domain.TrainingModule, client *domain.Client) TrainingInfo {
	return TrainingInfo{
		Reference:  t.Reference,
		Title:      t.Title,
		StartDate:  s.StartDate,
		EndDate:    s.EndDate,
		Hours:      t.DurationDays * HoursPerDay,
		Trainer:    s.Trainer,
		Location:   s.Location,
		ClientName: clientParty(client).Name,
	}
}

// AttendanceRow is a signature row. Blank rows have an empty name.
type AttendanceRow struct {
	TraineeName string `json:"traineeName"`
	Blank       bool   `json:"blank"`
}

// AttendanceSheet has one day column per calendar day, each split into morning and afternoon.
type AttendanceSheet struct {
	Company  domain.CompanySettings `json:"company"`
	Training TrainingInfo           `json:"training"`
	Days     []time.Time            `json:"days"`
	Periods  []string               `json:"periods"`
	Rows     []AttendanceRow        `json:"rows"`
	FileName string                 `json:"fileName"`
}

// NewAttendanceSheet lays out the attendance sheet of a session. Trainee rows are
// padded with blank rows up to minRows.
func NewAttendanceSheet(s domain.Session, t domain.TrainingModule, client *domain.Client, company domain.CompanySettings, minRows int) AttendanceSheet {
	rows := make([]AttendanceRow, 0, max(len(s.Trainees), minRows))
	for _, tr := range s.Trainees {
		rows = append(rows, AttendanceRow{TraineeName: tr.Name})
	}
	for len(rows) < minRows {
		rows = append(rows, AttendanceRow{Blank: true})
	}
	return AttendanceSheet{
		Company:  company,
		Training: trainingInfo(s, t, client),
		Days:     domain.SessionDays(s.StartDate, s.EndDate),
		Periods:  []string{"Matin", "Après-midi"},
		Rows:     rows,
		FileName: fmt.Sprintf("Emargement-%s.pdf", t.Reference),
	}
}

// Certificate is one end-of-training certificate page.
type Certificate struct {
	TraineeName string    `json:"traineeName"`
	IssuedAt    string    `json:"issuedAt"` // city
	IssuedOn    time.Time `json:"issuedOn"`
}

// CertificateSet holds one certificate per enrolled trainee. Empty is set instead
// of producing zero pages when nobody is enrolled.
type CertificateSet struct {
	Company      domain.CompanySettings `json:"company"`
	Training     TrainingInfo           `json:"training"`
	Certificates []Certificate          `json:"certificates"`
	Empty        bool                   `json:"empty"`
	EmptyMessage string                 `json:"emptyMessage,omitempty"`
	FileName     string                 `json:"fileName"`
}

// NewCertificateSet lays out the certificates of a session, dated on its last day.
func NewCertificateSet(s domain.Session, t domain.TrainingModule, client *domain.Client, company domain.CompanySettings) CertificateSet {
	set := CertificateSet{
		Company:      company,
		Training:     trainingInfo(s, t, client),
		Certificates: make([]Certificate, 0, len(s.Trainees)),
		FileName:     fmt.Sprintf("Attestations-%s.pdf", t.Reference),
	}
	for _, tr := range s.Trainees {
		set.Certificates = append(set.Certificates, Certificate{
			TraineeName: tr.Name,
			IssuedAt:    company.City,
			IssuedOn:    s.EndDate,
		})
	}
	if len(set.Certificates) == 0 {
		set.Empty = true
		set.EmptyMessage = "Aucun stagiaire enregistré pour cette session."
	}
	return set
}
