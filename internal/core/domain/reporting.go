package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// MonthLabels are the short French month names used on the revenue chart.
var MonthLabels = [12]string{"Jan", "Fév", "Mar", "Avr", "Mai", "Juin", "Juil", "Août", "Sep", "Oct", "Nov", "Déc"}

// TrendDirection tells the dashboard how to colour the year-over-year trend.
type TrendDirection string

const (
	TrendUp      TrendDirection = "up"
	TrendDown    TrendDirection = "down"
	TrendNeutral TrendDirection = "neutral"
)

// MonthlyRevenue is one bar of the revenue chart.
type MonthlyRevenue struct {
	Month   string          `json:"name"`
	Revenue decimal.Decimal `json:"ca"`
}

// RevenueSummary aggregates paid invoices for a reference year.
type RevenueSummary struct {
	Year            int              `json:"year"`
	CurrentYear     decimal.Decimal  `json:"currentYearRevenue"`
	PreviousYear    decimal.Decimal  `json:"previousYearRevenue"`
	Monthly         []MonthlyRevenue `json:"monthly"`
	TrendLabel      string           `json:"trendLabel"`
	TrendDirection  TrendDirection   `json:"trendDirection"`
	TotalPaidGlobal decimal.Decimal  `json:"totalPaidGlobal"`
	PendingInvoices decimal.Decimal  `json:"pendingRevenue"`
	OverdueInvoices decimal.Decimal  `json:"overdueRevenue"`
}

// SignedRevenue is the HT amount an invoice contributes to revenue: negative for credit notes.
func SignedRevenue(inv Invoice) decimal.Decimal {
	if inv.IsCreditNote() {
		return inv.TotalHT.Neg()
	}
	return inv.TotalHT
}

// SummarizeRevenue folds invoices into revenue figures for year. Only paid documents count as
// revenue; pending and overdue receivables only consider plain invoices.
func SummarizeRevenue(invoices []Invoice, year int) RevenueSummary {
	sum := RevenueSummary{
		Year:            year,
		CurrentYear:     decimal.Zero,
		PreviousYear:    decimal.Zero,
		TotalPaidGlobal: decimal.Zero,
		PendingInvoices: decimal.Zero,
		OverdueInvoices: decimal.Zero,
		Monthly:         make([]MonthlyRevenue, len(MonthLabels)),
	}
	for i, label := range MonthLabels {
		sum.Monthly[i] = MonthlyRevenue{Month: label, Revenue: decimal.Zero}
	}

	for _, inv := range invoices {
		switch inv.Status {
		case InvoicePaid:
			amount := SignedRevenue(inv)
			sum.TotalPaidGlobal = sum.TotalPaidGlobal.Add(amount)
			switch inv.Date.Year() {
			case year:
				sum.CurrentYear = sum.CurrentYear.Add(amount)
				m := int(inv.Date.Month()) - 1
				sum.Monthly[m].Revenue = sum.Monthly[m].Revenue.Add(amount)
			case year - 1:
				sum.PreviousYear = sum.PreviousYear.Add(amount)
			}
		case InvoicePending:
			if !inv.IsCreditNote() {
				sum.PendingInvoices = sum.PendingInvoices.Add(inv.TotalHT)
			}
		case InvoiceOverdue:
			if !inv.IsCreditNote() {
				sum.OverdueInvoices = sum.OverdueInvoices.Add(inv.TotalHT)
			}
		}
	}

	sum.TrendLabel, sum.TrendDirection = Trend(sum.CurrentYear, sum.PreviousYear)
	return sum
}

// Trend compares current and previous year revenue.
func Trend(current, previous decimal.Decimal) (string, TrendDirection) {
	switch {
	case previous.IsPositive():
		percent := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100))
		sign := ""
		if percent.IsPositive() {
			sign = "+"
		}
		dir := TrendUp
		if percent.IsNegative() {
			dir = TrendDown
		}
		return fmt.Sprintf("%s%s%% vs N-1", sign, percent.StringFixed(0)), dir
	case current.IsPositive():
		return "Démarrage activité", TrendUp
	default:
		return "Pas de données N-1", TrendNeutral
	}
}

// CertificationAlert is a certification about to lapse.
type CertificationAlert struct {
	Certification
	DaysLeft int  `json:"daysLeft"`
	Expired  bool `json:"expired"`
}

// ExpiringCertifications returns the certifications lapsing within days of today, soonest first.
func ExpiringCertifications(certs []Certification, today time.Time, days int) []CertificationAlert {
	alerts := make([]CertificationAlert, 0)
	for _, c := range certs {
		if !c.IsExpiringWithin(today, days) {
			continue
		}
		left := c.DaysUntilExpiry(today)
		alerts = append(alerts, CertificationAlert{Certification: c, DaysLeft: left, Expired: left < 0})
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].ExpiryDate.Before(alerts[j].ExpiryDate)
	})
	return alerts
}

// Dashboard is the home-page snapshot.
type Dashboard struct {
	RevenueSummary
	PendingQuotes       int                  `json:"pendingQuotes"`
	PlannedSessions     int                  `json:"plannedSessions"`
	CertificationAlerts []CertificationAlert `json:"certificationAlerts"`
}
