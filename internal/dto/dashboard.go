package dto

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

type MonthlyRevenueResponse struct {
	Month   string          `json:"name"`
	Revenue decimal.Decimal `json:"ca"`
}

type CertificationAlertResponse struct {
	CertificationResponse
	DaysLeft int  `json:"daysLeft"`
	Expired  bool `json:"expired"`
}

// DashboardResponse represents the home page figures.
type DashboardResponse struct {
	Year                int                          `json:"year"`
	CurrentYearRevenue  decimal.Decimal              `json:"currentYearRevenue"`
	PreviousYearRevenue decimal.Decimal              `json:"previousYearRevenue"`
	TrendLabel          string                       `json:"trendLabel"`
	TrendDirection      string                       `json:"trendDirection"`
	Monthly             []MonthlyRevenueResponse     `json:"monthly"`
	TotalPaidGlobal     decimal.Decimal              `json:"totalPaidGlobal"`
	PendingRevenue      decimal.Decimal              `json:"pendingRevenue"`
	OverdueRevenue      decimal.Decimal              `json:"overdueRevenue"`
	PendingQuotes       int                          `json:"pendingQuotes"`
	PlannedSessions     int                          `json:"plannedSessions"`
	CertificationAlerts []CertificationAlertResponse `json:"certificationAlerts"`
}

func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	monthly := make([]MonthlyRevenueResponse, len(d.Monthly))
	for i, m := range d.Monthly {
		monthly[i] = MonthlyRevenueResponse{Month: m.Month, Revenue: m.Revenue}
	}
	alerts := make([]CertificationAlertResponse, len(d.CertificationAlerts))
	for i := range d.CertificationAlerts {
		a := d.CertificationAlerts[i]
		alerts[i] = CertificationAlertResponse{
			CertificationResponse: ToCertificationResponse(&a.Certification),
			DaysLeft:              a.DaysLeft,
			Expired:               a.Expired,
		}
	}
	return DashboardResponse{
		Year:                d.Year,
		CurrentYearRevenue:  d.CurrentYear,
		PreviousYearRevenue: d.PreviousYear,
		TrendLabel:          d.TrendLabel,
		TrendDirection:      string(d.TrendDirection),
		Monthly:             monthly,
		TotalPaidGlobal:     d.TotalPaidGlobal,
		PendingRevenue:      d.PendingInvoices,
		OverdueRevenue:      d.OverdueInvoices,
		PendingQuotes:       d.PendingQuotes,
		PlannedSessions:     d.PlannedSessions,
		CertificationAlerts: alerts,
	}
}

// SeedResponse reports how many demo documents were written.
type SeedResponse struct {
	Clients        int `json:"clients"`
	Trainings      int `json:"trainings"`
	Quotes         int `json:"quotes"`
	Invoices       int `json:"invoices"`
	Sessions       int `json:"sessions"`
	Certifications int `json:"certifications"`
}
