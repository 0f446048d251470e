package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

// idMap hands out a fresh uuid per demo key, so repeated seeds never clash with
// previously stored records.
type idMap map[string]string

func (m idMap) id(key string) string {
	if v, ok := m[key]; ok {
		return v
	}
	v := uuid.NewString()
	m[key] = v
	return v
}

func (m idMap) ref(key string) *string {
	v := m.id(key)
	return &v
}

func mustDay(s string) time.Time {
	d, err := domain.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func demoLine(ids idMap, key, description string, quantity, unitPrice int64) domain.QuoteLine {
	return domain.QuoteLine{
		LineID:      ids.id(key),
		Description: description,
		Quantity:    decimal.NewFromInt(quantity),
		UnitPrice:   decimal.NewFromInt(unitPrice),
		VATRate:     domain.DefaultVATRate,
	}
}

func buildDemoData(now time.Time) domain.DemoData {
	ids := idMap{}
	audit := auditNow(now)

	clients := []domain.Client{
		{
			ClientID:    ids.id("c1"),
			Name:        "IRTEC Réseaux",
			Siret:       "987 654 321 00045",
			VATNumber:   "FR 88 987654321",
			Address:     "45 Avenue des Transformateurs",
			City:        "Grenoble",
			Zip:         "38000",
			ContactName: "Jean Dupont",
			Email:       "j.dupont@irtec-reseaux.fr",
			Phone:       "06 12 34 56 78",
			Status:      domain.ClientActive,
			AuditFields: audit,
		},
		{
			ClientID:    ids.id("c2"),
			Name:        "ElecPro Solutions",
			Siret:       "456 123 789 00011",
			VATNumber:   "FR 44 456123789",
			Address:     "12 ZI Nord",
			City:        "Villeurbanne",
			Zip:         "69100",
			ContactName: "Marie Martin",
			Email:       "m.martin@elecpro.com",
			Phone:       "04 72 00 00 00",
			Status:      domain.ClientProspect,
			AuditFields: audit,
		},
	}

	trainings := []domain.TrainingModule{
		{
			TrainingID:   ids.id("t1"),
			Reference:    "HAB-B2V",
			Title:        "Habilitation Électrique BR/B2V/BC",
			Category:     domain.CategoryHabilitation,
			DurationDays: 3,
			PriceHT:      decimal.NewFromInt(850),
			Description:  "Habilitation pour chargé d'intervention et chargé de consignation en basse tension.",
			AuditFields:  audit,
		},
		{
			TrainingID:   ids.id("t2"),
			Reference:    "TST-BAT",
			Title:        "TST Module de Base (Batteries)",
			Category:     domain.CategoryTST,
			DurationDays: 2,
			PriceHT:      decimal.NewFromInt(1200),
			Description:  "Travaux Sous Tension sur batteries d'accumulateurs stationnaires.",
			AuditFields:  audit,
		},
		{
			TrainingID:   ids.id("t3"),
			Reference:    "RES-HTA",
			Title:        "Confection d'accessoires HTA",
			Category:     domain.CategoryReseaux,
			DurationDays: 4,
			PriceHT:      decimal.NewFromInt(1600),
			Description:  "Raccordement de câbles HTA synthétiques (jonctions, extrémités).",
			AuditFields:  audit,
		},
	}

	quotes := []domain.Quote{
		{
			QuoteID:    ids.id("q1"),
			Number:     "DEV-2024-042",
			ClientID:   ids.id("c1"),
			Date:       mustDay("2024-05-10"),
			ValidUntil: mustDay("2024-06-10"),
			Status:     domain.QuoteSent,
			Items: []domain.QuoteLine{
				demoLine(ids, "qi1", "Formation Habilitation BR/B2V/BC (6 stagiaires)", 1, 2500),
				demoLine(ids, "qi2", "Frais de déplacement (Forfait)", 1, 150),
			},
			Notes:       "Formation prévue sur site client.",
			AuditFields: audit,
		},
		{
			QuoteID:    ids.id("q2"),
			Number:     "DEV-2024-045",
			ClientID:   ids.id("c2"),
			Date:       mustDay("2024-05-12"),
			ValidUntil: mustDay("2024-06-12"),
			Status:     domain.QuoteStatusDraft,
			Items: []domain.QuoteLine{
				demoLine(ids, "qi3", "Formation TST Module Base", 2, 1200),
			},
			AuditFields: audit,
		},
	}
	for i := range quotes {
		quotes[i].Totals = domain.ComputeTotals(quotes[i].Items)
	}

	invoices := []domain.Invoice{
		{
			InvoiceID: ids.id("i1"),
			Number:    "FAC-2024-001",
			Type:      domain.TypeInvoice,
			ClientID:  ids.id("c1"),
			Date:      mustDay("2024-04-01"),
			DueDate:   mustDay("2024-05-01"),
			Status:    domain.InvoicePaid,
			Items: []domain.QuoteLine{
				demoLine(ids, "ii1", "Acompte 30% - Formation HTA", 1, 600),
			},
			AuditFields: audit,
		},
		{
			InvoiceID: ids.id("i2"),
			Number:    "FAC-2024-002",
			Type:      domain.TypeInvoice,
			ClientID:  ids.id("c2"),
			Date:      mustDay("2024-04-15"),
			DueDate:   mustDay("2024-05-15"),
			Status:    domain.InvoiceOverdue,
			Items: []domain.QuoteLine{
				demoLine(ids, "ii2", "Formation TST", 1, 1200),
			},
			AuditFields: audit,
		},
	}
	for i := range invoices {
		invoices[i].Totals = domain.ComputeTotals(invoices[i].Items)
	}

	sessions := []domain.Session{
		{
			SessionID:     ids.id("s1"),
			TrainingID:    ids.id("t1"),
			ClientID:      ids.id("c1"),
			StartDate:     mustDay("2024-06-10"),
			EndDate:       mustDay("2024-06-12"),
			Trainer:       "Philippe Formateur",
			Location:      "Grenoble (Site Client)",
			TraineesCount: 6,
			Trainees: []domain.Trainee{
				{TraineeID: ids.id("tr1"), Name: "Thomas Durand"},
				{TraineeID: ids.id("tr2"), Name: "Sophie Martin"},
				{TraineeID: ids.id("tr3"), Name: "Lucas Bernard"},
			},
			AuditFields: audit,
		},
	}

	certifications := []domain.Certification{
		{CertificationID: ids.id("cert1"), TraineeName: "Marc Voisin", CompanyName: "IRTEC Réseaux", Level: "B2V", ExpiryDate: mustDay("2024-06-15"), AuditFields: audit},
		{CertificationID: ids.id("cert2"), TraineeName: "Julie Dubois", CompanyName: "ElecPro Solutions", Level: "BC", ExpiryDate: mustDay("2024-07-01"), AuditFields: audit},
		{CertificationID: ids.id("cert3"), TraineeName: "Paul Richard", CompanyName: "IRTEC Réseaux", Level: "TST-BAT", ExpiryDate: mustDay("2024-05-20"), AuditFields: audit},
	}

	return domain.DemoData{
		Clients:        clients,
		Trainings:      trainings,
		Quotes:         quotes,
		Invoices:       invoices,
		Sessions:       sessions,
		Certifications: certifications,
		Settings:       domain.DefaultCompanySettings(),
		Sequences:      domain.SequenceFloors(quotes, invoices),
	}
}
