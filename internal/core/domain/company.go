package domain

// CompanySettings is the singleton identity printed on every document.
type CompanySettings struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Zip     string `json:"zip"`
	City    string `json:"city"`
	Siret   string `json:"siret"`
	VAT     string `json:"vat"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	IBAN    string `json:"iban"`
	BIC     string `json:"bic"`
	LogoURL string `json:"logoUrl,omitempty"` // data URL or plain base64
	AuditFields
}

// DefaultCompanySettings is written the first time settings are read.
func DefaultCompanySettings() CompanySettings {
	return CompanySettings{
		Name:    "ORIS FORMATION",
		Address: "12 Rue de l'Énergie",
		Zip:     "69000",
		City:    "Lyon",
		Siret:   "123 456 789 00012",
		VAT:     "FR 12 123456789",
		Phone:   "04 78 00 00 00",
		Email:   "contact@oris-formation.fr",
		IBAN:    "FR76 1234 5678 9012 3456 7890 123",
		BIC:     "ORISFR2L",
	}
}

// CompanySettingsPatch carries the fields of a merge-write; nil fields are left untouched.
type CompanySettingsPatch struct {
	Name    *string
	Address *string
	Zip     *string
	City    *string
	Siret   *string
	VAT     *string
	Phone   *string
	Email   *string
	IBAN    *string
	BIC     *string
	LogoURL *string
}

// Merge applies the non-nil fields of p onto s.
func (s *CompanySettings) Merge(p CompanySettingsPatch) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&s.Name, p.Name)
	set(&s.Address, p.Address)
	set(&s.Zip, p.Zip)
	set(&s.City, p.City)
	set(&s.Siret, p.Siret)
	set(&s.VAT, p.VAT)
	set(&s.Phone, p.Phone)
	set(&s.Email, p.Email)
	set(&s.IBAN, p.IBAN)
	set(&s.BIC, p.BIC)
	set(&s.LogoURL, p.LogoURL)
}
