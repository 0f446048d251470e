package models

import "github.com/SscSPs/oris_formation_app/internal/core/domain"

// SettingsRowID is the key of the single company_settings row.
const SettingsRowID = "global"

// CompanySettings is the single row of the company_settings table.
type CompanySettings struct {
	SettingsID string `db:"settings_id"`
	Name       string `db:"name"`
	Address    string `db:"address"`
	Zip        string `db:"zip"`
	City       string `db:"city"`
	Siret      string `db:"siret"`
	VAT        string `db:"vat"`
	Phone      string `db:"phone"`
	Email      string `db:"email"`
	IBAN       string `db:"iban"`
	BIC        string `db:"bic"`
	LogoURL    string `db:"logo_url"`
	AuditFields
}

func ToModelSettings(s domain.CompanySettings) CompanySettings {
	return CompanySettings{
		SettingsID:  SettingsRowID,
		Name:        s.Name,
		Address:     s.Address,
		Zip:         s.Zip,
		City:        s.City,
		Siret:       s.Siret,
		VAT:         s.VAT,
		Phone:       s.Phone,
		Email:       s.Email,
		IBAN:        s.IBAN,
		BIC:         s.BIC,
		LogoURL:     s.LogoURL,
		AuditFields: toModelAudit(s.AuditFields),
	}
}

func (m CompanySettings) ToDomain() domain.CompanySettings {
	return domain.CompanySettings{
		Name:        m.Name,
		Address:     m.Address,
		Zip:         m.Zip,
		City:        m.City,
		Siret:       m.Siret,
		VAT:         m.VAT,
		Phone:       m.Phone,
		Email:       m.Email,
		IBAN:        m.IBAN,
		BIC:         m.BIC,
		LogoURL:     m.LogoURL,
		AuditFields: m.AuditFields.toDomain(),
	}
}
