package dto

import "github.com/SscSPs/oris_formation_app/internal/core/domain"

// UpdateSettingsRequest is a merge-write: only fields present in the body are changed.
type UpdateSettingsRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1"`
	Address *string `json:"address"`
	Zip     *string `json:"zip"`
	City    *string `json:"city"`
	Siret   *string `json:"siret"`
	VAT     *string `json:"vat"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" binding:"omitempty,email"`
	IBAN    *string `json:"iban"`
	BIC     *string `json:"bic"`
	LogoURL *string `json:"logoUrl"`
}

// ToPatch converts the request into a domain merge patch.
func (r UpdateSettingsRequest) ToPatch() domain.CompanySettingsPatch {
	return domain.CompanySettingsPatch{
		Name:    r.Name,
		Address: r.Address,
		Zip:     r.Zip,
		City:    r.City,
		Siret:   r.Siret,
		VAT:     r.VAT,
		Phone:   r.Phone,
		Email:   r.Email,
		IBAN:    r.IBAN,
		BIC:     r.BIC,
		LogoURL: r.LogoURL,
	}
}

// SettingsResponse defines the data returned for the company settings.
type SettingsResponse struct {
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
	LogoURL string `json:"logoUrl,omitempty"`
}

func ToSettingsResponse(s *domain.CompanySettings) SettingsResponse {
	return SettingsResponse{
		Name:    s.Name,
		Address: s.Address,
		Zip:     s.Zip,
		City:    s.City,
		Siret:   s.Siret,
		VAT:     s.VAT,
		Phone:   s.Phone,
		Email:   s.Email,
		IBAN:    s.IBAN,
		BIC:     s.BIC,
		LogoURL: s.LogoURL,
	}
}
