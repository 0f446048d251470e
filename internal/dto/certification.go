package dto

import "github.com/SscSPs/oris_formation_app/internal/core/domain"

// CreateCertificationRequest records a certification held by a trainee.
type CreateCertificationRequest struct {
	TraineeName string `json:"traineeName" binding:"required"`
	CompanyName string `json:"companyName"`
	Level       string `json:"level" binding:"required"`
	ExpiryDate  string `json:"expiryDate" binding:"required,datetime=2006-01-02"`
}

type CertificationResponse struct {
	ID          string `json:"id"`
	TraineeName string `json:"traineeName"`
	CompanyName string `json:"companyName"`
	Level       string `json:"level"`
	ExpiryDate  string `json:"expiryDate"`
}

func ToCertificationResponse(c *domain.Certification) CertificationResponse {
	return CertificationResponse{
		ID:          c.CertificationID,
		TraineeName: c.TraineeName,
		CompanyName: c.CompanyName,
		Level:       c.Level,
		ExpiryDate:  FormatDay(c.ExpiryDate),
	}
}

func ToListCertificationResponse(certs []domain.Certification) []CertificationResponse {
	res := make([]CertificationResponse, len(certs))
	for i := range certs {
		res[i] = ToCertificationResponse(&certs[i])
	}
	return res
}
