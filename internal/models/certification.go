package models

import (
	"time"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

// Certification is a row of the certifications table.
type Certification struct {
	CertificationID string    `db:"certification_id"`
	TraineeName     string    `db:"trainee_name"`
	CompanyName     string    `db:"company_name"`
	Level           string    `db:"level"`
	ExpiryDate      time.Time `db:"expiry_date"`
	AuditFields
}

func ToModelCertification(c domain.Certification) Certification {
	return Certification{
		CertificationID: c.CertificationID,
		TraineeName:     c.TraineeName,
		CompanyName:     c.CompanyName,
		Level:           c.Level,
		ExpiryDate:      c.ExpiryDate,
		AuditFields:     toModelAudit(c.AuditFields),
	}
}

func (m Certification) ToDomain() domain.Certification {
	return domain.Certification{
		CertificationID: m.CertificationID,
		TraineeName:     m.TraineeName,
		CompanyName:     m.CompanyName,
		Level:           m.Level,
		ExpiryDate:      domain.Day(m.ExpiryDate),
		AuditFields:     m.AuditFields.toDomain(),
	}
}
