package repositories

import (
	"context"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

// CertificationRepositoryFacade stores trainee certifications.
type CertificationRepositoryFacade interface {
	SaveCertification(ctx context.Context, cert domain.Certification) error

	// ListCertifications returns certifications ordered by expiry date.
	ListCertifications(ctx context.Context) ([]domain.Certification, error)

	DeleteCertification(ctx context.Context, certificationID string) error
}
