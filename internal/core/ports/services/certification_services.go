package services

import (
	"context"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	"github.com/SscSPs/oris_formation_app/internal/dto"
)

// CertificationSvcFacade manages trainee certifications.
type CertificationSvcFacade interface {
	CreateCertification(ctx context.Context, req dto.CreateCertificationRequest) (*domain.Certification, error)
	ListCertifications(ctx context.Context) ([]domain.Certification, error)
	DeleteCertification(ctx context.Context, certificationID string) error
}
