package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SscSPs/oris_formation_app/internal/apperrors"
	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/oris_formation_app/internal/core/ports/services"
	"github.com/SscSPs/oris_formation_app/internal/dto"
)

type certificationService struct {
	BaseService
	certRepo portsrepo.CertificationRepositoryFacade
}

// NewCertificationService creates the certification tracking service.
func NewCertificationService(certRepo portsrepo.CertificationRepositoryFacade, options ...Option) portssvc.CertificationSvcFacade {
	svc := &certificationService{certRepo: certRepo}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.CertificationSvcFacade = (*certificationService)(nil)

func (s *certificationService) CreateCertification(ctx context.Context, req dto.CreateCertificationRequest) (*domain.Certification, error) {
	expiry, err := domain.ParseDay(req.ExpiryDate)
	if err != nil {
		return nil, fmt.Errorf("%w: expiryDate must be a YYYY-MM-DD date", apperrors.ErrValidation)
	}
	cert := domain.Certification{
		CertificationID: uuid.NewString(),
		TraineeName:     req.TraineeName,
		CompanyName:     req.CompanyName,
		Level:           req.Level,
		ExpiryDate:      expiry,
		AuditFields:     auditNow(s.Now()),
	}
	if err := cert.Validate(); err != nil {
		return nil, err
	}
	if err := s.certRepo.SaveCertification(ctx, cert); err != nil {
		s.LogOutcome(ctx, err, "Failed to save certification", slog.String("trainee", cert.TraineeName))
		return nil, fmt.Errorf("failed to create certification: %w", err)
	}
	return &cert, nil
}

func (s *certificationService) ListCertifications(ctx context.Context) ([]domain.Certification, error) {
	certs, err := s.certRepo.ListCertifications(ctx)
	if err != nil {
		s.LogOutcome(ctx, err, "Failed to list certifications")
		return nil, fmt.Errorf("failed to list certifications: %w", err)
	}
	if certs == nil {
		return []domain.Certification{}, nil
	}
	return certs, nil
}

func (s *certificationService) DeleteCertification(ctx context.Context, certificationID string) error {
	if err := s.certRepo.DeleteCertification(ctx, certificationID); err != nil {
		s.LogOutcome(ctx, err, "Failed to delete certification", slog.String("certification_id", certificationID))
		return fmt.Errorf("failed to delete certification %s: %w", certificationID, err)
	}
	return nil
}
