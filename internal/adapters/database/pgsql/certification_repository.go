package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
	"github.com/SscSPs/oris_formation_app/internal/models"
)

const certificationColumns = `certification_id, trainee_name, company_name, level, expiry_date, created_at, last_updated_at`

type PgxCertificationRepository struct {
	BaseRepository
}

func newPgxCertificationRepository(pool *pgxpool.Pool) portsrepo.CertificationRepositoryFacade {
	return &PgxCertificationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CertificationRepositoryFacade = (*PgxCertificationRepository)(nil)

func certificationArgs(m models.Certification) []any {
	return []any{m.CertificationID, m.TraineeName, m.CompanyName, m.Level, m.ExpiryDate, m.CreatedAt, m.LastUpdatedAt}
}

const insertCertificationSQL = `INSERT INTO certifications (` + certificationColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *PgxCertificationRepository) SaveCertification(ctx context.Context, cert domain.Certification) error {
	if _, err := r.Pool.Exec(ctx, insertCertificationSQL, certificationArgs(models.ToModelCertification(cert))...); err != nil {
		return storeError(tableCertifications, err, fmt.Sprintf("failed to save certification %s", cert.CertificationID))
	}
	return nil
}

func (r *PgxCertificationRepository) ListCertifications(ctx context.Context) ([]domain.Certification, error) {
	query := `SELECT ` + certificationColumns + ` FROM certifications ORDER BY expiry_date, certification_id`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, storeError(tableCertifications, err, "failed to query certifications")
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Certification, error) {
		var m models.Certification
		err := row.Scan(&m.CertificationID, &m.TraineeName, &m.CompanyName, &m.Level, &m.ExpiryDate, &m.CreatedAt, &m.LastUpdatedAt)
		return m, err
	})
	if err != nil {
		return nil, storeError(tableCertifications, err, "failed to scan certifications")
	}
	certs := make([]domain.Certification, len(ms))
	for i, m := range ms {
		certs[i] = m.ToDomain()
	}
	return certs, nil
}

func (r *PgxCertificationRepository) DeleteCertification(ctx context.Context, certificationID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM certifications WHERE certification_id = $1`, certificationID)
	if err != nil {
		return storeError(tableCertifications, err, fmt.Sprintf("failed to delete certification %s", certificationID))
	}
	return requireRow(tag, fmt.Sprintf("certification %s", certificationID))
}
