package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
	"github.com/SscSPs/oris_formation_app/internal/models"
)

type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

const upsertSettingsSQL = `
	INSERT INTO company_settings (settings_id, name, address, zip, city, siret, vat, phone, email, iban, bic, logo_url, created_at, last_updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	ON CONFLICT (settings_id) DO UPDATE SET
		name = EXCLUDED.name,
		address = EXCLUDED.address,
		zip = EXCLUDED.zip,
		city = EXCLUDED.city,
		siret = EXCLUDED.siret,
		vat = EXCLUDED.vat,
		phone = EXCLUDED.phone,
		email = EXCLUDED.email,
		iban = EXCLUDED.iban,
		bic = EXCLUDED.bic,
		logo_url = EXCLUDED.logo_url,
		last_updated_at = EXCLUDED.last_updated_at`

func settingsArgs(m models.CompanySettings) []any {
	return []any{
		m.SettingsID, m.Name, m.Address, m.Zip, m.City, m.Siret, m.VAT, m.Phone, m.Email,
		m.IBAN, m.BIC, m.LogoURL, m.CreatedAt, m.LastUpdatedAt,
	}
}

func (r *PgxSettingsRepository) FindSettings(ctx context.Context) (*domain.CompanySettings, error) {
	query := `
		SELECT name, address, zip, city, siret, vat, phone, email, iban, bic, logo_url, created_at, last_updated_at
		FROM company_settings WHERE settings_id = $1`
	var m models.CompanySettings
	err := r.Pool.QueryRow(ctx, query, models.SettingsRowID).Scan(
		&m.Name, &m.Address, &m.Zip, &m.City, &m.Siret, &m.VAT, &m.Phone, &m.Email,
		&m.IBAN, &m.BIC, &m.LogoURL, &m.CreatedAt, &m.LastUpdatedAt,
	)
	if err != nil {
		return nil, notFoundOr(tableSettings, err, "company settings")
	}
	settings := m.ToDomain()
	return &settings, nil
}

func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.CompanySettings) error {
	if _, err := r.Pool.Exec(ctx, upsertSettingsSQL, settingsArgs(models.ToModelSettings(settings))...); err != nil {
		return storeError(tableSettings, err, "failed to save company settings")
	}
	return nil
}
