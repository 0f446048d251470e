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

const trainingColumns = `training_id, reference, title, category, duration_days, price_ht, description, created_at, last_updated_at`

type PgxTrainingRepository struct {
	BaseRepository
}

func newPgxTrainingRepository(pool *pgxpool.Pool) portsrepo.TrainingRepositoryFacade {
	return &PgxTrainingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TrainingRepositoryFacade = (*PgxTrainingRepository)(nil)

func scanTraining(row pgx.Row) (models.Training, error) {
	var m models.Training
	err := row.Scan(
		&m.TrainingID,
		&m.Reference,
		&m.Title,
		&m.Category,
		&m.DurationDays,
		&m.PriceHT,
		&m.Description,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func trainingArgs(m models.Training) []any {
	return []any{m.TrainingID, m.Reference, m.Title, m.Category, m.DurationDays, m.PriceHT, m.Description, m.CreatedAt, m.LastUpdatedAt}
}

const insertTrainingSQL = `INSERT INTO trainings (` + trainingColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (r *PgxTrainingRepository) SaveTraining(ctx context.Context, training domain.TrainingModule) error {
	if _, err := r.Pool.Exec(ctx, insertTrainingSQL, trainingArgs(models.ToModelTraining(training))...); err != nil {
		return storeError(tableTrainings, err, fmt.Sprintf("failed to save training %s", training.TrainingID))
	}
	return nil
}

func (r *PgxTrainingRepository) findOne(ctx context.Context, where string, arg any, what string) (*domain.TrainingModule, error) {
	query := `SELECT ` + trainingColumns + ` FROM trainings WHERE ` + where + ` ORDER BY reference LIMIT 1`
	m, err := scanTraining(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		return nil, notFoundOr(tableTrainings, err, what)
	}
	training := m.ToDomain()
	return &training, nil
}

func (r *PgxTrainingRepository) FindTrainingByID(ctx context.Context, trainingID string) (*domain.TrainingModule, error) {
	return r.findOne(ctx, "training_id = $1", trainingID, fmt.Sprintf("training %s", trainingID))
}

func (r *PgxTrainingRepository) FindTrainingByTitle(ctx context.Context, title string) (*domain.TrainingModule, error) {
	return r.findOne(ctx, "title = $1", title, fmt.Sprintf("training titled %q", title))
}

func (r *PgxTrainingRepository) ListTrainings(ctx context.Context) ([]domain.TrainingModule, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+trainingColumns+` FROM trainings ORDER BY reference, training_id`)
	if err != nil {
		return nil, storeError(tableTrainings, err, "failed to query trainings")
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Training, error) {
		return scanTraining(row)
	})
	if err != nil {
		return nil, storeError(tableTrainings, err, "failed to scan trainings")
	}
	trainings := make([]domain.TrainingModule, len(ms))
	for i, m := range ms {
		trainings[i] = m.ToDomain()
	}
	return trainings, nil
}

func (r *PgxTrainingRepository) UpdateTraining(ctx context.Context, training domain.TrainingModule) error {
	m := models.ToModelTraining(training)
	query := `
		UPDATE trainings SET
			reference = $2, title = $3, category = $4, duration_days = $5, price_ht = $6,
			description = $7, last_updated_at = $8
		WHERE training_id = $1`
	tag, err := r.Pool.Exec(ctx, query, m.TrainingID, m.Reference, m.Title, m.Category, m.DurationDays, m.PriceHT, m.Description, m.LastUpdatedAt)
	if err != nil {
		return storeError(tableTrainings, err, fmt.Sprintf("failed to update training %s", training.TrainingID))
	}
	return requireRow(tag, fmt.Sprintf("training %s", training.TrainingID))
}

func (r *PgxTrainingRepository) DeleteTraining(ctx context.Context, trainingID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM trainings WHERE training_id = $1`, trainingID)
	if err != nil {
		return storeError(tableTrainings, err, fmt.Sprintf("failed to delete training %s", trainingID))
	}
	return requireRow(tag, fmt.Sprintf("training %s", trainingID))
}
