package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sequemusic/backend/internal/domain"
)

type pgStreamRecordRepository struct {
	db *sqlx.DB
}

func NewStreamRecordRepository(db *sqlx.DB) domain.StreamRecordRepository {
	return &pgStreamRecordRepository{db: db}
}

func (r *pgStreamRecordRepository) Create(ctx context.Context, record *domain.StreamRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	query := `
        INSERT INTO stream_records (id, platform, play_count, link, track_id, created_at)
        VALUES (:id, :platform, :play_count, :link, :track_id, :created_at)`
	_, err := r.db.NamedExecContext(ctx, query, record)
	return err
}

func (r *pgStreamRecordRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.StreamRecord, error) {
	record := &domain.StreamRecord{}
	err := r.db.GetContext(ctx, record, `SELECT * FROM stream_records WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, domain.ErrStreamRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *pgStreamRecordRepository) ListByTrack(ctx context.Context, trackID uuid.UUID) ([]domain.StreamRecord, error) {
	records := []domain.StreamRecord{}
	query := `SELECT * FROM stream_records WHERE track_id = $1`
	if err := r.db.SelectContext(ctx, &records, query, trackID); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *pgStreamRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM stream_records WHERE id = $1`, id)
	if err != nil {
		return mapConflict(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrStreamRecordNotFound
	}
	return nil
}
