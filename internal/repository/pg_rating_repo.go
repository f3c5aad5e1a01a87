package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sequemusic/backend/internal/domain"
)

type pgRatingRepository struct {
	db *sqlx.DB
}

func NewRatingRepository(db *sqlx.DB) domain.RatingRepository {
	return &pgRatingRepository{db: db}
}

func (r *pgRatingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}
	if rating.RatedAt.IsZero() {
		rating.RatedAt = time.Now()
	}

	query := `
        INSERT INTO ratings (id, score, comment, rated_at, track_id, user_id)
        VALUES (:id, :score, :comment, :rated_at, :track_id, :user_id)`
	_, err := r.db.NamedExecContext(ctx, query, rating)
	return err
}

func (r *pgRatingRepository) ListByTrack(ctx context.Context, trackID uuid.UUID) ([]domain.Rating, error) {
	ratings := []domain.Rating{}
	query := `
        SELECT r.*, u.name AS user_name
        FROM ratings r
        JOIN users u ON u.id = r.user_id
        WHERE r.track_id = $1
        ORDER BY r.rated_at DESC`
	if err := r.db.SelectContext(ctx, &ratings, query, trackID); err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *pgRatingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Rating, error) {
	ratings := []domain.Rating{}
	query := `
        SELECT r.*, t.title AS track_title
        FROM ratings r
        JOIN tracks t ON t.id = r.track_id
        WHERE r.user_id = $1
        ORDER BY r.rated_at DESC`
	if err := r.db.SelectContext(ctx, &ratings, query, userID); err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *pgRatingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rating, error) {
	rating := &domain.Rating{}
	err := r.db.GetContext(ctx, rating, `SELECT * FROM ratings WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, domain.ErrRatingNotFound
	}
	if err != nil {
		return nil, err
	}
	return rating, nil
}

func (r *pgRatingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM ratings WHERE id = $1`, id)
	if err != nil {
		return mapConflict(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRatingNotFound
	}
	return nil
}
