package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sequemusic/backend/internal/domain"
)

type pgGenreRepository struct {
	db *sqlx.DB
}

func NewGenreRepository(db *sqlx.DB) domain.GenreRepository {
	return &pgGenreRepository{db: db}
}

func (r *pgGenreRepository) Create(ctx context.Context, genre *domain.Genre) error {
	if genre.ID == uuid.Nil {
		genre.ID = uuid.New()
	}
	if genre.CreatedAt.IsZero() {
		genre.CreatedAt = time.Now()
	}
	genre.UpdatedAt = time.Now()

	query := `
        INSERT INTO genres (id, name, description, created_at, updated_at)
        VALUES (:id, :name, :description, :created_at, :updated_at)`
	_, err := r.db.NamedExecContext(ctx, query, genre)
	return err
}

func (r *pgGenreRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Genre, error) {
	genre := &domain.Genre{}
	err := r.db.GetContext(ctx, genre, `SELECT * FROM genres WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, domain.ErrGenreNotFound
	}
	if err != nil {
		return nil, err
	}
	return genre, nil
}

func (r *pgGenreRepository) List(ctx context.Context) ([]domain.Genre, error) {
	genres := []domain.Genre{}
	if err := r.db.SelectContext(ctx, &genres, `SELECT * FROM genres`); err != nil {
		return nil, err
	}
	return genres, nil
}

func (r *pgGenreRepository) Update(ctx context.Context, genre *domain.Genre) error {
	genre.UpdatedAt = time.Now()
	query := `
        UPDATE genres SET name = :name, description = :description, updated_at = :updated_at
        WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, genre)
	if err != nil {
		return mapConflict(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrGenreNotFound
	}
	return nil
}

// Delete cascades to every track referencing the genre, reusing the track
// cascade so ratings, stream records and association rows go with them.
func (r *pgGenreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		trackIDs := []uuid.UUID{}
		if err := tx.SelectContext(ctx, &trackIDs,
			`SELECT id FROM tracks WHERE genre_id = $1`, id); err != nil {
			return err
		}
		for _, trackID := range trackIDs {
			if _, err := deleteTrackInTx(ctx, tx, trackID); err != nil {
				return err
			}
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM genres WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.ErrGenreNotFound
		}
		return nil
	})
}
