package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sequemusic/backend/internal/domain"
)

type pgArtistRepository struct {
	db *sqlx.DB
}

func NewArtistRepository(db *sqlx.DB) domain.ArtistRepository {
	return &pgArtistRepository{db: db}
}

func (r *pgArtistRepository) Create(ctx context.Context, artist *domain.Artist) error {
	if artist.ID == uuid.Nil {
		artist.ID = uuid.New()
	}
	if artist.CreatedAt.IsZero() {
		artist.CreatedAt = time.Now()
	}
	artist.UpdatedAt = time.Now()

	query := `
        INSERT INTO artists (id, name, biography, country, image_ref, created_at, updated_at)
        VALUES (:id, :name, :biography, :country, :image_ref, :created_at, :updated_at)`
	_, err := r.db.NamedExecContext(ctx, query, artist)
	return err
}

func (r *pgArtistRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Artist, error) {
	artist := &domain.Artist{}
	err := r.db.GetContext(ctx, artist, `SELECT * FROM artists WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, domain.ErrArtistNotFound
	}
	if err != nil {
		return nil, err
	}
	return artist, nil
}

func (r *pgArtistRepository) GetByName(ctx context.Context, name string) (*domain.Artist, error) {
	artist := &domain.Artist{}
	err := r.db.GetContext(ctx, artist, `SELECT * FROM artists WHERE name = $1`, name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return artist, nil
}

func (r *pgArtistRepository) List(ctx context.Context) ([]domain.Artist, error) {
	artists := []domain.Artist{}
	if err := r.db.SelectContext(ctx, &artists, `SELECT * FROM artists`); err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *pgArtistRepository) Update(ctx context.Context, artist *domain.Artist) error {
	artist.UpdatedAt = time.Now()
	query := `
        UPDATE artists SET
            name = :name, biography = :biography, country = :country,
            image_ref = :image_ref, updated_at = :updated_at
        WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, artist)
	if err != nil {
		return mapConflict(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrArtistNotFound
	}
	return nil
}

// Delete removes the artist and all dependents in one transaction: every
// track owned as primary (with its own cascade), all news items, and any
// remaining association rows where this artist is a secondary member.
func (r *pgArtistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		trackIDs := []uuid.UUID{}
		if err := tx.SelectContext(ctx, &trackIDs,
			`SELECT id FROM tracks WHERE artist_id = $1`, id); err != nil {
			return err
		}
		for _, trackID := range trackIDs {
			if _, err := deleteTrackInTx(ctx, tx, trackID); err != nil {
				return err
			}
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM news WHERE artist_id = $1`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM artist_tracks WHERE artist_id = $1`, id); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM artists WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.ErrArtistNotFound
		}
		return nil
	})
}

func (r *pgArtistRepository) Search(ctx context.Context, term string) ([]domain.Artist, error) {
	artists := []domain.Artist{}
	query := `SELECT * FROM artists WHERE name ILIKE '%' || $1 || '%'`
	if err := r.db.SelectContext(ctx, &artists, query, term); err != nil {
		return nil, err
	}
	return artists, nil
}
