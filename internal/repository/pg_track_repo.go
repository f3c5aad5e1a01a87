package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sequemusic/backend/internal/domain"
)

type pgTrackRepository struct {
	db *sqlx.DB
}

func NewTrackRepository(db *sqlx.DB) domain.TrackRepository {
	return &pgTrackRepository{db: db}
}

func (r *pgTrackRepository) Create(ctx context.Context, track *domain.Track) error {
	if track.ID == uuid.Nil {
		track.ID = uuid.New()
	}
	if track.CreatedAt.IsZero() {
		track.CreatedAt = time.Now()
	}
	track.UpdatedAt = time.Now()

	return inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
        INSERT INTO tracks (
            id, title, album, lyrics, release_year, audio_link,
            audio_filename, chart_position, artist_id, genre_id,
            created_at, updated_at
        ) VALUES (
            :id, :title, :album, :lyrics, :release_year, :audio_link,
            :audio_filename, :chart_position, :artist_id, :genre_id,
            :created_at, :updated_at
        )`
		if _, err := tx.NamedExecContext(ctx, query, track); err != nil {
			return err
		}

		// The association set always contains the primary artist, from the
		// first moment the track exists.
		_, err := tx.ExecContext(ctx,
			`INSERT INTO artist_tracks (artist_id, track_id) VALUES ($1, $2)`,
			track.ArtistID, track.ID)
		return err
	})
}

func (r *pgTrackRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Track, error) {
	track := &domain.Track{}
	query := `
        SELECT t.*, a.name AS artist_name, g.name AS genre_name
        FROM tracks t
        JOIN artists a ON a.id = t.artist_id
        JOIN genres g ON g.id = t.genre_id
        WHERE t.id = $1`
	err := r.db.GetContext(ctx, track, query, id)
	if err == sql.ErrNoRows {
		return nil, domain.ErrTrackNotFound
	}
	if err != nil {
		return nil, err
	}
	return track, nil
}

func (r *pgTrackRepository) List(ctx context.Context, filter domain.TrackFilter) ([]domain.Track, error) {
	tracks := []domain.Track{}

	query := `
        SELECT t.*, a.name AS artist_name, g.name AS genre_name
        FROM tracks t
        JOIN artists a ON a.id = t.artist_id
        JOIN genres g ON g.id = t.genre_id
        WHERE 1=1`
	args := []interface{}{}
	argId := 1

	if filter.GenreName != "" {
		query += fmt.Sprintf(" AND g.name ILIKE '%%' || $%d || '%%'", argId)
		args = append(args, filter.GenreName)
		argId++
	}
	if filter.ArtistName != "" {
		query += fmt.Sprintf(" AND a.name ILIKE '%%' || $%d || '%%'", argId)
		args = append(args, filter.ArtistName)
		argId++
	}
	if filter.ReleaseYear != 0 {
		query += fmt.Sprintf(" AND t.release_year = $%d", argId)
		args = append(args, filter.ReleaseYear)
		argId++
	}

	if err := r.db.SelectContext(ctx, &tracks, query, args...); err != nil {
		return nil, err
	}
	return tracks, nil
}

func (r *pgTrackRepository) ListWithPlayTotals(ctx context.Context) ([]domain.TrackPlays, error) {
	tracks := []domain.TrackPlays{}
	query := `
        SELECT t.*, a.name AS artist_name, g.name AS genre_name,
               COALESCE(SUM(s.play_count), 0) AS total_plays
        FROM tracks t
        JOIN artists a ON a.id = t.artist_id
        JOIN genres g ON g.id = t.genre_id
        LEFT JOIN stream_records s ON s.track_id = t.id
        GROUP BY t.id, a.name, g.name`
	if err := r.db.SelectContext(ctx, &tracks, query); err != nil {
		return nil, err
	}
	return tracks, nil
}

func (r *pgTrackRepository) Update(ctx context.Context, track *domain.Track) error {
	track.UpdatedAt = time.Now()
	query := `
        UPDATE tracks SET
            title = :title, album = :album, lyrics = :lyrics,
            release_year = :release_year, audio_link = :audio_link,
            audio_filename = :audio_filename, artist_id = :artist_id,
            genre_id = :genre_id, updated_at = :updated_at
        WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, track)
	if err != nil {
		return mapConflict(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrTrackNotFound
	}
	return nil
}

func (r *pgTrackRepository) SetChartPosition(ctx context.Context, id uuid.UUID, position int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tracks SET chart_position = $2, updated_at = NOW() WHERE id = $1`,
		id, position)
	if err != nil {
		return mapConflict(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrTrackNotFound
	}
	return nil
}

func (r *pgTrackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		rows, err := deleteTrackInTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.ErrTrackNotFound
		}
		return nil
	})
}

// deleteTrackInTx performs the manual cascade for one track. The association
// table's foreign key toward tracks is RESTRICT, so the join rows must go
// first; stream records and ratings follow, then the track row. Returns the
// number of track rows removed so callers can distinguish a missing root
// (already-gone cascade targets are not errors).
func deleteTrackInTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (int64, error) {
	if _, err := tx.ExecContext(ctx, `DELETE FROM artist_tracks WHERE track_id = $1`, id); err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM stream_records WHERE track_id = $1`, id); err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM ratings WHERE track_id = $1`, id); err != nil {
		return 0, err
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM tracks WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *pgTrackRepository) ReplaceArtistLinks(ctx context.Context, trackID, primaryArtistID uuid.UUID, artistIDs []uuid.UUID) error {
	// Distinct union of the requested set and the primary artist. The
	// primary is a member after every call, not just at creation.
	seen := map[uuid.UUID]bool{primaryArtistID: true}
	links := []uuid.UUID{primaryArtistID}
	for _, artistID := range artistIDs {
		if artistID == uuid.Nil || seen[artistID] {
			continue
		}
		seen[artistID] = true
		links = append(links, artistID)
	}

	return inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM artist_tracks WHERE track_id = $1`, trackID); err != nil {
			return err
		}
		for _, artistID := range links {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO artist_tracks (artist_id, track_id) VALUES ($1, $2)`,
				artistID, trackID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *pgTrackRepository) ListArtistLinks(ctx context.Context, trackID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	query := `SELECT artist_id FROM artist_tracks WHERE track_id = $1`
	if err := r.db.SelectContext(ctx, &ids, query, trackID); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *pgTrackRepository) Search(ctx context.Context, term string) ([]domain.Track, error) {
	tracks := []domain.Track{}
	query := `
        SELECT t.*, a.name AS artist_name, g.name AS genre_name
        FROM tracks t
        JOIN artists a ON a.id = t.artist_id
        JOIN genres g ON g.id = t.genre_id
        WHERE t.title ILIKE '%' || $1 || '%'`
	if err := r.db.SelectContext(ctx, &tracks, query, term); err != nil {
		return nil, err
	}
	return tracks, nil
}
