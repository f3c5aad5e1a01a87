package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Track always has exactly one primary artist and one genre. ChartPosition is
// a display-ordering hint set by administrators; nil means unranked, never
// rank zero.
type Track struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Album         string    `json:"album,omitempty" db:"album"`
	Lyrics        string    `json:"lyrics,omitempty" db:"lyrics"`
	ReleaseYear   int       `json:"release_year" db:"release_year"`
	AudioLink     string    `json:"audio_link,omitempty" db:"audio_link"`
	AudioFilename string    `json:"audio_filename,omitempty" db:"audio_filename"`
	ChartPosition *int      `json:"chart_position,omitempty" db:"chart_position"`
	ArtistID      uuid.UUID `json:"artist_id" db:"artist_id"`
	GenreID       uuid.UUID `json:"genre_id" db:"genre_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`

	// Denormalized for display on read paths.
	ArtistName string `json:"artist_name,omitempty" db:"artist_name"`
	GenreName  string `json:"genre_name,omitempty" db:"genre_name"`
}

// TrackPlays pairs a track with the sum of play counts across its stream
// records. Input to the derived ranking strategy.
type TrackPlays struct {
	Track
	TotalPlays int64 `json:"total_plays" db:"total_plays"`
}

// TrackFilter narrows the administrative catalog listing. Zero values mean
// "no filter".
type TrackFilter struct {
	GenreName   string
	ArtistName  string
	ReleaseYear int
}

type TrackRepository interface {
	Create(ctx context.Context, track *Track) error
	GetByID(ctx context.Context, id uuid.UUID) (*Track, error)
	List(ctx context.Context, filter TrackFilter) ([]Track, error)
	// ListWithPlayTotals returns every track together with its aggregated
	// play count. Ordering is applied by the ranking engine, not here.
	ListWithPlayTotals(ctx context.Context) ([]TrackPlays, error)
	Update(ctx context.Context, track *Track) error
	SetChartPosition(ctx context.Context, id uuid.UUID, position int) error
	// Delete removes the track's association rows, then its stream records
	// and ratings, in that order, before the track itself. The association
	// table's foreign key toward tracks is RESTRICT, so the cascade is
	// performed here, in application logic, inside one transaction.
	Delete(ctx context.Context, id uuid.UUID) error
	// ReplaceArtistLinks replaces the track's full secondary-association
	// set with the distinct union of artistIDs and the primary artist.
	// The primary artist is always a member afterwards, whatever the input.
	ReplaceArtistLinks(ctx context.Context, trackID, primaryArtistID uuid.UUID, artistIDs []uuid.UUID) error
	ListArtistLinks(ctx context.Context, trackID uuid.UUID) ([]uuid.UUID, error)
	// Search returns tracks whose title contains term, case-insensitively,
	// with the primary artist's name denormalized onto each result.
	Search(ctx context.Context, term string) ([]Track, error)
}
