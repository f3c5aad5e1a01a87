package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Artist is an aggregate root. It owns tracks (as primary artist) and news
// items, and participates in the track many-to-many association.
type Artist struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Biography string    `json:"biography" db:"biography"`
	Country   string    `json:"country" db:"country"`
	ImageRef  string    `json:"image_ref" db:"image_ref"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type ArtistRepository interface {
	Create(ctx context.Context, artist *Artist) error
	GetByID(ctx context.Context, id uuid.UUID) (*Artist, error)
	// GetByName matches the display name exactly. Used by the track
	// auto-provisioning step; returns nil, nil when no artist exists.
	GetByName(ctx context.Context, name string) (*Artist, error)
	List(ctx context.Context) ([]Artist, error)
	Update(ctx context.Context, artist *Artist) error
	// Delete removes the artist and everything that would otherwise dangle:
	// all tracks owned as primary (with their ratings, stream records and
	// association rows), all news items, and the artist's own association
	// rows. All of it happens in a single transaction.
	Delete(ctx context.Context, id uuid.UUID) error
	// Search returns artists whose name contains term, case-insensitively.
	Search(ctx context.Context, term string) ([]Artist, error)
}
