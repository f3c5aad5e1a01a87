package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// News is fully administrator-owned. Summary is capped at 300 characters for
// listing surfaces.
type News struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Body        string    `json:"body,omitempty" db:"body"`
	PublishedAt time.Time `json:"published_at" db:"published_at"`
	Source      string    `json:"source,omitempty" db:"source"`
	Summary     string    `json:"summary,omitempty" db:"summary"`
	ImageRef    string    `json:"image_ref,omitempty" db:"image_ref"`
	ArtistID    uuid.UUID `json:"artist_id" db:"artist_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	ArtistName string `json:"artist_name,omitempty" db:"artist_name"`
}

type NewsRepository interface {
	Create(ctx context.Context, item *News) error
	GetByID(ctx context.Context, id uuid.UUID) (*News, error)
	List(ctx context.Context) ([]News, error)
	// ListLatest returns the n most recently published items.
	ListLatest(ctx context.Context, n int) ([]News, error)
	Update(ctx context.Context, item *News) error
	Delete(ctx context.Context, id uuid.UUID) error
}
