package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Rating scores run from 1 to 5 inclusive; out-of-range values are rejected
// at validation time.
type Rating struct {
	ID      uuid.UUID `json:"id" db:"id"`
	Score   int       `json:"score" db:"score"`
	Comment string    `json:"comment,omitempty" db:"comment"`
	RatedAt time.Time `json:"rated_at" db:"rated_at"`
	TrackID uuid.UUID `json:"track_id" db:"track_id"`
	UserID  uuid.UUID `json:"user_id" db:"user_id"`

	TrackTitle string `json:"track_title,omitempty" db:"track_title"`
	UserName   string `json:"user_name,omitempty" db:"user_name"`
}

type RatingRepository interface {
	Create(ctx context.Context, rating *Rating) error
	ListByTrack(ctx context.Context, trackID uuid.UUID) ([]Rating, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Rating, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Rating, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
