package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// StreamRecord holds the play count reported by one platform for one track.
type StreamRecord struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Platform  string    `json:"platform" db:"platform"`
	PlayCount int64     `json:"play_count" db:"play_count"`
	Link      string    `json:"link,omitempty" db:"link"`
	TrackID   uuid.UUID `json:"track_id" db:"track_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type StreamRecordRepository interface {
	Create(ctx context.Context, record *StreamRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*StreamRecord, error)
	ListByTrack(ctx context.Context, trackID uuid.UUID) ([]StreamRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
