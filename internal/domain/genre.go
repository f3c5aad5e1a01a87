package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Genre names are unique by convention only; the storage schema does not
// enforce it.
type Genre struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type GenreRepository interface {
	Create(ctx context.Context, genre *Genre) error
	GetByID(ctx context.Context, id uuid.UUID) (*Genre, error)
	List(ctx context.Context) ([]Genre, error)
	Update(ctx context.Context, genre *Genre) error
	// Delete cascades to every track that references the genre, and
	// transitively to each track's ratings, stream records and association
	// rows, inside one transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}
