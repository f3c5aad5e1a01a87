package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sequemusic/backend/internal/domain"
	"github.com/sequemusic/backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGRatingRepository_Create(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := repository.NewRatingRepository(db)
	ctx := context.Background()

	rating := &domain.Rating{Score: 4, TrackID: uuid.New(), UserID: uuid.New()}
	mock.ExpectExec("INSERT INTO ratings").
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, repo.Create(ctx, rating))
	assert.NotEqual(t, uuid.Nil, rating.ID)
	assert.False(t, rating.RatedAt.IsZero())
}

func TestPGRatingRepository_ListByTrackAndUser(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := repository.NewRatingRepository(db)
	ctx := context.Background()
	trackID := uuid.New()
	userID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "score", "rated_at", "track_id", "user_id", "user_name"}).
		AddRow(uuid.New(), 5, time.Now(), trackID, userID, "Alice")
	mock.ExpectQuery("JOIN users u").WithArgs(trackID).WillReturnRows(rows)
	ratings, err := repo.ListByTrack(ctx, trackID)
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, "Alice", ratings[0].UserName)

	rows = sqlmock.NewRows([]string{"id", "score", "rated_at", "track_id", "user_id", "track_title"}).
		AddRow(uuid.New(), 3, time.Now(), trackID, userID, "Song")
	mock.ExpectQuery("JOIN tracks t").WithArgs(userID).WillReturnRows(rows)
	ratings, err = repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, "Song", ratings[0].TrackTitle)
}

func TestPGRatingRepository_Delete(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := repository.NewRatingRepository(db)
	ctx := context.Background()
	id := uuid.New()

	mock.ExpectExec("DELETE FROM ratings WHERE id = \\$1").WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(ctx, id))

	mock.ExpectExec("DELETE FROM ratings WHERE id = \\$1").WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.Delete(ctx, id)
	assert.ErrorIs(t, err, domain.ErrRatingNotFound)
}
