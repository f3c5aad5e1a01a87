package repository_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sequemusic/backend/internal/domain"
	"github.com/sequemusic/backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGGenreRepository_CreateAndGet(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := repository.NewGenreRepository(db)
	ctx := context.Background()

	genre := &domain.Genre{Name: "Jazz", Description: "desc"}
	mock.ExpectExec("INSERT INTO genres").
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, repo.Create(ctx, genre))
	assert.NotEqual(t, uuid.Nil, genre.ID)

	mock.ExpectQuery("SELECT \\* FROM genres WHERE id = \\$1").WithArgs(genre.ID).WillReturnError(sql.ErrNoRows)
	_, err := repo.GetByID(ctx, genre.ID)
	assert.ErrorIs(t, err, domain.ErrGenreNotFound)
}

func TestPGGenreRepository_DeleteCascadesToTracks(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := repository.NewGenreRepository(db)
	ctx := context.Background()
	genreID := uuid.New()
	firstTrack := uuid.New()
	secondTrack := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM tracks WHERE genre_id = \\$1").WithArgs(genreID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(firstTrack).AddRow(secondTrack))
	for _, trackID := range []uuid.UUID{firstTrack, secondTrack} {
		mock.ExpectExec("DELETE FROM artist_tracks WHERE track_id = \\$1").WithArgs(trackID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("DELETE FROM stream_records WHERE track_id = \\$1").WithArgs(trackID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM ratings WHERE track_id = \\$1").WithArgs(trackID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM tracks WHERE id = \\$1").WithArgs(trackID).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectExec("DELETE FROM genres WHERE id = \\$1").WithArgs(genreID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(ctx, genreID))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGGenreRepository_DeleteMissing(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := repository.NewGenreRepository(db)
	ctx := context.Background()
	genreID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM tracks WHERE genre_id = \\$1").WithArgs(genreID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("DELETE FROM genres WHERE id = \\$1").WithArgs(genreID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(ctx, genreID)
	assert.ErrorIs(t, err, domain.ErrGenreNotFound)
}
