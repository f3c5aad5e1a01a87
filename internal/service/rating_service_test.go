package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sequemusic/backend/internal/domain"
	"github.com/sequemusic/backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRatingService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	ratingRepo := new(mockRatingRepository)
	trackRepo := new(mockTrackRepository)
	svc := service.NewRatingService(ratingRepo, trackRepo)

	err := svc.CreateRating(ctx, anonymous, &domain.Rating{Score: 3, TrackID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	var verr *domain.ValidationError
	err = svc.CreateRating(ctx, standard, &domain.Rating{Score: 0, TrackID: uuid.New()})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "score")

	err = svc.CreateRating(ctx, standard, &domain.Rating{Score: 6, TrackID: uuid.New()})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "score")

	err = svc.CreateRating(ctx, standard, &domain.Rating{Score: 3})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "track_id")
}

func TestRatingService_CreateForcesOwner(t *testing.T) {
	ctx := context.Background()
	ratingRepo := new(mockRatingRepository)
	trackRepo := new(mockTrackRepository)
	svc := service.NewRatingService(ratingRepo, trackRepo)
	trackID := uuid.New()

	trackRepo.On("GetByID", ctx, trackID).Return(&domain.Track{ID: trackID}, nil)
	ratingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Rating")).Return(nil)

	rating := &domain.Rating{Score: 4, TrackID: trackID, UserID: uuid.New()}
	require.NoError(t, svc.CreateRating(ctx, standard, rating))
	assert.Equal(t, standard.ID, rating.UserID)
	assert.False(t, rating.RatedAt.IsZero())
}

func TestRatingService_CreateUnknownTrack(t *testing.T) {
	ctx := context.Background()
	ratingRepo := new(mockRatingRepository)
	trackRepo := new(mockTrackRepository)
	svc := service.NewRatingService(ratingRepo, trackRepo)
	trackID := uuid.New()

	trackRepo.On("GetByID", ctx, trackID).Return(nil, domain.ErrTrackNotFound)
	err := svc.CreateRating(ctx, standard, &domain.Rating{Score: 4, TrackID: trackID})
	assert.ErrorIs(t, err, domain.ErrTrackNotFound)
	ratingRepo.AssertNotCalled(t, "Create", ctx, mock.Anything)
}

func TestRatingService_MyRatings(t *testing.T) {
	ctx := context.Background()
	ratingRepo := new(mockRatingRepository)
	trackRepo := new(mockTrackRepository)
	svc := service.NewRatingService(ratingRepo, trackRepo)

	_, err := svc.MyRatings(ctx, anonymous)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	ratingRepo.On("ListByUser", ctx, standard.ID).Return([]domain.Rating{{Score: 5}}, nil)
	ratings, err := svc.MyRatings(ctx, standard)
	require.NoError(t, err)
	assert.Len(t, ratings, 1)
}

func TestRatingService_DeleteOwnerOrAdmin(t *testing.T) {
	ctx := context.Background()
	ratingRepo := new(mockRatingRepository)
	trackRepo := new(mockTrackRepository)
	svc := service.NewRatingService(ratingRepo, trackRepo)
	ratingID := uuid.New()

	err := svc.DeleteRating(ctx, anonymous, ratingID)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	owned := &domain.Rating{ID: ratingID, UserID: standard.ID}
	ratingRepo.On("GetByID", ctx, ratingID).Return(owned, nil)

	err = svc.DeleteRating(ctx, premium, ratingID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	ratingRepo.On("Delete", ctx, ratingID).Return(nil).Twice()
	require.NoError(t, svc.DeleteRating(ctx, standard, ratingID))
	require.NoError(t, svc.DeleteRating(ctx, admin, ratingID))
}
