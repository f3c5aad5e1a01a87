package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sequemusic/backend/internal/domain"
	"github.com/sequemusic/backend/internal/policy"
)

type RatingService interface {
	CreateRating(ctx context.Context, p domain.Principal, rating *domain.Rating) error
	ListByTrack(ctx context.Context, trackID uuid.UUID) ([]domain.Rating, error)
	MyRatings(ctx context.Context, p domain.Principal) ([]domain.Rating, error)
	DeleteRating(ctx context.Context, p domain.Principal, id uuid.UUID) error
}

type ratingService struct {
	ratingRepo domain.RatingRepository
	trackRepo  domain.TrackRepository
}

func NewRatingService(ratingRepo domain.RatingRepository, trackRepo domain.TrackRepository) RatingService {
	return &ratingService{ratingRepo: ratingRepo, trackRepo: trackRepo}
}

func (s *ratingService) CreateRating(ctx context.Context, p domain.Principal, rating *domain.Rating) error {
	if err := authorize(p, policy.CreateRating); err != nil {
		return err
	}

	v := domain.NewValidationError()
	if rating.Score < 1 || rating.Score > 5 {
		v.Add("score", "score must be between 1 and 5")
	}
	if rating.TrackID == uuid.Nil {
		v.Add("track_id", "track is required")
	}
	if err := v.ErrOrNil(); err != nil {
		return err
	}

	if _, err := s.trackRepo.GetByID(ctx, rating.TrackID); err != nil {
		return err
	}

	// The rating is always owned by the caller, whatever the payload said.
	rating.UserID = p.ID
	rating.RatedAt = time.Now()
	return s.ratingRepo.Create(ctx, rating)
}

func (s *ratingService) ListByTrack(ctx context.Context, trackID uuid.UUID) ([]domain.Rating, error) {
	return s.ratingRepo.ListByTrack(ctx, trackID)
}

func (s *ratingService) MyRatings(ctx context.Context, p domain.Principal) ([]domain.Rating, error) {
	if err := authorize(p, policy.ViewOwnRatings); err != nil {
		return nil, err
	}
	return s.ratingRepo.ListByUser(ctx, p.ID)
}

// DeleteRating allows admins, or the rating's owner, to remove a single
// rating. No cascade follows.
func (s *ratingService) DeleteRating(ctx context.Context, p domain.Principal, id uuid.UUID) error {
	if !p.Authenticated {
		return domain.ErrUnauthenticated
	}
	rating, err := s.ratingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !p.Admin && rating.UserID != p.ID {
		return domain.ErrForbidden
	}
	return s.ratingRepo.Delete(ctx, id)
}
