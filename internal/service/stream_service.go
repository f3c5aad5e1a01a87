package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sequemusic/backend/internal/domain"
	"github.com/sequemusic/backend/internal/policy"
	"github.com/sequemusic/backend/internal/utils"
)

type StreamService interface {
	CreateStreamRecord(ctx context.Context, p domain.Principal, record *domain.StreamRecord) error
	ListByTrack(ctx context.Context, trackID uuid.UUID) ([]domain.StreamRecord, error)
	DeleteStreamRecord(ctx context.Context, p domain.Principal, id uuid.UUID) error
}

type streamService struct {
	streamRepo domain.StreamRecordRepository
	trackRepo  domain.TrackRepository
	cache      CacheInvalidator
}

func NewStreamService(streamRepo domain.StreamRecordRepository, trackRepo domain.TrackRepository, cache CacheInvalidator) StreamService {
	return &streamService{streamRepo: streamRepo, trackRepo: trackRepo, cache: cache}
}

func (s *streamService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}

func (s *streamService) CreateStreamRecord(ctx context.Context, p domain.Principal, record *domain.StreamRecord) error {
	if err := authorize(p, policy.CreateStreamRecord); err != nil {
		return err
	}

	v := domain.NewValidationError()
	if record.Platform == "" {
		v.Add("platform", "platform name is required")
	}
	if record.PlayCount < 0 {
		v.Add("play_count", "play count cannot be negative")
	}
	if record.Link != "" && !utils.IsValidURL(record.Link) {
		v.Add("link", "link must be a well-formed URL")
	}
	if record.TrackID == uuid.Nil {
		v.Add("track_id", "track is required")
	}
	if err := v.ErrOrNil(); err != nil {
		return err
	}

	if _, err := s.trackRepo.GetByID(ctx, record.TrackID); err != nil {
		return err
	}
	if err := s.streamRepo.Create(ctx, record); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *streamService) ListByTrack(ctx context.Context, trackID uuid.UUID) ([]domain.StreamRecord, error) {
	return s.streamRepo.ListByTrack(ctx, trackID)
}

func (s *streamService) DeleteStreamRecord(ctx context.Context, p domain.Principal, id uuid.UUID) error {
	if err := authorize(p, policy.DeleteStreamRecord); err != nil {
		return err
	}
	if err := s.streamRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}
