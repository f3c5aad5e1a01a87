package service

import (
	"context"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sequemusic/backend/internal/domain"
	"github.com/sequemusic/backend/internal/policy"
)

const newsSummaryMaxLen = 300

type NewsService interface {
	CreateNews(ctx context.Context, p domain.Principal, item *domain.News) error
	GetNews(ctx context.Context, id uuid.UUID) (*domain.News, error)
	ListNews(ctx context.Context) ([]domain.News, error)
	LatestNews(ctx context.Context) ([]domain.News, error)
	UpdateNews(ctx context.Context, p domain.Principal, item *domain.News) error
	DeleteNews(ctx context.Context, p domain.Principal, id uuid.UUID) error
}

type newsService struct {
	newsRepo   domain.NewsRepository
	artistRepo domain.ArtistRepository
}

func NewNewsService(newsRepo domain.NewsRepository, artistRepo domain.ArtistRepository) NewsService {
	return &newsService{newsRepo: newsRepo, artistRepo: artistRepo}
}

func validateNews(item *domain.News) error {
	v := domain.NewValidationError()
	if item.Title == "" {
		v.Add("title", "title is required")
	}
	if utf8.RuneCountInString(item.Summary) > newsSummaryMaxLen {
		v.Add("summary", "summary cannot exceed 300 characters")
	}
	if item.ArtistID == uuid.Nil {
		v.Add("artist_id", "artist is required")
	}
	return v.ErrOrNil()
}

func (s *newsService) CreateNews(ctx context.Context, p domain.Principal, item *domain.News) error {
	if err := authorize(p, policy.CreateNews); err != nil {
		return err
	}
	if err := validateNews(item); err != nil {
		return err
	}
	if _, err := s.artistRepo.GetByID(ctx, item.ArtistID); err != nil {
		return err
	}
	return s.newsRepo.Create(ctx, item)
}

func (s *newsService) GetNews(ctx context.Context, id uuid.UUID) (*domain.News, error) {
	return s.newsRepo.GetByID(ctx, id)
}

func (s *newsService) ListNews(ctx context.Context) ([]domain.News, error) {
	return s.newsRepo.List(ctx)
}

// LatestNews backs the homepage strip: the three most recent items.
func (s *newsService) LatestNews(ctx context.Context) ([]domain.News, error) {
	return s.newsRepo.ListLatest(ctx, 3)
}

func (s *newsService) UpdateNews(ctx context.Context, p domain.Principal, item *domain.News) error {
	if err := authorize(p, policy.EditNews); err != nil {
		return err
	}
	if err := validateNews(item); err != nil {
		return err
	}
	return s.newsRepo.Update(ctx, item)
}

func (s *newsService) DeleteNews(ctx context.Context, p domain.Principal, id uuid.UUID) error {
	if err := authorize(p, policy.DeleteNews); err != nil {
		return err
	}
	return s.newsRepo.Delete(ctx, id)
}
