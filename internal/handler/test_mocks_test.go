package handler_test

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sequemusic/backend/internal/domain"
	"github.com/sequemusic/backend/internal/middleware"
	"github.com/sequemusic/backend/internal/service"
	"github.com/stretchr/testify/mock"
)

func withPrincipal(r *http.Request, p domain.Principal) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.ContextKeyPrincipal, p))
}

type mockCatalogService struct {
	mock.Mock
}

func (m *mockCatalogService) CreateArtist(ctx context.Context, p domain.Principal, artist *domain.Artist) error {
	args := m.Called(ctx, p, artist)
	return args.Error(0)
}

func (m *mockCatalogService) GetArtist(ctx context.Context, id uuid.UUID) (*domain.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

func (m *mockCatalogService) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Artist), args.Error(1)
}

func (m *mockCatalogService) UpdateArtist(ctx context.Context, p domain.Principal, artist *domain.Artist) error {
	args := m.Called(ctx, p, artist)
	return args.Error(0)
}

func (m *mockCatalogService) DeleteArtist(ctx context.Context, p domain.Principal, id uuid.UUID) error {
	args := m.Called(ctx, p, id)
	return args.Error(0)
}

func (m *mockCatalogService) CreateGenre(ctx context.Context, p domain.Principal, genre *domain.Genre) error {
	args := m.Called(ctx, p, genre)
	return args.Error(0)
}

func (m *mockCatalogService) GetGenre(ctx context.Context, id uuid.UUID) (*domain.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Genre), args.Error(1)
}

func (m *mockCatalogService) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Genre), args.Error(1)
}

func (m *mockCatalogService) UpdateGenre(ctx context.Context, p domain.Principal, genre *domain.Genre) error {
	args := m.Called(ctx, p, genre)
	return args.Error(0)
}

func (m *mockCatalogService) DeleteGenre(ctx context.Context, p domain.Principal, id uuid.UUID) error {
	args := m.Called(ctx, p, id)
	return args.Error(0)
}

func (m *mockCatalogService) CreateTrack(ctx context.Context, p domain.Principal, track *domain.Track) error {
	args := m.Called(ctx, p, track)
	return args.Error(0)
}

func (m *mockCatalogService) GetTrack(ctx context.Context, id uuid.UUID) (*domain.Track, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Track), args.Error(1)
}

func (m *mockCatalogService) UpdateTrack(ctx context.Context, p domain.Principal, track *domain.Track) error {
	args := m.Called(ctx, p, track)
	return args.Error(0)
}

func (m *mockCatalogService) DeleteTrack(ctx context.Context, p domain.Principal, id uuid.UUID) error {
	args := m.Called(ctx, p, id)
	return args.Error(0)
}

func (m *mockCatalogService) AssociateTrackWithArtists(ctx context.Context, p domain.Principal, trackID uuid.UUID, artistIDs []uuid.UUID) error {
	args := m.Called(ctx, p, trackID, artistIDs)
	return args.Error(0)
}

func (m *mockCatalogService) SetChartPosition(ctx context.Context, p domain.Principal, trackID uuid.UUID, position int) error {
	args := m.Called(ctx, p, trackID, position)
	return args.Error(0)
}

type mockRankingService struct {
	mock.Mock
}

func (m *mockRankingService) TopTracks(ctx context.Context) ([]domain.TrackPlays, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrackPlays), args.Error(1)
}

func (m *mockRankingService) AdminCatalog(ctx context.Context, p domain.Principal, filter domain.TrackFilter) ([]domain.Track, error) {
	args := m.Called(ctx, p, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Track), args.Error(1)
}

func (m *mockRankingService) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type mockRatingService struct {
	mock.Mock
}

func (m *mockRatingService) CreateRating(ctx context.Context, p domain.Principal, rating *domain.Rating) error {
	args := m.Called(ctx, p, rating)
	return args.Error(0)
}

func (m *mockRatingService) ListByTrack(ctx context.Context, trackID uuid.UUID) ([]domain.Rating, error) {
	args := m.Called(ctx, trackID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rating), args.Error(1)
}

func (m *mockRatingService) MyRatings(ctx context.Context, p domain.Principal) ([]domain.Rating, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rating), args.Error(1)
}

func (m *mockRatingService) DeleteRating(ctx context.Context, p domain.Principal, id uuid.UUID) error {
	args := m.Called(ctx, p, id)
	return args.Error(0)
}

type mockStreamService struct {
	mock.Mock
}

func (m *mockStreamService) CreateStreamRecord(ctx context.Context, p domain.Principal, record *domain.StreamRecord) error {
	args := m.Called(ctx, p, record)
	return args.Error(0)
}

func (m *mockStreamService) ListByTrack(ctx context.Context, trackID uuid.UUID) ([]domain.StreamRecord, error) {
	args := m.Called(ctx, trackID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamRecord), args.Error(1)
}

func (m *mockStreamService) DeleteStreamRecord(ctx context.Context, p domain.Principal, id uuid.UUID) error {
	args := m.Called(ctx, p, id)
	return args.Error(0)
}

type mockNewsService struct {
	mock.Mock
}

func (m *mockNewsService) CreateNews(ctx context.Context, p domain.Principal, item *domain.News) error {
	args := m.Called(ctx, p, item)
	return args.Error(0)
}

func (m *mockNewsService) GetNews(ctx context.Context, id uuid.UUID) (*domain.News, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.News), args.Error(1)
}

func (m *mockNewsService) ListNews(ctx context.Context) ([]domain.News, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.News), args.Error(1)
}

func (m *mockNewsService) LatestNews(ctx context.Context) ([]domain.News, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.News), args.Error(1)
}

func (m *mockNewsService) UpdateNews(ctx context.Context, p domain.Principal, item *domain.News) error {
	args := m.Called(ctx, p, item)
	return args.Error(0)
}

func (m *mockNewsService) DeleteNews(ctx context.Context, p domain.Principal, id uuid.UUID) error {
	args := m.Called(ctx, p, id)
	return args.Error(0)
}

type mockSearchService struct {
	mock.Mock
}

func (m *mockSearchService) Search(ctx context.Context, term string) (*service.SearchResult, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SearchResult), args.Error(1)
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) GetProfile(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserService) DeleteUser(ctx context.Context, p domain.Principal, id uuid.UUID) error {
	args := m.Called(ctx, p, id)
	return args.Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) GetUserById(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
