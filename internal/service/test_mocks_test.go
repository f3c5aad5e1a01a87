package service_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/sequemusic/backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

type mockArtistRepository struct {
	mock.Mock
}

func (m *mockArtistRepository) Create(ctx context.Context, artist *domain.Artist) error {
	args := m.Called(ctx, artist)
	return args.Error(0)
}

func (m *mockArtistRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

func (m *mockArtistRepository) GetByName(ctx context.Context, name string) (*domain.Artist, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

func (m *mockArtistRepository) List(ctx context.Context) ([]domain.Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Artist), args.Error(1)
}

func (m *mockArtistRepository) Update(ctx context.Context, artist *domain.Artist) error {
	args := m.Called(ctx, artist)
	return args.Error(0)
}

func (m *mockArtistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockArtistRepository) Search(ctx context.Context, term string) ([]domain.Artist, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Artist), args.Error(1)
}

type mockGenreRepository struct {
	mock.Mock
}

func (m *mockGenreRepository) Create(ctx context.Context, genre *domain.Genre) error {
	args := m.Called(ctx, genre)
	return args.Error(0)
}

func (m *mockGenreRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Genre), args.Error(1)
}

func (m *mockGenreRepository) List(ctx context.Context) ([]domain.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Genre), args.Error(1)
}

func (m *mockGenreRepository) Update(ctx context.Context, genre *domain.Genre) error {
	args := m.Called(ctx, genre)
	return args.Error(0)
}

func (m *mockGenreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockTrackRepository struct {
	mock.Mock
}

func (m *mockTrackRepository) Create(ctx context.Context, track *domain.Track) error {
	args := m.Called(ctx, track)
	return args.Error(0)
}

func (m *mockTrackRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Track, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Track), args.Error(1)
}

func (m *mockTrackRepository) List(ctx context.Context, filter domain.TrackFilter) ([]domain.Track, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Track), args.Error(1)
}

func (m *mockTrackRepository) ListWithPlayTotals(ctx context.Context) ([]domain.TrackPlays, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrackPlays), args.Error(1)
}

func (m *mockTrackRepository) Update(ctx context.Context, track *domain.Track) error {
	args := m.Called(ctx, track)
	return args.Error(0)
}

func (m *mockTrackRepository) SetChartPosition(ctx context.Context, id uuid.UUID, position int) error {
	args := m.Called(ctx, id, position)
	return args.Error(0)
}

func (m *mockTrackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockTrackRepository) ReplaceArtistLinks(ctx context.Context, trackID, primaryArtistID uuid.UUID, artistIDs []uuid.UUID) error {
	args := m.Called(ctx, trackID, primaryArtistID, artistIDs)
	return args.Error(0)
}

func (m *mockTrackRepository) ListArtistLinks(ctx context.Context, trackID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, trackID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *mockTrackRepository) Search(ctx context.Context, term string) ([]domain.Track, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Track), args.Error(1)
}

type mockRatingRepository struct {
	mock.Mock
}

func (m *mockRatingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *mockRatingRepository) ListByTrack(ctx context.Context, trackID uuid.UUID) ([]domain.Rating, error) {
	args := m.Called(ctx, trackID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rating), args.Error(1)
}

func (m *mockRatingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Rating, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rating), args.Error(1)
}

func (m *mockRatingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}

func (m *mockRatingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockStreamRecordRepository struct {
	mock.Mock
}

func (m *mockStreamRecordRepository) Create(ctx context.Context, record *domain.StreamRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockStreamRecordRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.StreamRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StreamRecord), args.Error(1)
}

func (m *mockStreamRecordRepository) ListByTrack(ctx context.Context, trackID uuid.UUID) ([]domain.StreamRecord, error) {
	args := m.Called(ctx, trackID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamRecord), args.Error(1)
}

func (m *mockStreamRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockNewsRepository struct {
	mock.Mock
}

func (m *mockNewsRepository) Create(ctx context.Context, item *domain.News) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockNewsRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.News, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.News), args.Error(1)
}

func (m *mockNewsRepository) List(ctx context.Context) ([]domain.News, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.News), args.Error(1)
}

func (m *mockNewsRepository) ListLatest(ctx context.Context, n int) ([]domain.News, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.News), args.Error(1)
}

func (m *mockNewsRepository) Update(ctx context.Context, item *domain.News) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockNewsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
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

type mockCacheInvalidator struct {
	mock.Mock
}

func (m *mockCacheInvalidator) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
