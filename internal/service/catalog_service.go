package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sequemusic/backend/internal/domain"
	"github.com/sequemusic/backend/internal/policy"
)

// Biography and country given to artists provisioned as a side effect of a
// premium track submission.
const (
	provisionedArtistBio     = "Artist registered through a premium account."
	provisionedArtistCountry = "Unknown"
)

// CacheInvalidator drops derived views that a mutation made stale. A nil
// invalidator is valid and means no caching layer is wired.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

type CatalogService interface {
	CreateArtist(ctx context.Context, p domain.Principal, artist *domain.Artist) error
	GetArtist(ctx context.Context, id uuid.UUID) (*domain.Artist, error)
	ListArtists(ctx context.Context) ([]domain.Artist, error)
	UpdateArtist(ctx context.Context, p domain.Principal, artist *domain.Artist) error
	DeleteArtist(ctx context.Context, p domain.Principal, id uuid.UUID) error

	CreateGenre(ctx context.Context, p domain.Principal, genre *domain.Genre) error
	GetGenre(ctx context.Context, id uuid.UUID) (*domain.Genre, error)
	ListGenres(ctx context.Context) ([]domain.Genre, error)
	UpdateGenre(ctx context.Context, p domain.Principal, genre *domain.Genre) error
	DeleteGenre(ctx context.Context, p domain.Principal, id uuid.UUID) error

	CreateTrack(ctx context.Context, p domain.Principal, track *domain.Track) error
	GetTrack(ctx context.Context, id uuid.UUID) (*domain.Track, error)
	UpdateTrack(ctx context.Context, p domain.Principal, track *domain.Track) error
	DeleteTrack(ctx context.Context, p domain.Principal, id uuid.UUID) error
	AssociateTrackWithArtists(ctx context.Context, p domain.Principal, trackID uuid.UUID, artistIDs []uuid.UUID) error
	SetChartPosition(ctx context.Context, p domain.Principal, trackID uuid.UUID, position int) error
}

type catalogService struct {
	artistRepo domain.ArtistRepository
	genreRepo  domain.GenreRepository
	trackRepo  domain.TrackRepository
	cache      CacheInvalidator

	// autoProvision controls the implicit-artist side effect of premium
	// track submissions. Bulk-import contexts construct the service with it
	// off.
	autoProvision bool
}

type CatalogOption func(*catalogService)

// WithoutAutoProvisioning disables the implicit artist creation step of
// CreateTrack.
func WithoutAutoProvisioning() CatalogOption {
	return func(s *catalogService) { s.autoProvision = false }
}

// WithCatalogCache wires a derived-view cache to invalidate on mutations.
func WithCatalogCache(cache CacheInvalidator) CatalogOption {
	return func(s *catalogService) { s.cache = cache }
}

func NewCatalogService(artistRepo domain.ArtistRepository, genreRepo domain.GenreRepository, trackRepo domain.TrackRepository, opts ...CatalogOption) CatalogService {
	s := &catalogService{
		artistRepo:    artistRepo,
		genreRepo:     genreRepo,
		trackRepo:     trackRepo,
		autoProvision: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *catalogService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}

// ---------------- Artists ----------------

func validateArtist(artist *domain.Artist) error {
	v := domain.NewValidationError()
	if artist.Name == "" {
		v.Add("name", "display name is required")
	}
	return v.ErrOrNil()
}

func (s *catalogService) CreateArtist(ctx context.Context, p domain.Principal, artist *domain.Artist) error {
	if err := authorize(p, policy.CreateArtist); err != nil {
		return err
	}
	if err := validateArtist(artist); err != nil {
		return err
	}
	return s.artistRepo.Create(ctx, artist)
}

func (s *catalogService) GetArtist(ctx context.Context, id uuid.UUID) (*domain.Artist, error) {
	return s.artistRepo.GetByID(ctx, id)
}

func (s *catalogService) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	return s.artistRepo.List(ctx)
}

func (s *catalogService) UpdateArtist(ctx context.Context, p domain.Principal, artist *domain.Artist) error {
	if err := authorize(p, policy.EditArtist); err != nil {
		return err
	}
	if err := validateArtist(artist); err != nil {
		return err
	}
	return s.artistRepo.Update(ctx, artist)
}

func (s *catalogService) DeleteArtist(ctx context.Context, p domain.Principal, id uuid.UUID) error {
	if err := authorize(p, policy.DeleteArtist); err != nil {
		return err
	}
	if err := s.artistRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// ---------------- Genres ----------------

func validateGenre(genre *domain.Genre) error {
	v := domain.NewValidationError()
	if genre.Name == "" {
		v.Add("name", "name is required")
	}
	return v.ErrOrNil()
}

func (s *catalogService) CreateGenre(ctx context.Context, p domain.Principal, genre *domain.Genre) error {
	if err := authorize(p, policy.CreateGenre); err != nil {
		return err
	}
	if err := validateGenre(genre); err != nil {
		return err
	}
	return s.genreRepo.Create(ctx, genre)
}

func (s *catalogService) GetGenre(ctx context.Context, id uuid.UUID) (*domain.Genre, error) {
	return s.genreRepo.GetByID(ctx, id)
}

func (s *catalogService) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	return s.genreRepo.List(ctx)
}

func (s *catalogService) UpdateGenre(ctx context.Context, p domain.Principal, genre *domain.Genre) error {
	if err := authorize(p, policy.EditGenre); err != nil {
		return err
	}
	if err := validateGenre(genre); err != nil {
		return err
	}
	return s.genreRepo.Update(ctx, genre)
}

func (s *catalogService) DeleteGenre(ctx context.Context, p domain.Principal, id uuid.UUID) error {
	if err := authorize(p, policy.DeleteGenre); err != nil {
		return err
	}
	if err := s.genreRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// ---------------- Tracks ----------------

func validateTrack(track *domain.Track) error {
	v := domain.NewValidationError()
	if track.Title == "" {
		v.Add("title", "title is required")
	}
	if track.ArtistID == uuid.Nil {
		v.Add("artist_id", "primary artist is required")
	}
	if track.GenreID == uuid.Nil {
		v.Add("genre_id", "genre is required")
	}
	return v.ErrOrNil()
}

// ensureArtistForName is the explicit auto-provisioning step: it finds the
// artist whose display name equals name, creating one with placeholder
// metadata when none exists. Idempotent per distinct name.
func (s *catalogService) ensureArtistForName(ctx context.Context, name string) (*domain.Artist, error) {
	artist, err := s.artistRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if artist != nil {
		return artist, nil
	}

	artist = &domain.Artist{
		Name:      name,
		Biography: provisionedArtistBio,
		Country:   provisionedArtistCountry,
	}
	if err := s.artistRepo.Create(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

func (s *catalogService) CreateTrack(ctx context.Context, p domain.Principal, track *domain.Track) error {
	if err := authorize(p, policy.CreateTrack); err != nil {
		return err
	}

	// Premium submitters publish under their own name; the artist entity is
	// provisioned on first submission.
	if !p.Admin && s.autoProvision {
		artist, err := s.ensureArtistForName(ctx, p.Name)
		if err != nil {
			return err
		}
		track.ArtistID = artist.ID
	}

	if err := validateTrack(track); err != nil {
		return err
	}
	if _, err := s.genreRepo.GetByID(ctx, track.GenreID); err != nil {
		return err
	}
	if _, err := s.artistRepo.GetByID(ctx, track.ArtistID); err != nil {
		return err
	}
	if err := s.trackRepo.Create(ctx, track); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *catalogService) GetTrack(ctx context.Context, id uuid.UUID) (*domain.Track, error) {
	return s.trackRepo.GetByID(ctx, id)
}

func (s *catalogService) UpdateTrack(ctx context.Context, p domain.Principal, track *domain.Track) error {
	if err := authorize(p, policy.EditTrack); err != nil {
		return err
	}
	if err := validateTrack(track); err != nil {
		return err
	}
	if err := s.trackRepo.Update(ctx, track); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *catalogService) DeleteTrack(ctx context.Context, p domain.Principal, id uuid.UUID) error {
	if err := authorize(p, policy.DeleteTrack); err != nil {
		return err
	}
	if err := s.trackRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *catalogService) AssociateTrackWithArtists(ctx context.Context, p domain.Principal, trackID uuid.UUID, artistIDs []uuid.UUID) error {
	if err := authorize(p, policy.EditTrack); err != nil {
		return err
	}
	track, err := s.trackRepo.GetByID(ctx, trackID)
	if err != nil {
		return err
	}
	return s.trackRepo.ReplaceArtistLinks(ctx, trackID, track.ArtistID, artistIDs)
}

func (s *catalogService) SetChartPosition(ctx context.Context, p domain.Principal, trackID uuid.UUID, position int) error {
	if err := authorize(p, policy.SetChartPosition); err != nil {
		return err
	}
	if err := s.trackRepo.SetChartPosition(ctx, trackID, position); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}
