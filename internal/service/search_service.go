package service

import (
	"context"
	"strings"

	"github.com/sequemusic/backend/internal/domain"
)

// SearchResult is the union of matches across the two searchable entity
// types. Result order is unspecified.
type SearchResult struct {
	Artists []domain.Artist `json:"artists"`
	Tracks  []domain.Track  `json:"tracks"`
}

type SearchService interface {
	Search(ctx context.Context, term string) (*SearchResult, error)
}

type searchService struct {
	artistRepo domain.ArtistRepository
	trackRepo  domain.TrackRepository
}

func NewSearchService(artistRepo domain.ArtistRepository, trackRepo domain.TrackRepository) SearchService {
	return &searchService{artistRepo: artistRepo, trackRepo: trackRepo}
}

// Search matches term as a case-insensitive substring of artist names and
// track titles. An empty or whitespace-only term yields two empty lists, not
// an error.
func (s *searchService) Search(ctx context.Context, term string) (*SearchResult, error) {
	result := &SearchResult{Artists: []domain.Artist{}, Tracks: []domain.Track{}}

	term = strings.TrimSpace(term)
	if term == "" {
		return result, nil
	}

	artists, err := s.artistRepo.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	tracks, err := s.trackRepo.Search(ctx, term)
	if err != nil {
		return nil, err
	}

	result.Artists = artists
	result.Tracks = tracks
	return result, nil
}
