package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sequemusic/backend/internal/domain"
)

type Strategy string

const (
	StrategyCurated Strategy = "curated"
	StrategyDerived Strategy = "derived"
)

const (
	topTracksLimit = 10

	// Unranked tracks sort after every ranked one in the combined admin
	// listing. Chart positions are small positive integers by convention.
	unrankedSentinel = 999

	topTracksCacheKey = "sequemusic:top_tracks"
)

type RankingService interface {
	// TopTracks is the public view: the first 10 results of the configured
	// strategy.
	TopTracks(ctx context.Context) ([]domain.TrackPlays, error)
	// AdminCatalog is the privileged view: the full catalog, optionally
	// filtered, in curated order with unranked tracks last.
	AdminCatalog(ctx context.Context, p domain.Principal, filter domain.TrackFilter) ([]domain.Track, error)
	Invalidate(ctx context.Context) error
}

// rankingCache is the slice of the redis client the ranking engine uses.
type rankingCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type rankingService struct {
	trackRepo domain.TrackRepository
	strategy  Strategy
	cache     rankingCache
	cacheTTL  time.Duration
}

type RankingOption func(*rankingService)

// WithRankingCache caches the public top-tracks view in redis.
func WithRankingCache(cache rankingCache, ttl time.Duration) RankingOption {
	return func(s *rankingService) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

func NewRankingService(trackRepo domain.TrackRepository, strategy Strategy, opts ...RankingOption) RankingService {
	s := &rankingService{trackRepo: trackRepo, strategy: strategy}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *rankingService) TopTracks(ctx context.Context) ([]domain.TrackPlays, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, topTracksCacheKey).Result(); err == nil {
			var tracks []domain.TrackPlays
			if err := json.Unmarshal([]byte(cached), &tracks); err == nil {
				return tracks, nil
			}
		}
	}

	tracks, err := s.trackRepo.ListWithPlayTotals(ctx)
	if err != nil {
		return nil, err
	}

	switch s.strategy {
	case StrategyCurated:
		tracks = rankCurated(tracks)
	default:
		tracks = rankDerived(tracks)
	}
	if len(tracks) > topTracksLimit {
		tracks = tracks[:topTracksLimit]
	}

	if s.cache != nil {
		if payload, err := json.Marshal(tracks); err == nil {
			s.cache.Set(ctx, topTracksCacheKey, payload, s.cacheTTL)
		}
	}
	return tracks, nil
}

// rankDerived orders by aggregated play count descending; ties break by track
// identifier ascending so the ordering is reproducible.
func rankDerived(tracks []domain.TrackPlays) []domain.TrackPlays {
	sort.SliceStable(tracks, func(i, j int) bool {
		if tracks[i].TotalPlays != tracks[j].TotalPlays {
			return tracks[i].TotalPlays > tracks[j].TotalPlays
		}
		return tracks[i].ID.String() < tracks[j].ID.String()
	})
	return tracks
}

// rankCurated keeps only tracks with an assigned chart position, ascending.
// Absence means unranked, not rank zero; unranked tracks are excluded from
// the public view.
func rankCurated(tracks []domain.TrackPlays) []domain.TrackPlays {
	ranked := make([]domain.TrackPlays, 0, len(tracks))
	for _, t := range tracks {
		if t.ChartPosition != nil {
			ranked = append(ranked, t)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].ChartPosition < *ranked[j].ChartPosition
	})
	return ranked
}

func (s *rankingService) AdminCatalog(ctx context.Context, p domain.Principal, filter domain.TrackFilter) ([]domain.Track, error) {
	if !p.Authenticated {
		return nil, domain.ErrUnauthenticated
	}
	if !p.Admin {
		return nil, domain.ErrForbidden
	}

	tracks, err := s.trackRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(tracks, func(i, j int) bool {
		return chartPositionOrSentinel(tracks[i]) < chartPositionOrSentinel(tracks[j])
	})
	return tracks, nil
}

func chartPositionOrSentinel(t domain.Track) int {
	if t.ChartPosition != nil {
		return *t.ChartPosition
	}
	return unrankedSentinel
}

func (s *rankingService) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Del(ctx, topTracksCacheKey).Err()
}
