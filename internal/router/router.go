package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sequemusic/backend/internal/handler"
	"github.com/sequemusic/backend/internal/middleware"
)

type Router struct {
	auth    *middleware.AuthMiddleware
	metrics func(http.Handler) http.Handler

	authHandler   *handler.AuthHandler
	userHandler   *handler.UserHandler
	artistHandler *handler.ArtistHandler
	genreHandler  *handler.GenreHandler
	trackHandler  *handler.TrackHandler
	ratingHandler *handler.RatingHandler
	streamHandler *handler.StreamHandler
	newsHandler   *handler.NewsHandler
	searchHandler *handler.SearchHandler
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	artistHandler *handler.ArtistHandler,
	genreHandler *handler.GenreHandler,
	trackHandler *handler.TrackHandler,
	ratingHandler *handler.RatingHandler,
	streamHandler *handler.StreamHandler,
	newsHandler *handler.NewsHandler,
	searchHandler *handler.SearchHandler,
) *Router {
	return &Router{
		auth:          auth,
		metrics:       middleware.PrometheusMiddleware,
		authHandler:   authHandler,
		userHandler:   userHandler,
		artistHandler: artistHandler,
		genreHandler:  genreHandler,
		trackHandler:  trackHandler,
		ratingHandler: ratingHandler,
		streamHandler: streamHandler,
		newsHandler:   newsHandler,
		searchHandler: searchHandler,
	}
}

func (r *Router) Setup() *http.ServeMux {
	mux := http.NewServeMux()

	// Health Check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.Handle("/metrics", promhttp.Handler())

	// Auth
	mux.HandleFunc("POST /api/v1/auth/register", r.authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", r.authHandler.Login)
	mux.Handle("GET /api/v1/auth/me", r.auth.RequireAuth(http.HandlerFunc(r.authHandler.Me)))

	// Public catalog reads. OptionalAuth lets admins see the unranked
	// catalog view on the track listing.
	mux.Handle("GET /api/v1/tracks", r.auth.OptionalAuth(http.HandlerFunc(r.trackHandler.List)))
	mux.HandleFunc("GET /api/v1/tracks/{id}", r.trackHandler.Get)
	mux.HandleFunc("GET /api/v1/tracks/{id}/ratings", r.ratingHandler.ListByTrack)
	mux.HandleFunc("GET /api/v1/tracks/{id}/streams", r.streamHandler.ListByTrack)
	mux.HandleFunc("GET /api/v1/artists", r.artistHandler.List)
	mux.HandleFunc("GET /api/v1/artists/{id}", r.artistHandler.Get)
	mux.HandleFunc("GET /api/v1/genres", r.genreHandler.List)
	mux.HandleFunc("GET /api/v1/genres/{id}", r.genreHandler.Get)
	mux.HandleFunc("GET /api/v1/news", r.newsHandler.List)
	mux.HandleFunc("GET /api/v1/news/latest", r.newsHandler.Latest)
	mux.HandleFunc("GET /api/v1/news/{id}", r.newsHandler.Get)
	mux.HandleFunc("GET /api/v1/search", r.searchHandler.Search)

	// Mutations
	mux.Handle("POST /api/v1/tracks", r.auth.RequireAuth(http.HandlerFunc(r.trackHandler.Create)))
	mux.Handle("PUT /api/v1/tracks/{id}", r.auth.RequireAuth(http.HandlerFunc(r.trackHandler.Update)))
	mux.Handle("DELETE /api/v1/tracks/{id}", r.auth.RequireAuth(http.HandlerFunc(r.trackHandler.Delete)))
	mux.Handle("PUT /api/v1/tracks/{id}/chart-position", r.auth.RequireAuth(http.HandlerFunc(r.trackHandler.SetChartPosition)))
	mux.Handle("PUT /api/v1/tracks/{id}/artists", r.auth.RequireAuth(http.HandlerFunc(r.trackHandler.AssociateArtists)))

	mux.Handle("POST /api/v1/artists", r.auth.RequireAuth(http.HandlerFunc(r.artistHandler.Create)))
	mux.Handle("PUT /api/v1/artists/{id}", r.auth.RequireAuth(http.HandlerFunc(r.artistHandler.Update)))
	mux.Handle("DELETE /api/v1/artists/{id}", r.auth.RequireAuth(http.HandlerFunc(r.artistHandler.Delete)))

	mux.Handle("POST /api/v1/genres", r.auth.RequireAuth(http.HandlerFunc(r.genreHandler.Create)))
	mux.Handle("PUT /api/v1/genres/{id}", r.auth.RequireAuth(http.HandlerFunc(r.genreHandler.Update)))
	mux.Handle("DELETE /api/v1/genres/{id}", r.auth.RequireAuth(http.HandlerFunc(r.genreHandler.Delete)))

	mux.Handle("POST /api/v1/news", r.auth.RequireAuth(http.HandlerFunc(r.newsHandler.Create)))
	mux.Handle("PUT /api/v1/news/{id}", r.auth.RequireAuth(http.HandlerFunc(r.newsHandler.Update)))
	mux.Handle("DELETE /api/v1/news/{id}", r.auth.RequireAuth(http.HandlerFunc(r.newsHandler.Delete)))

	mux.Handle("POST /api/v1/tracks/{id}/ratings", r.auth.RequireAuth(http.HandlerFunc(r.ratingHandler.Create)))
	mux.Handle("GET /api/v1/ratings/mine", r.auth.RequireAuth(http.HandlerFunc(r.ratingHandler.Mine)))
	mux.Handle("DELETE /api/v1/ratings/{id}", r.auth.RequireAuth(http.HandlerFunc(r.ratingHandler.Delete)))

	mux.Handle("POST /api/v1/tracks/{id}/streams", r.auth.RequireAuth(http.HandlerFunc(r.streamHandler.Create)))
	mux.Handle("DELETE /api/v1/streams/{id}", r.auth.RequireAuth(http.HandlerFunc(r.streamHandler.Delete)))

	mux.Handle("DELETE /api/v1/users/{id}", r.auth.RequireAuth(http.HandlerFunc(r.userHandler.Delete)))

	return mux
}

// Handler wraps the mux with request metrics.
func (r *Router) Handler() http.Handler {
	return r.metrics(r.Setup())
}
