package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sequemusic/backend/internal/config"
	"github.com/sequemusic/backend/internal/database"
	"github.com/sequemusic/backend/internal/handler"
	"github.com/sequemusic/backend/internal/middleware"
	"github.com/sequemusic/backend/internal/repository"
	"github.com/sequemusic/backend/internal/router"
	"github.com/sequemusic/backend/internal/service"
	"github.com/sequemusic/backend/pkg/migration"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	logger.Info("Connecting to database...")
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("Database connected")

	if err := migration.AutoMigrate(cfg.Database.URL(), cfg.Server.MigrationsPath, logger); err != nil {
		logger.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	// The cache is optional: without redis the catalog still works, just
	// recomputes the top-tracks view on every request.
	var rankingOpts []service.RankingOption
	redisClient, err := database.NewRedis(cfg.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, running without top-tracks cache", "error", err)
	} else {
		defer redisClient.Close()
		rankingOpts = append(rankingOpts, service.WithRankingCache(redisClient, cfg.Ranking.CacheTTL))
	}

	strategy := service.StrategyDerived
	if cfg.Ranking.Strategy == string(service.StrategyCurated) {
		strategy = service.StrategyCurated
	}
	logger.Info("Ranking strategy selected", "strategy", string(strategy))

	userRepo := repository.NewUserRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	trackRepo := repository.NewTrackRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	streamRepo := repository.NewStreamRecordRepository(db)
	newsRepo := repository.NewNewsRepository(db)

	rankingService := service.NewRankingService(trackRepo, strategy, rankingOpts...)
	catalogService := service.NewCatalogService(artistRepo, genreRepo, trackRepo, service.WithCatalogCache(rankingService))
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiry)
	userService := service.NewUserService(userRepo)
	ratingService := service.NewRatingService(ratingRepo, trackRepo)
	streamService := service.NewStreamService(streamRepo, trackRepo, rankingService)
	newsService := service.NewNewsService(newsRepo, artistRepo)
	searchService := service.NewSearchService(artistRepo, trackRepo)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	appRouter := router.NewRouter(
		authMiddleware,
		handler.NewAuthHandler(authService, userService),
		handler.NewUserHandler(userService),
		handler.NewArtistHandler(catalogService),
		handler.NewGenreHandler(catalogService),
		handler.NewTrackHandler(catalogService, rankingService, ratingService, streamService),
		handler.NewRatingHandler(ratingService),
		handler.NewStreamHandler(streamService),
		handler.NewNewsHandler(newsService),
		handler.NewSearchHandler(searchService),
	)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: appRouter.Handler(),
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
	logger.Info("Server stopped")
}
