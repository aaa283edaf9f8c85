package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/grouponesailor/group6-tips-server/internal/adapter/redis/searchcache"
	"github.com/grouponesailor/group6-tips-server/internal/config"
	"github.com/grouponesailor/group6-tips-server/internal/domain"
	"github.com/grouponesailor/group6-tips-server/internal/service/search"
	"github.com/grouponesailor/group6-tips-server/internal/service/tip"
	"github.com/grouponesailor/group6-tips-server/internal/service/topic"
	"github.com/grouponesailor/group6-tips-server/internal/transport/middleware"
	"github.com/grouponesailor/group6-tips-server/internal/transport/rest"
)

// SearchCache stores search pages and is invalidated on every content write.
type SearchCache interface {
	Key(ctx context.Context, query string, limit, offset int) (string, error)
	Get(ctx context.Context, key string) (*domain.SearchPage, bool, error)
	Set(ctx context.Context, key string, page *domain.SearchPage) error
	Invalidate(ctx context.Context) error
}

// Services bundles the content services built on one backend.
type Services struct {
	Topics *topic.Service
	Tips   *tip.Service
	Search *search.Service
}

// NewServices wires the topic, tip and search services.
func NewServices(log *slog.Logger, cfg *config.Config, b *Backend, cache SearchCache) *Services {
	icons := topic.NewRandomIcons(cfg.Content.DefaultIcons)
	return &Services{
		Topics: topic.NewService(log, b.Topics, b.Tips, b.Tx, b.Locks, cache, icons, cfg.Content),
		Tips:   tip.NewService(log, b.Tips, b.Topics, b.Tx, b.Locks, cache, cfg.Content),
		Search: search.NewService(log, b.Topics, b.Tips, cache, cfg.Search),
	}
}

// NewHandler builds the HTTP handler with all routes and middleware. The
// returned stop func releases the rate limiter.
func NewHandler(log *slog.Logger, cfg *config.Config, svcs *Services, health map[string]rest.Pinger) (http.Handler, func()) {
	var (
		searchLimit middleware.Middleware
		stop        = func() {}
	)
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		searchLimit = limiter.Limit(cfg.RateLimit.SearchPerMinute)
		stop = limiter.Stop
	}

	mux := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(health, ReadBuildInfo().String()),
		Topics: rest.NewTopicHandler(svcs.Topics, log),
		Tips:   rest.NewTipHandler(svcs.Tips, log),
		Search: rest.NewSearchHandler(svcs.Search, log),
	}, searchLimit)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(log),
		middleware.Recovery(log),
		middleware.CORS(cfg.CORS),
	)(mux)

	return handler, stop
}

// Run is the application entry point. It loads configuration, opens the
// store and cache, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	build := ReadBuildInfo()
	logger.Info("starting application",
		slog.String("version", build.Version),
		slog.String("commit", build.Commit),
		slog.String("log_level", cfg.Log.Level),
		slog.String("database_driver", cfg.Database.Driver),
	)

	backend, err := OpenBackend(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer backend.Close()

	health := map[string]rest.Pinger{"database": backend.Pinger}

	var cache SearchCache = searchcache.Nop{}
	if cfg.Redis.Enabled() {
		rdb, err := searchcache.NewClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close() //nolint:errcheck
		redisCache := searchcache.New(rdb, cfg.Redis.CacheTTL)
		cache = redisCache
		health["cache"] = redisCache
		logger.Info("search cache enabled", slog.String("addr", cfg.Redis.Addr))
	}

	svcs := NewServices(logger, cfg, backend, cache)
	handler, stop := NewHandler(logger, cfg, svcs, health)
	defer stop()

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, log *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	log.Info("http server stopped")
	return nil
}
