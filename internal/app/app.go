package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/boxdrop-backend/internal/action"
	"github.com/heartmarshall/boxdrop-backend/internal/adapter/postgres"
	boxrepo "github.com/heartmarshall/boxdrop-backend/internal/adapter/postgres/box"
	linkrepo "github.com/heartmarshall/boxdrop-backend/internal/adapter/postgres/link"
	submissionrepo "github.com/heartmarshall/boxdrop-backend/internal/adapter/postgres/submission"
	"github.com/heartmarshall/boxdrop-backend/internal/adapter/redis"
	"github.com/heartmarshall/boxdrop-backend/internal/auth"
	"github.com/heartmarshall/boxdrop-backend/internal/config"
	"github.com/heartmarshall/boxdrop-backend/internal/revalidate"
	boxsvc "github.com/heartmarshall/boxdrop-backend/internal/service/box"
	linksvc "github.com/heartmarshall/boxdrop-backend/internal/service/link"
	submissionsvc "github.com/heartmarshall/boxdrop-backend/internal/service/submission"
	"github.com/heartmarshall/boxdrop-backend/internal/transport/middleware"
	"github.com/heartmarshall/boxdrop-backend/internal/transport/rest"
)

const readHeaderTimeout = 5 * time.Second

// Run connects the backing stores, serves HTTP until ctx is cancelled and
// then drains in-flight requests within the configured shutdown timeout.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.InfoContext(ctx, "starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("strict_ownership", cfg.Actions.StrictOwnership),
		slog.Bool("redis_enabled", cfg.Redis.Enabled),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	components := []rest.Component{{Name: "database", Pinger: pool}}
	sinks := []revalidate.Sink{revalidate.NewLogSink(logger)}

	if cfg.Redis.Enabled {
		rdb, err := redis.NewClient(ctx, redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close() //nolint:errcheck

		sinks = append(sinks, redis.NewInvalidator(rdb, cfg.Redis.Channel, cfg.Redis.KeyPrefix, logger))
		components = append(components, rest.Component{
			Name:   "redis",
			Pinger: rest.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() }),
		})
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := NewHandler(cfg, logger, Deps{
		Pool:     pool,
		Sinks:    sinks,
		Health:   components,
		Registry: registry,
		Limiter:  limiter,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.InfoContext(gctx, "http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.InfoContext(shutdownCtx, "shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.InfoContext(ctx, "application stopped")
	return nil
}

// Deps are the long-lived resources the HTTP handler is built on. Run owns
// their lifecycle.
type Deps struct {
	Pool     *pgxpool.Pool
	Sinks    []revalidate.Sink
	Health   []rest.Component
	Registry *prometheus.Registry
	Limiter  *middleware.RateLimiter
}

// NewHandler wires repositories, services and the action gateway behind the
// router and the middleware chain.
func NewHandler(cfg *config.Config, logger *slog.Logger, d Deps) http.Handler {
	notifier := revalidate.NewNotifier(logger, d.Sinks...)
	gateway := newGateway(cfg, logger, d.Pool, notifier, action.NewMetrics(d.Registry))
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	return rest.NewRouter(rest.RouterDeps{
		Actions: rest.NewActionHandler(gateway, auth.Sessions{}, logger),
		Health:  rest.NewHealthHandler(BuildVersion(), d.Health...),
		Metrics: promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}),
		Global: []middleware.Middleware{
			middleware.Recovery(logger),
			middleware.RequestID,
			middleware.ClientIP(cfg.Server.TrustProxy),
			middleware.Logger(logger),
			middleware.CORS(cfg.CORS),
		},
		Auth:            middleware.Auth(jwtManager),
		OptionalAuth:    middleware.OptionalAuth(jwtManager),
		SubmissionLimit: d.Limiter.Limit(cfg.RateLimit.SubmissionsPerMinute),
	})
}

func newGateway(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	notifier *revalidate.Notifier,
	metrics *action.Metrics,
) *action.Gateway {
	txManager := postgres.NewTxManager(pool)

	boxes := boxrepo.New(pool)
	links := linkrepo.New(pool)
	submissions := submissionrepo.New(pool)

	strict := cfg.Actions.StrictOwnership

	return action.NewGateway(
		logger,
		boxsvc.NewService(logger, boxes, links, submissions, txManager, notifier, strict),
		submissionsvc.NewService(logger, submissions, boxes, links, txManager, notifier, strict),
		linksvc.NewService(logger, links, boxes, txManager, notifier),
		metrics,
	)
}
