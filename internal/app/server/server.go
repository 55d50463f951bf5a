package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hrdash/internal/domain/dashboard"
	"hrdash/internal/domain/hr"
	"hrdash/internal/platform/config"
	"hrdash/internal/platform/db"
	"hrdash/internal/platform/fixtures"
	"hrdash/internal/platform/jobs"
	"hrdash/internal/platform/logger"
	"hrdash/internal/platform/metrics"
	"hrdash/internal/transport/http/api"
	dashboardhandler "hrdash/internal/transport/http/handlers/dashboard"
	"hrdash/internal/transport/http/middleware"
)

const readyTimeout = 2 * time.Second

type App struct {
	Config  config.Config
	Logger  *zap.Logger
	Service *dashboard.Service
	Metrics *metrics.Collector
	Router  http.Handler

	close func()
}

// New wires the store, dashboard service and router. Postgres is used when
// DATABASE_URL is set; otherwise the fixture dataset is served.
func New(ctx context.Context, cfg config.Config, base *zap.Logger) (*App, error) {
	if base == nil {
		base = zap.NewNop()
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	store, closeStore, err := openStore(ctx, cfg, base)
	if err != nil {
		return nil, err
	}

	svc := dashboard.NewService(store,
		dashboard.WithLocation(loc),
		dashboard.WithReviewThreshold(cfg.ReviewDueDays),
		dashboard.WithLogger(logger.Named(base, "dashboard")),
	)
	collector := metrics.New()

	return &App{
		Config:  cfg,
		Logger:  base,
		Service: svc,
		Metrics: collector,
		Router:  NewRouter(cfg, base, svc, collector),
		close:   closeStore,
	}, nil
}

func openStore(ctx context.Context, cfg config.Config, base *zap.Logger) (hr.StoreAPI, func(), error) {
	log := logger.Named(base, "store")
	if cfg.DatabaseURL == "" {
		ds, err := fixtures.Load(cfg.FixturesPath)
		if err != nil {
			return nil, nil, fmt.Errorf("load fixtures: %w", err)
		}
		log.Info("serving fixture dataset",
			zap.String("path", cfg.FixturesPath),
			zap.Int("employees", len(ds.Employees)),
		)
		return fixtures.NewStore(ds), func() {}, nil
	}

	if cfg.RunMigrations {
		if err := db.Migrate(cfg.DatabaseURL); err != nil {
			return nil, nil, err
		}
		log.Info("migrations applied")
	}

	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	if cfg.SeedFixtures {
		ds, err := fixtures.Load(cfg.FixturesPath)
		if err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("load fixtures: %w", err)
		}
		seeded, err := db.Seed(ctx, pool, ds)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info("seed finished", zap.Bool("seeded", seeded))
	}

	return hr.NewStore(pool), pool.Close, nil
}

// NewRouter builds the HTTP surface over svc.
func NewRouter(cfg config.Config, base *zap.Logger, svc *dashboard.Service, collector *metrics.Collector) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger.Named(base, "http")))
	router.Use(middleware.Recoverer(logger.Named(base, "recoverer")))
	router.Use(middleware.SecureHeaders(cfg.IsProduction()))
	router.Use(middleware.Metrics(collector))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()
		if err := svc.Ping(ctx); err != nil {
			http.Error(w, "store not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	handler := dashboardhandler.NewHandler(svc, logger.Named(base, "handlers.dashboard"))
	router.Route("/api/v1", handler.RegisterRoutes)

	return router
}

// Run serves until ctx is cancelled, then drains requests and the scheduler.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Config.Addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var sched *jobs.Scheduler
	if a.Config.ReviewDigestSchedule != "" {
		loc, err := a.Config.Location()
		if err != nil {
			return err
		}
		sched, err = jobs.NewScheduler(a.Config.ReviewDigestSchedule, loc, a.Service, logger.Named(a.Logger, "scheduler"))
		if err != nil {
			return err
		}
		if err := sched.Start(); err != nil {
			return err
		}
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("server listening", zap.String("addr", a.Config.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var serveErr error
	select {
	case serveErr = <-errCh:
		a.Logger.Error("http server crashed", zap.Error(serveErr))
	case <-ctx.Done():
		a.Logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()

	if sched != nil {
		sched.Stop(shutdownCtx)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("graceful shutdown failed", zap.Error(err))
		return errors.Join(serveErr, err)
	}
	return serveErr
}

// Close releases the store connection pool, if any.
func (a *App) Close() {
	if a.close != nil {
		a.close()
	}
}
