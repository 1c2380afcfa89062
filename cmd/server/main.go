package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"mission-service/internal/domain/repository"
	"mission-service/internal/infrastructure/config"
	"mission-service/internal/infrastructure/persistence"
	"mission-service/internal/infrastructure/router"
	"mission-service/internal/interface/api"
	storeRepo "mission-service/internal/interface/repository"
	"mission-service/internal/usecase"
	"mission-service/pkg/logger"
	"mission-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Default logger until the configured one exists; empty options cannot fail
	bootLog, _ := logger.NewLogger(logger.Options{})

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		bootLog.Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log, err := logger.NewLogger(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		bootLog.Fatal("Failed to create logger", "error", err)
	}
	defer log.Sync()
	log.Info("Starting Mission Service", "version", cfg.AppVersion, "store", cfg.StoreDriver)

	// Set up context with cancellation on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Set up mission storage
	missionRepo, closeStore, err := openMissionStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to open mission store", "error", err)
	}
	defer closeStore()

	m := metrics.NewMetrics(cfg.MetricsNamespace, prometheus.DefaultRegisterer)
	missionService := usecase.NewMissionService(missionRepo, log, m)

	e := router.New(router.Options{
		Logger:         log,
		Metrics:        m,
		MetricsHandler: promhttp.Handler(),
		Missions:       api.NewMissionHandler(missionService),
		AllowOrigins:   cfg.AllowOrigins,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down HTTP server")

		// Graceful shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("HTTP server error", "error", err)
	}

	log.Info("Mission Service stopped")
}

// openMissionStore connects the configured store and returns its repository
// together with the function that releases it.
func openMissionStore(ctx context.Context, cfg *config.Config, log logger.Logger) (repository.MissionRepository, func(), error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		log.Info("Connecting to PostgreSQL")
		db, err := persistence.NewPostgresDB(ctx, cfg.PostgresURI)
		if err != nil {
			return nil, nil, err
		}
		repo := storeRepo.NewGormMissionRepository(db)
		if err := repo.Migrate(ctx); err != nil {
			persistence.CloseGormDB(db)
			return nil, nil, err
		}
		return repo, func() {
			if err := persistence.CloseGormDB(db); err != nil {
				log.Error("PostgreSQL close error", "error", err)
			}
		}, nil

	case config.StoreMemory:
		log.Warn("Using in-memory mission store, data is lost on exit")
		return storeRepo.NewMemoryMissionRepository(), func() {}, nil

	default:
		log.Info("Connecting to MongoDB")
		client, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
		if err != nil {
			return nil, nil, err
		}
		repo := storeRepo.NewMongoMissionRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Warn("Failed to create mission indexes", "error", err)
		}
		return repo, func() {
			// Disconnect from MongoDB
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error("MongoDB disconnect error", "error", err)
			}
		}, nil
	}
}
