// Package main is the entry point for the fleet fuel tracker API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/manigandan-posana/fuel/internal/config"
	"github.com/manigandan-posana/fuel/internal/handler"
	"github.com/manigandan-posana/fuel/internal/middleware"
	"github.com/manigandan-posana/fuel/internal/persist"
	"github.com/manigandan-posana/fuel/internal/repo"
	"github.com/manigandan-posana/fuel/internal/service"
	"github.com/manigandan-posana/fuel/migrations"
)

// maxBodySize caps request bodies at 1 MiB; the largest legitimate payload
// is a vehicle registration, which is far below that.
const maxBodySize = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog JSON handler writes machine-readable output suitable for log
	// aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Storage ----------------------------------------------------------
	adapter, cleanup, err := newAdapter(cfg)
	if err != nil {
		slog.Error("failed to set up storage", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	store, err := repo.Open(context.Background(), adapter)
	if err != nil {
		slog.Error("failed to load record store", "error", err)
		os.Exit(1)
	}
	slog.Info("record store loaded", "driver", cfg.StorageDriver)

	// --- Services ---------------------------------------------------------
	vehicles := repo.NewVehicleRepo(store)
	entries := repo.NewFuelEntryRepo(store)
	logs := repo.NewDailyLogRepo(store)
	suppliers := repo.NewSupplierRepo(store)

	vehicleSvc := service.NewVehicleService(vehicles, entries, logs)
	fuelSvc := service.NewFuelService(vehicles, suppliers, entries)
	dailyLogSvc := service.NewDailyLogService(vehicles, logs)
	supplierSvc := service.NewSupplierService(suppliers)
	analyticsSvc := service.NewAnalyticsService(vehicles, entries, logs)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodySize))

	server := handler.NewServer(vehicleSvc, fuelSvc, dailyLogSvc, supplierSvc, analyticsSvc)
	r.Mount("/", server.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// newAdapter builds the persistence adapter selected by the config, running
// migrations first for the postgres driver. The returned cleanup closes any
// resources the adapter holds.
func newAdapter(cfg config.Config) (persist.Adapter, func(), error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		if err := migrate(cfg.DatabaseURL); err != nil {
			return nil, nil, err
		}
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := pool.Ping(context.Background()); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return persist.NewPostgres(pool), pool.Close, nil

	default:
		adapter, err := persist.NewFile(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return adapter, func() {}, nil
	}
}

// migrate applies the embedded goose migrations against the database.
func migrate(databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	results, err := provider.Up(context.Background())
	if err != nil {
		return err
	}
	for _, res := range results {
		slog.Info("migration applied", "source", res.Source.Path)
	}
	return nil
}
