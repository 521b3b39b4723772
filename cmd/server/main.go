// Package main is the entry point for the reporting API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/klauspost/compress/gzhttp"

	"bizreport/internal/domain/auth"
	"bizreport/internal/domain/reports"
	v1 "bizreport/internal/infrastructure/http/v1"
	"bizreport/internal/infrastructure/config"
	"bizreport/internal/infrastructure/metrics"
	"bizreport/internal/infrastructure/storage/postgres"
	"bizreport/internal/infrastructure/storage/postgres/report_repo"
	"bizreport/pkg/logger"
)

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Infow("starting bizreport server", "env", cfg.App.Env)

	// --- Database ---
	poolCfg := postgres.DefaultPoolConfig(cfg.Database.DSN)
	poolCfg.ApplicationName = cfg.App.Name
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.Database.MaxConnIdleTime

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	pool.LogStats(logger.WithLogger(ctx, log))

	txm := postgres.NewTxManager(pool)

	// --- Metrics ---
	var m *metrics.Metrics
	reportOpts := []reports.Option{}
	if cfg.Metrics.Enabled {
		m = metrics.New()
		m.RegisterPool(func() (int32, int32, int32) {
			s := pool.Stats()
			return s.AcquiredConns, s.IdleConns, s.TotalConns
		})
		reportOpts = append(reportOpts, reports.WithRecorder(m))
	}

	// --- Services ---
	reportService := reports.NewService(report_repo.NewReportRepo(txm), reportOpts...)

	jwtCfg := auth.DefaultJWTConfig(cfg.JWT.Secret)
	jwtCfg.Issuer = cfg.JWT.Issuer
	jwtCfg.AccessTokenTTL = cfg.JWT.TokenTTL
	jwtService := auth.NewJWTService(jwtCfg)

	// --- Router ---
	var handler http.Handler = v1.NewRouter(v1.RouterConfig{
		Logger:       log,
		JWTValidator: jwtService,
		Reports:      reportService,
		DB:           pool,
		Metrics:      m,
		MetricsPath:  cfg.Metrics.Path,
	})
	if cfg.HTTP.Gzip {
		handler = gzhttp.GzipHandler(handler)
	}

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Infow("server starting", "port", cfg.HTTP.Port, "gzip", cfg.HTTP.Gzip)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
