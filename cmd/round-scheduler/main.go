package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tokenvote-labs/tokenvote-backend/internal/audit"
	"github.com/tokenvote-labs/tokenvote-backend/internal/db"
	"github.com/tokenvote-labs/tokenvote-backend/internal/metrics"
	roundrepo "github.com/tokenvote-labs/tokenvote-backend/internal/round/repository/postgres"
	roundservice "github.com/tokenvote-labs/tokenvote-backend/internal/round/service"
)

type config struct {
	PostgresDSN   string `long:"postgres-dsn" env:"TOKENVOTE_POSTGRES_DSN" description:"PostgreSQL DSN"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"TOKENVOTE_CLICKHOUSE_DSN" description:"ClickHouse DSN for the audit log"`
	MetricsAddr   string `long:"metrics-addr" env:"TOKENVOTE_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.PostgresDSN == "" {
		logger.Fatal("PostgreSQL DSN is required")
	}
	if cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("round scheduler failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	gormDB, err := db.Open(cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}

	auditRepo, err := audit.NewRepository(cfg.ClickhouseDSN, metrics.NewAuditRepository())
	if err != nil {
		return fmt.Errorf("init audit repository: %w", err)
	}
	defer func() {
		_ = auditRepo.Close()
	}()

	auditWriter := audit.NewWriter(logger, auditRepo, audit.WriterOptions{})
	auditWriter.Start(ctx)
	defer auditWriter.Stop()

	repo, err := roundrepo.NewRepository(gormDB, metrics.NewRoundRepository())
	if err != nil {
		return fmt.Errorf("init round repository: %w", err)
	}
	svc, err := roundservice.NewService(repo, nil, auditWriter, logger)
	if err != nil {
		return fmt.Errorf("init round service: %w", err)
	}

	declaration, err := roundservice.NewDeclarationScheduler(repo, svc, metrics.NewRoundScheduler("declaration"), logger)
	if err != nil {
		return fmt.Errorf("init declaration scheduler: %w", err)
	}
	completion, err := roundservice.NewCompletionScheduler(repo, svc, metrics.NewRoundScheduler("completion"), logger)
	if err != nil {
		return fmt.Errorf("init completion scheduler: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return declaration.Run(ctx) })
	g.Go(func() error { return completion.Run(ctx) })
	return g.Wait()
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
