package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/tokenvote-labs/tokenvote-backend/internal/audit"
	"github.com/tokenvote-labs/tokenvote-backend/internal/db"
	"github.com/tokenvote-labs/tokenvote-backend/internal/metrics"
	roundrepo "github.com/tokenvote-labs/tokenvote-backend/internal/round/repository/postgres"
	roundservice "github.com/tokenvote-labs/tokenvote-backend/internal/round/service"
	"github.com/tokenvote-labs/tokenvote-backend/internal/transport"
	vestingrepo "github.com/tokenvote-labs/tokenvote-backend/internal/vesting/repository/postgres"
	vestingservice "github.com/tokenvote-labs/tokenvote-backend/internal/vesting/service"
	"github.com/tokenvote-labs/tokenvote-backend/internal/vesting/submitter"
)

type config struct {
	ListenAddr     string        `long:"listen-addr" env:"TOKENVOTE_LISTEN_ADDR" description:"address for the HTTP API" default:":8080"`
	PostgresDSN    string        `long:"postgres-dsn" env:"TOKENVOTE_POSTGRES_DSN" description:"PostgreSQL DSN"`
	ClickhouseDSN  string        `long:"clickhouse-dsn" env:"TOKENVOTE_CLICKHOUSE_DSN" description:"ClickHouse DSN for the audit log"`
	SignerURL      string        `long:"signer-url" env:"TOKENVOTE_SIGNER_URL" description:"signer service URL for claim transfers"`
	SignerTimeout  time.Duration `long:"signer-timeout" env:"TOKENVOTE_SIGNER_TIMEOUT" description:"HTTP timeout for signer requests" default:"30s"`
	AuditFlushSize int           `long:"audit-flush-size" env:"TOKENVOTE_AUDIT_FLUSH_SIZE" description:"audit events per batch" default:"500"`
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

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("api failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	gormDB, err := db.Open(cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	if err := db.AutoMigrate(gormDB); err != nil {
		return fmt.Errorf("migrate postgres schema: %w", err)
	}

	auditRepo, err := audit.NewRepository(cfg.ClickhouseDSN, metrics.NewAuditRepository())
	if err != nil {
		return fmt.Errorf("init audit repository: %w", err)
	}
	defer func() {
		_ = auditRepo.Close()
	}()

	auditWriter := audit.NewWriter(logger, auditRepo, audit.WriterOptions{
		FlushSize: cfg.AuditFlushSize,
	})
	auditWriter.Start(ctx)
	defer auditWriter.Stop()

	roundRepository, err := roundrepo.NewRepository(gormDB, metrics.NewRoundRepository())
	if err != nil {
		return fmt.Errorf("init round repository: %w", err)
	}
	roundSvc, err := roundservice.NewService(roundRepository, nil, auditWriter, logger)
	if err != nil {
		return fmt.Errorf("init round service: %w", err)
	}

	vestingRepository, err := vestingrepo.NewRepository(gormDB, metrics.NewVestingRepository())
	if err != nil {
		return fmt.Errorf("init vesting repository: %w", err)
	}
	claimSubmitter, err := submitter.NewHTTPSubmitter(cfg.SignerURL, cfg.SignerTimeout, logger)
	if err != nil {
		return fmt.Errorf("init claim submitter: %w", err)
	}
	claimSvc, err := vestingservice.NewClaimService(vestingRepository, claimSubmitter, auditWriter, logger)
	if err != nil {
		return fmt.Errorf("init claim service: %w", err)
	}
	adminSvc, err := vestingservice.NewAdminService(vestingRepository, auditWriter, logger)
	if err != nil {
		return fmt.Errorf("init vesting admin service: %w", err)
	}
	exportSvc, err := vestingservice.NewExportService(vestingRepository, logger)
	if err != nil {
		return fmt.Errorf("init export service: %w", err)
	}

	app := transport.NewServer(
		transport.NewRoundHandler(roundSvc, auditRepo, logger),
		transport.NewVestingHandler(claimSvc, adminSvc, exportSvc, logger),
		logger,
	)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting http server", zap.String("addr", cfg.ListenAddr))
	if err := app.Listen(cfg.ListenAddr); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}
