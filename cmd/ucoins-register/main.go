// Command ucoins-register creates a user and a customer profile for every
// subject of a ucoins-parse report and stores their replenishments and
// write-offs as balance operations. Subjects that cannot be stored are
// written to RegisterErrors.json next to the report.
//
// Flags:
//
//	--app-config  shared config YAML (log, database); falls back to $UCOINS_CONFIG
//	--config      path to ucoins-register config YAML (optional; falls back to env)
//	--report      report file (.json or .yaml), overrides report_path
//	--operator    user ID recorded as the admin of every balance operation
//	--dry-run     validate the report without DB writes
//	--migrate     apply pending migrations before registering
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ucoins-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ucoins-backend/internal/adapter/postgres/customer"
	"github.com/heartmarshall/ucoins-backend/internal/adapter/report"
	"github.com/heartmarshall/ucoins-backend/internal/app"
	"github.com/heartmarshall/ucoins-backend/internal/app/registrar"
	"github.com/heartmarshall/ucoins-backend/internal/config"
	"github.com/heartmarshall/ucoins-backend/migrations"
	"github.com/heartmarshall/ucoins-backend/pkg/ctxutil"
)

func main() {
	appConfigPath := flag.String("app-config", "", "path to shared config YAML")
	configPath := flag.String("config", "", "path to ucoins-register config YAML")
	reportPath := flag.String("report", "", "report file written by ucoins-parse")
	operator := flag.String("operator", "", "user ID of the operator running the import")
	dryRun := flag.Bool("dry-run", false, "validate the report without DB writes")
	migrate := flag.Bool("migrate", false, "apply pending migrations first")
	flag.Parse()

	appCfg, err := config.Load(*appConfigPath)
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	cfg, err := registrar.LoadConfig(*configPath)
	if err != nil {
		logger.Error("load register config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *reportPath != "" {
		cfg.ReportPath = *reportPath
	}
	if *dryRun {
		cfg.DryRun = true
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid register config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()

	runID := uuid.NewString()
	ctx = ctxutil.WithRunID(ctx, runID)
	if *operator != "" {
		id, err := uuid.Parse(*operator)
		if err != nil {
			logger.Error("invalid operator id", slog.String("operator", *operator), slog.String("error", err.Error()))
			os.Exit(1)
		}
		ctx = ctxutil.WithOperatorID(ctx, id)
	}

	reports, err := report.ReadReports(cfg.ReportPath)
	if err != nil {
		logger.Error("read report", slog.String("path", cfg.ReportPath), slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("ucoins-register started",
		slog.String("run_id", runID),
		slog.String("version", app.BuildVersion()),
		slog.String("report", cfg.ReportPath),
		slog.Int("subjects", len(reports)))

	out := report.NewWriter(cfg.Indent)
	if cfg.DryRun {
		// A dry run never touches the store, so no connection is opened.
		logger.Info("dry-run mode: no DB writes")
		if _, err := registrar.Run(ctx, cfg, reports, nil, nil, out, logger); err != nil {
			logger.Error("dry run failed", slog.String("run_id", runID), slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	if err := appCfg.Database.Validate(); err != nil {
		logger.Error("invalid database config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *migrate {
		applied, err := postgres.Migrate(ctx, appCfg.Database.DSN, migrations.FS)
		if err != nil {
			logger.Error("apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	// Connect to DB.
	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	repo := customer.New(pool)

	if _, err := registrar.Run(ctx, cfg, reports, repo, txm, out, logger); err != nil {
		logger.Error("registration failed", slog.String("run_id", runID), slog.String("error", err.Error()))
		os.Exit(1)
	}
}
