// Command ucoins-parse reconciles a ucoins transaction workbook against the
// employee reference workbook. It writes the per-subject report
// (result.json) and the list of subjects that could not be converted
// (ErrorList.json) to the output directory.
//
// Flags:
//
//	--app-config    shared config YAML (log, database); falls back to $UCOINS_CONFIG
//	--config        path to ucoins-parse config YAML (optional; falls back to env)
//	--transactions  transaction workbook, overrides transactions_path
//	--reference     reference workbook, overrides reference_path
//	--out           output directory, overrides output_dir
//	--workers       number of table segments walked in parallel
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

	"github.com/heartmarshall/ucoins-backend/internal/adapter/report"
	"github.com/heartmarshall/ucoins-backend/internal/adapter/xlsx"
	"github.com/heartmarshall/ucoins-backend/internal/app"
	"github.com/heartmarshall/ucoins-backend/internal/app/ucoins_parser"
	"github.com/heartmarshall/ucoins-backend/internal/config"
	"github.com/heartmarshall/ucoins-backend/pkg/ctxutil"
)

func main() {
	appConfigPath := flag.String("app-config", "", "path to shared config YAML")
	configPath := flag.String("config", "", "path to ucoins-parse config YAML")
	transactions := flag.String("transactions", "", "transaction workbook (.xlsx)")
	reference := flag.String("reference", "", "employee reference workbook (.xlsx)")
	outDir := flag.String("out", "", "output directory")
	workers := flag.Int("workers", 0, "number of parallel table segments")
	flag.Parse()

	// App config is only needed for logging here.
	appCfg, err := config.Load(*appConfigPath)
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	cfg, err := ucoins_parser.LoadConfig(*configPath)
	if err != nil {
		logger.Error("load parse config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *transactions != "" {
		cfg.TransactionsPath = *transactions
	}
	if *reference != "" {
		cfg.ReferencePath = *reference
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid parse config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()

	runID := uuid.NewString()
	ctx = ctxutil.WithRunID(ctx, runID)
	logger.Info("ucoins-parse started",
		slog.String("run_id", runID),
		slog.String("version", app.BuildVersion()),
		slog.String("transactions", cfg.TransactionsPath),
		slog.String("reference", cfg.ReferencePath))

	if _, err := ucoins_parser.Run(ctx, cfg, xlsx.Reader{}, report.NewWriter(cfg.Indent), logger); err != nil {
		logger.Error("parse failed", slog.String("run_id", runID), slog.String("error", err.Error()))
		os.Exit(1)
	}
}
