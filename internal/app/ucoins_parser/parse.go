// Package ucoins_parser runs one reconciliation of a ucoins transaction
// workbook against the employee reference workbook and writes the reports.
package ucoins_parser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/ucoins-backend/internal/domain"
	"github.com/heartmarshall/ucoins-backend/internal/ucoins"
)

// ErrBadInput is returned when an input workbook path is unusable.
var ErrBadInput = errors.New("bad input file")

// sheetReader opens one worksheet of a workbook.
type sheetReader interface {
	ReadSheet(path, sheet string) (ucoins.Sheet, error)
}

// reportWriter stores an encoded report.
type reportWriter interface {
	WriteFile(path string, v any) error
}

// Result holds run statistics and the paths written.
type Result struct {
	Converted    int
	Failed       int
	Warnings     int
	ReportPath   string
	ErrorsPath   string
	WarningsPath string
}

// Run reconciles the transaction workbook against the reference workbook.
// Per-subject problems end up in the error report; only unusable inputs,
// a missing column, an empty table or a write failure abort the run.
func Run(ctx context.Context, cfg *Config, sheets sheetReader, out reportWriter, log *slog.Logger) (Result, error) {
	for _, path := range []string{cfg.ReferencePath, cfg.TransactionsPath} {
		if err := checkWorkbook(path); err != nil {
			return Result{}, err
		}
	}

	ref, err := sheets.ReadSheet(cfg.ReferencePath, cfg.ReferenceSheet)
	if err != nil {
		return Result{}, fmt.Errorf("read reference table: %w", err)
	}
	names, err := ucoins.ReferenceNames(ref, cfg.ReferenceColumn)
	if err != nil {
		return Result{}, err
	}
	index, indexWarnings, err := ucoins.BuildNameIndex(names, cfg.IndexOptions())
	if err != nil {
		return Result{}, fmt.Errorf("build name index: %w", err)
	}
	for _, w := range indexWarnings {
		log.WarnContext(ctx, "reference row",
			slog.Int("row", w.Row),
			slog.String("subject", w.Subject),
			slog.String("problem", w.Message))
	}
	log.InfoContext(ctx, "name index built",
		slog.Int("names", index.Len()),
		slog.Int("warnings", len(indexWarnings)))

	tx, err := sheets.ReadSheet(cfg.TransactionsPath, cfg.TransactionsSheet)
	if err != nil {
		return Result{}, fmt.Errorf("read transaction table: %w", err)
	}

	res, err := ucoins.NewParser(log, index, cfg.ParserOptions()).Parse(ctx, tx)
	if err != nil {
		return Result{}, fmt.Errorf("parse transaction table: %w", err)
	}
	res.Warnings = append(indexWarnings, res.Warnings...)

	result := Result{
		Converted:  len(res.Reports),
		Failed:     len(res.Errors),
		Warnings:   len(res.Warnings),
		ReportPath: filepath.Join(cfg.OutputDir, cfg.ResultFile),
		ErrorsPath: filepath.Join(cfg.OutputDir, cfg.ErrorsFile),
	}

	if err := out.WriteFile(result.ReportPath, res.Reports); err != nil {
		return result, fmt.Errorf("write report: %w", err)
	}
	if err := out.WriteFile(result.ErrorsPath, res.Errors); err != nil {
		return result, fmt.Errorf("write error list: %w", err)
	}
	if cfg.WarningsFile != "" {
		result.WarningsPath = filepath.Join(cfg.OutputDir, cfg.WarningsFile)
		warnings := res.Warnings
		if warnings == nil {
			warnings = []domain.Warning{}
		}
		if err := out.WriteFile(result.WarningsPath, warnings); err != nil {
			return result, fmt.Errorf("write warnings: %w", err)
		}
	}

	log.InfoContext(ctx, "ucoins-parse complete",
		slog.Int("converted", result.Converted),
		slog.Int("errors", result.Failed),
		slog.Int("warnings", result.Warnings),
		slog.String("report", result.ReportPath),
		slog.String("error_list", result.ErrorsPath),
	)
	return result, nil
}

// checkWorkbook rejects paths that are missing or not .xlsx files.
func checkWorkbook(path string) error {
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return fmt.Errorf("%w: %s: expected an .xlsx workbook", ErrBadInput, path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadInput, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrBadInput, path)
	}
	return nil
}
