package ucoins

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/ucoins-backend/internal/domain"
)

// Options configures a Parser.
type Options struct {
	Columns     Columns
	TotalMarker string
	// Workers > 1 splits the sheet into per-subject blocks and walks them
	// concurrently. The result is identical to a sequential walk.
	Workers int
}

// DefaultOptions returns the settings of the ucoins workbook.
func DefaultOptions() Options {
	return Options{
		Columns:     DefaultColumns(),
		TotalMarker: DefaultTotalMarker,
		Workers:     1,
	}
}

// Parser turns a transaction sheet into a RunResult.
type Parser struct {
	log   *slog.Logger
	index *NameIndex
	opts  Options
}

// NewParser creates a Parser resolving names through index.
func NewParser(log *slog.Logger, index *NameIndex, opts Options) *Parser {
	return &Parser{log: log, index: index, opts: opts}
}

// errNoSubjects is returned for a sheet that has rows but no subject row.
var errNoSubjects = fmt.Errorf("transaction sheet: no subject rows: %w", ErrEmptyTable)

// Parse reads the whole transaction sheet. It fails only when the sheet has
// no subject row or lacks a configured column; problems with single subjects
// or entries end up in the result.
func (p *Parser) Parse(ctx context.Context, sheet Sheet) (domain.RunResult, error) {
	rows := sheet.Rows()
	if len(rows) == 0 {
		return domain.RunResult{}, fmt.Errorf("transaction sheet: %w", ErrEmptyTable)
	}

	cols, err := locateColumns(sheet.Header(), p.opts.Columns)
	if err != nil {
		return domain.RunResult{}, fmt.Errorf("transaction sheet: %w", err)
	}

	if p.opts.Workers > 1 {
		return p.parseBlocks(ctx, rows, cols)
	}

	w := newWalker(p.index, p.opts.TotalMarker, p.log)
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return domain.RunResult{}, err
		}
		w.step(sheetRow(i), Classify(cols.cells(row), p.opts.TotalMarker))
	}
	if len(w.subjects) == 0 {
		return domain.RunResult{}, errNoSubjects
	}

	return assemble(w.subjects, w.warnings, p.log), nil
}

// block is a run of rows starting at a subject row.
type block struct {
	// first is the index of the block's first row in the data rows.
	first int
	rows  [][]string
}

// segment splits rows into per-subject blocks. Rows above the first subject
// row belong to no subject and are dropped, as the sequential walk does.
func segment(rows [][]string, cols columnIndex) []block {
	var blocks []block
	for i, row := range rows {
		if strings.TrimSpace(cell(row, cols.name)) != "" {
			blocks = append(blocks, block{first: i})
		}
		if len(blocks) > 0 {
			b := &blocks[len(blocks)-1]
			b.rows = append(b.rows, row)
		}
	}
	return blocks
}

type blockResult struct {
	subjects []subject
	warnings []domain.Warning
}

func (p *Parser) parseBlocks(ctx context.Context, rows [][]string, cols columnIndex) (domain.RunResult, error) {
	blocks := segment(rows, cols)
	if len(blocks) == 0 {
		return domain.RunResult{}, errNoSubjects
	}
	results := make([]blockResult, len(blocks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Workers)

	for i, b := range blocks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			w := newWalker(p.index, p.opts.TotalMarker, p.log)
			for j, row := range b.rows {
				w.step(sheetRow(b.first+j), Classify(cols.cells(row), p.opts.TotalMarker))
			}
			results[i] = blockResult{subjects: w.subjects, warnings: w.warnings}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.RunResult{}, err
	}

	var (
		subjects []subject
		warnings []domain.Warning
	)
	for _, r := range results {
		subjects = append(subjects, r.subjects...)
		warnings = append(warnings, r.warnings...)
	}

	p.log.Debug("parsed in blocks",
		slog.Int("blocks", len(blocks)),
		slog.Int("workers", p.opts.Workers),
	)
	return assemble(subjects, warnings, p.log), nil
}
