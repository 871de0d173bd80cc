// Package dataset runs the lead-list cleansing pass: load a spreadsheet,
// normalize the "Job Title" and "Company Name" columns, then write the full
// normalized workbook and the reduced four-column CSV.
//
// Each input is processed in one synchronous pass. ProcessAll fans several
// inputs out over a bounded worker pool; inputs share no state.
package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cleanser/domain/core"
	domain "cleanser/domain/dataset"
	"cleanser/internal"
	"cleanser/internal/config"
	"cleanser/internal/errors"
	"cleanser/internal/normalize"
	"cleanser/ports"

	"golang.org/x/sync/errgroup"
)

// Target and output columns
const (
	JobTitleColumn    = "Job Title"
	CompanyNameColumn = "Company Name"
)

// ReducedColumns are written to the delimited output, in this order.
var ReducedColumns = []string{"Linkedin Url", "First Name", JobTitleColumn, CompanyNameColumn}

// Result describes one completed run
type Result struct {
	RunID            core.RunID
	Input            string
	InputHash        core.Hash // empty when the input could not be hashed
	FullOutput       string // email_<base>.xlsx
	ReducedOutput    string // LK_<base>.csv
	Rows             int
	TitlesChanged    int
	CompaniesChanged int
	Duration         time.Duration
}

// Processor handles dataset file processing
type Processor struct {
	store      ports.DatasetStore
	outputDir  string
	maxWorkers int
	logger     *internal.Logger
}

// NewProcessor creates a processor writing outputs into outputDir
func NewProcessor(store ports.DatasetStore, outputDir string) *Processor {
	cfg := config.Default()
	cfg.Paths.OutputDir = outputDir
	return NewProcessorWithConfig(store, cfg)
}

// NewProcessorWithConfig creates a processor from application configuration
func NewProcessorWithConfig(store ports.DatasetStore, cfg *config.Config) *Processor {
	if cfg == nil {
		cfg = config.Default()
	}
	outputDir := cfg.Paths.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	workers := cfg.Processing.MaxWorkers
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		store:      store,
		outputDir:  outputDir,
		maxWorkers: workers,
		logger:     cfg.Logger().WithComponent("DatasetProcessor"),
	}
}

// OutputPaths returns the full and reduced output paths for inputPath
func (p *Processor) OutputPaths(inputPath string) (full, reduced string) {
	base := BaseName(inputPath)
	return filepath.Join(p.outputDir, "email_"+base+".xlsx"),
		filepath.Join(p.outputDir, "LK_"+base+".csv")
}

// Process normalizes one input file and writes both outputs. Missing reduced
// columns are reported before anything is written; a failed second write
// leaves the first output on disk.
func (p *Processor) Process(ctx context.Context, inputPath string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithCode(errors.CodeCanceled, err, "processing canceled")
	}

	startTime := time.Now()
	result := &Result{RunID: core.NewRunID(), Input: inputPath}
	p.logger.Info("Starting run %s for file: %s", result.RunID, inputPath)

	ds, err := p.store.Load(inputPath)
	if err != nil {
		if core.IsInputError(err) {
			return nil, errors.WithCode(errors.CodeInvalidInput, err, fmt.Sprintf("failed to load %s", inputPath))
		}
		return nil, errors.Wrap(errors.IOError(inputPath, err), "failed to load dataset")
	}
	result.Rows = ds.Len()
	p.logger.Debug("load finished in %.2fms", msSince(startTime))

	if h, err := core.HashFile(inputPath); err == nil {
		result.InputHash = h
		p.logger.Debug("Input fingerprint %s", h.Short())
	}

	result.TitlesChanged = p.normalizeColumn(ds, JobTitleColumn, normalize.FormatJobTitle)
	result.CompaniesChanged = p.normalizeColumn(ds, CompanyNameColumn, normalize.FormatCompanyName)

	if missing := ds.MissingColumns(ReducedColumns...); len(missing) > 0 {
		return nil, errors.Wrapf(errors.MissingColumn(missing), "cannot build reduced output for %s", inputPath)
	}
	reduced, err := ds.Select(ReducedColumns...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to select reduced columns")
	}

	result.FullOutput, result.ReducedOutput = p.OutputPaths(inputPath)
	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return nil, errors.Wrap(errors.IOError(p.outputDir, err), "failed to create output directory")
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.WithCode(errors.CodeCanceled, err, "processing canceled before writing outputs")
	}
	writeStart := time.Now()
	if err := p.store.WriteFull(result.FullOutput, ds); err != nil {
		return nil, errors.Wrap(errors.IOError(result.FullOutput, err), "failed to write normalized workbook")
	}
	p.logger.Info("Wrote normalized workbook: %s", result.FullOutput)

	if err := ctx.Err(); err != nil {
		return nil, errors.WithCode(errors.CodeCanceled, err, "processing canceled before writing reduced output")
	}
	if err := p.store.WriteReduced(result.ReducedOutput, reduced); err != nil {
		return nil, errors.Wrap(errors.IOError(result.ReducedOutput, err), "failed to write reduced output")
	}
	p.logger.Info("Wrote filtered CSV: %s", result.ReducedOutput)
	p.logger.Debug("write finished in %.2fms", msSince(writeStart))

	result.Duration = time.Since(startTime)
	p.logger.Info("✅ Run %s complete: %d rows, %d titles and %d company names changed",
		result.RunID, result.Rows, result.TitlesChanged, result.CompaniesChanged)
	return result, nil
}

// ProcessAll processes several inputs with at most MaxWorkers in flight.
// The first failure cancels inputs that have not started writing; results
// of completed inputs are still returned.
func (p *Processor) ProcessAll(ctx context.Context, inputPaths []string) ([]*Result, error) {
	if err := p.checkDistinctOutputs(inputPaths); err != nil {
		return nil, err
	}

	results := make([]*Result, len(inputPaths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.maxWorkers)

	for i, path := range inputPaths {
		i, path := i, path
		g.Go(func() error {
			res, err := p.Process(gctx, path)
			if err != nil {
				p.logger.Error("❌ %s failed: %v", path, err)
				return err
			}
			results[i] = res
			return nil
		})
	}

	return results, g.Wait()
}

// checkDistinctOutputs rejects inputs that would write the same output files.
func (p *Processor) checkDistinctOutputs(inputPaths []string) error {
	seen := make(map[string]string, len(inputPaths))
	for _, path := range inputPaths {
		full, _ := p.OutputPaths(path)
		if prev, ok := seen[full]; ok {
			return errors.InvalidInput(fmt.Sprintf("%s and %s both write %s", prev, path, full))
		}
		seen[full] = path
	}
	return nil
}

func msSince(t time.Time) float64 {
	return float64(time.Since(t).Nanoseconds()) / 1e6
}

// normalizeColumn rewrites column in place and returns how many values changed.
func (p *Processor) normalizeColumn(ds *domain.Dataset, column string, fn func(domain.Value) domain.Value) int {
	changed := 0
	found := ds.MapColumn(column, func(v domain.Value) domain.Value {
		out := fn(v)
		if out.Text() != v.Text() {
			changed++
		}
		return out
	})
	if !found {
		p.logger.Warn("Column %q not present, skipping", column)
	}
	return changed
}

// BaseName returns the file name of path without directory or extension.
func BaseName(path string) string {
	name := filepath.Base(path)
	if base := strings.TrimSuffix(name, filepath.Ext(name)); base != "" {
		return base
	}
	return name
}
