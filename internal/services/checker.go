package services

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renesugar/gircheck/internal/checksum"
	"github.com/renesugar/gircheck/internal/exclude"
	"github.com/renesugar/gircheck/internal/extract"
	"github.com/renesugar/gircheck/internal/files/filelist"
	"github.com/renesugar/gircheck/internal/files/filesystem"
	"github.com/renesugar/gircheck/internal/gir"
	"github.com/renesugar/gircheck/internal/infotable"
	"github.com/renesugar/gircheck/internal/merge"
	"github.com/renesugar/gircheck/internal/output"
	"github.com/renesugar/gircheck/pkg/gircheck"
)

// CheckService drives one invocation: file list, exclusion registry,
// per-document parse/filter/extract on a bounded worker pool, and output.
// Safe for sequential reuse; do not share one Run across goroutines.
type CheckService struct {
	fs       filesystem.FileSystemProvider
	logger   gircheck.Logger
	checksum checksum.Calculator
}

// NewCheckService creates a CheckService. Panics on nil dependencies.
func NewCheckService(fs filesystem.FileSystemProvider, logger gircheck.Logger) *CheckService {
	if fs == nil {
		panic("fs cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &CheckService{
		fs:       fs,
		logger:   logger,
		checksum: checksum.New(),
	}
}

// Run executes the configured mode.
//
// Fatal conditions (usage, missing inputs, output failures, cancellation)
// return an error and may return a partial summary. Malformed documents are
// isolated: every other document is still processed and written, and the
// returned error wraps gircheck.ErrDocumentsFailed alongside a full summary.
func (s *CheckService) Run(ctx context.Context, cfg gircheck.RunConfig) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	summary := &Summary{
		Mode:     cfg.Mode,
		Output:   cfg.OutputDir,
		Started:  time.Now(),
		Excluded: exclude.Stats{},
	}
	defer func() { summary.Duration = time.Since(summary.Started) }()

	reg, err := exclude.Load(s.fs, exclude.Sources{
		Registered: cfg.ExcludeRegistered,
		GTypes:     cfg.ExcludeGTypes,
		Headers:    cfg.ExcludeHeaders,
	})
	if err != nil {
		return summary, err
	}
	summary.RegistrySizes = reg.Sizes()

	writer := output.NewWriter(s.fs, cfg.OutputDir, s.logger)

	if cfg.Mode == gircheck.ModeMerge {
		return summary, s.runMerge(ctx, cfg, reg, writer, summary)
	}
	return summary, s.runExtraction(ctx, cfg, reg, writer, summary)
}

func (s *CheckService) runExtraction(ctx context.Context, cfg gircheck.RunConfig, reg *exclude.Registry, writer *output.Writer, summary *Summary) error {
	strategy, err := extract.ForMode(cfg.Mode)
	if err != nil {
		return err
	}

	list, err := filelist.NewLoader(s.fs, cfg.WorkDir).Load(cfg.FileList)
	if err != nil {
		return err
	}
	summary.FileList = list.Source
	summary.SkippedEntries = list.Skipped
	for _, entry := range list.Skipped {
		s.logger.Verbose("Skipping non-GIR file list entry: %s", entry)
	}
	s.logger.Verbose("Loaded %d documents from %s (%d duplicates dropped)", list.Len(), list.Source, list.Duplicates)

	if cfg.Mode == gircheck.ModePassthrough {
		if err := output.CheckConflicts(cfg.OutputDir, list.Paths); err != nil {
			return err
		}
	}

	if err := writer.Prepare(); err != nil {
		return err
	}

	results, err := s.processAll(ctx, list.Paths, workerCount(cfg.Workers), reg, strategy, writer)
	if err != nil {
		return err
	}

	// single reduction point: results are folded in file list order
	var combined *infotable.Table
	if cfg.Mode.IsInfo() {
		kind, err := infotable.KindForMode(cfg.Mode)
		if err != nil {
			return err
		}
		combined = infotable.NewTable(kind)
	}

	for _, res := range results {
		summary.Documents = append(summary.Documents, res)
		if res.Err != nil {
			summary.Failed++
			s.logger.Error("%v", res.Err)
			continue
		}
		summary.Excluded.Add(res.Excluded)
		summary.Unregistered += res.Unregistered
		for _, w := range res.Warnings {
			summary.Warnings++
			s.logger.Warn("%v", w)
		}
		if res.Artifact != nil {
			summary.Artifacts = append(summary.Artifacts, *res.Artifact)
		}
		if combined != nil && res.table != nil {
			combined.Append(res.table)
		}
	}

	if combined != nil && list.Len() > 0 {
		artifact, err := writer.WriteTable(ctx, combined)
		if err != nil {
			return err
		}
		summary.Rows = combined.Len()
		summary.Artifacts = append(summary.Artifacts, artifact)
	}

	s.logger.Info("%s: %d documents, %d failed, %d entities excluded, %d warnings",
		cfg.Mode, len(results), summary.Failed, summary.Excluded.Total(), summary.Warnings)

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d documents could not be processed: %w", summary.Failed, len(results), gircheck.ErrDocumentsFailed)
	}
	return nil
}

// processAll runs every document on the worker pool. Each worker writes only
// its own slot; a write failure or cancellation stops scheduling.
func (s *CheckService) processAll(ctx context.Context, paths []string, workers int, reg *exclude.Registry, strategy extract.Strategy, writer *output.Writer) ([]*DocumentResult, error) {
	results := make([]*DocumentResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		i, path := i, path
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := s.processDocument(path, reg, strategy)
			results[i] = res
			if res.Err == nil && res.document != nil {
				artifact, err := writer.WriteDocument(gctx, res.document)
				if err != nil {
					return err
				}
				res.Artifact = &artifact
				res.document = nil
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("run cancelled: %w", err)
	}
	return results, nil
}

// processDocument parses, filters and extracts one document.
// Every failure is recorded on the result, never returned.
func (s *CheckService) processDocument(path string, reg *exclude.Registry, strategy extract.Strategy) *DocumentResult {
	res := &DocumentResult{Path: path}

	content, err := s.fs.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("failed to read %s: %w", path, err)
		return res
	}
	res.Checksum = s.checksum.CalculateRaw(content)
	res.NormalizedChecksum = s.checksum.CalculateNormalized(content)

	doc, err := gir.Parse(content, path)
	if err != nil {
		res.Err = err
		return res
	}
	s.logger.Verbose("Parsed %s: %d namespaces, %d entities", path, len(doc.Namespaces), len(doc.Entities()))

	res.Excluded = exclude.Filter(doc, reg)
	res.Entities = len(doc.Entities())
	res.Warnings = doc.Unresolved()

	out := strategy.Extract(doc)
	res.Unregistered = out.Unregistered
	res.document = out.Document
	res.table = out.Table
	if out.Table != nil {
		res.Rows = out.Table.Len()
	}
	return res
}

func (s *CheckService) runMerge(ctx context.Context, cfg gircheck.RunConfig, reg *exclude.Registry, writer *output.Writer, summary *Summary) error {
	tables := make([]*infotable.Table, 0, len(cfg.MergeInputs))
	for _, path := range cfg.MergeInputs {
		t, err := infotable.ReadFile(s.fs, path)
		if err != nil {
			return err
		}
		s.logger.Verbose("Loaded %s table %s (%d rows)", t.Kind, path, t.Len())
		tables = append(tables, t)
		summary.MergeInputs = append(summary.MergeInputs, MergeInput{
			Path: path,
			Kind: t.Kind,
			Rows: t.Len(),
		})
	}

	res, err := merge.Merge(tables, reg)
	if err != nil {
		return err
	}
	summary.Rows = len(res.Records)
	summary.MergeExcluded = res.Excluded
	summary.Excluded[exclude.ReasonGType] += len(res.Excluded)

	if err := writer.Prepare(); err != nil {
		return err
	}
	artifact, err := writer.WriteMerged(ctx, res, cfg.MergeInputs[len(cfg.MergeInputs)-1])
	if err != nil {
		return err
	}
	summary.Artifacts = append(summary.Artifacts, artifact)

	s.logger.Info("mergeinfo: %d tables, %d records, %d keys excluded", len(tables), len(res.Records), len(res.Excluded))
	return nil
}

func workerCount(n int) int {
	if n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// IsDocumentFailure reports whether err only signals skipped documents,
// meaning every other output was written.
func IsDocumentFailure(err error) bool {
	return errors.Is(err, gircheck.ErrDocumentsFailed)
}
