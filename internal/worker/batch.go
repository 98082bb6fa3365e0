package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ppiankov/entitlement/internal/model"
	"github.com/ppiankov/entitlement/internal/pipeline"
)

// Evaluator defines the interface for evaluating a case file
type Evaluator interface {
	EvaluateFile(ctx context.Context, path string) (*pipeline.EvaluateResult, error)
}

// EvaluateJob represents a single case file evaluation
type EvaluateJob struct {
	Index     int
	Path      string
	Evaluator Evaluator
	Limiter   *Limiter
}

// Execute waits for the source limiter, then evaluates the case file
func (j *EvaluateJob) Execute(ctx context.Context) Result {
	start := time.Now()
	res := &CaseResult{Index: j.Index, Path: j.Path}

	if j.Limiter != nil && !j.Limiter.Allow(j.Path) {
		res.Throttled = true
		if err := j.Limiter.Wait(ctx, j.Path); err != nil {
			res.Error = fmt.Errorf("rate limit: %w", err)
			res.Duration = time.Since(start)
			return res
		}
	}

	out, err := j.Evaluator.EvaluateFile(ctx, j.Path)
	res.Duration = time.Since(start)
	if err != nil {
		res.Error = err
		return res
	}

	res.Report = out.Report
	res.Cached = out.Cached
	return res
}

// CaseResult represents the result of an evaluation job
type CaseResult struct {
	Index    int
	Path     string
	Report   *model.Report
	Cached   bool
	Error    error
	Duration time.Duration

	// Throttled is set when the job had to wait for its source limiter
	Throttled bool
}

// GetError returns the error from the case result
func (r *CaseResult) GetError() error {
	return r.Error
}

// BatchProcessor evaluates many case files concurrently
type BatchProcessor struct {
	evaluator   Evaluator
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a new batch processor. A zero rate disables
// throttling.
func NewBatchProcessor(evaluator Evaluator, concurrency int, evaluationsPerSecond float64, burst int) *BatchProcessor {
	return &BatchProcessor{
		evaluator:   evaluator,
		concurrency: concurrency,
		limiter:     NewLimiter(evaluationsPerSecond, burst),
	}
}

// Limiter returns the per-source limiter so callers can tune single sources
// before processing
func (b *BatchProcessor) Limiter() *Limiter {
	return b.limiter
}

// ProcessFiles evaluates the given case files and returns one result per
// path, in input order. Paths that could not be queued because ctx was
// cancelled carry the context error.
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string) []*CaseResult {
	if len(paths) == 0 {
		return []*CaseResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	for i, path := range paths {
		job := &EvaluateJob{
			Index:     i,
			Path:      path,
			Evaluator: b.evaluator,
			Limiter:   b.limiter,
		}
		if !pool.Submit(job) {
			break
		}
	}

	// A cancelled batch drops the jobs still queued
	var done []Result
	if ctx.Err() != nil {
		done = pool.Shutdown()
	} else {
		done = pool.Wait()
	}

	results := make([]*CaseResult, len(paths))
	for _, r := range done {
		cr := r.(*CaseResult)
		results[cr.Index] = cr
	}

	for i, r := range results {
		if r != nil {
			continue
		}
		err := ctx.Err()
		if err == nil {
			err = context.Canceled
		}
		results[i] = &CaseResult{Index: i, Path: paths[i], Error: err}
	}

	return results
}

// ProcessManifest reads case paths from a manifest or directory and
// evaluates them
func (b *BatchProcessor) ProcessManifest(ctx context.Context, input string) ([]*CaseResult, error) {
	paths, err := ExpandInput(input)
	if err != nil {
		return nil, err
	}

	return b.ProcessFiles(ctx, paths), nil
}

// ExpandInput resolves a batch input. A directory expands to its case files
// in name order; anything else is read as a manifest.
func ExpandInput(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}

	if !info.IsDir() {
		return ReadManifest(input)
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !isCaseFile(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(input, e.Name()))
	}
	sort.Strings(paths)

	return paths, nil
}

func isCaseFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// ReadManifest reads case file paths from a manifest (one per line).
// Relative paths resolve against the manifest's directory.
func ReadManifest(manifestPath string) ([]string, error) {
	file, err := os.Open(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer func() { _ = file.Close() }()

	base := filepath.Dir(manifestPath)

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !filepath.IsAbs(line) {
			line = filepath.Join(base, line)
		}
		line = filepath.Clean(line)

		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan manifest: %w", err)
	}

	return paths, nil
}
