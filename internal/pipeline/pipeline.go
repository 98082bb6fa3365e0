// Package pipeline turns case documents into evaluation reports: it loads
// and decodes the case, extracts the facts, runs the decision engine and
// renders the result. Reports are cached by case content and rule-set
// version.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ppiankov/entitlement/internal/cache"
	"github.com/ppiankov/entitlement/internal/decision"
	"github.com/ppiankov/entitlement/internal/extract"
	"github.com/ppiankov/entitlement/internal/filter"
	"github.com/ppiankov/entitlement/internal/metrics"
	"github.com/ppiankov/entitlement/internal/model"
	"github.com/ppiankov/entitlement/internal/registry"
)

// Stage selects how far an evaluation goes
type Stage string

const (
	StageFull       Stage = "full"
	StageValidation Stage = "validation"
)

// ParseStage validates a stage name
func ParseStage(s string) (Stage, error) {
	switch Stage(s) {
	case StageFull, "":
		return StageFull, nil
	case StageValidation:
		return StageValidation, nil
	default:
		return "", fmt.Errorf("unknown stage %q (want full or validation)", s)
	}
}

// Pipeline orchestrates the complete evaluation of a case
type Pipeline struct {
	loader    *Loader
	extractor *extract.Extractor
	engines   map[model.Benefit]*decision.Engine
	renderer  *Renderer
	cache     cache.Cache
	cacheTTL  time.Duration
	filter    *filter.Filter
	metrics   *metrics.Metrics
	logger    *slog.Logger
	stage     Stage
}

// Option customises a Pipeline
type Option func(*Pipeline)

// WithMetrics records evaluations on m
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

// WithLogger sets the structured logger
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithFilter marks cases not matching f as filtered instead of deciding them
func WithFilter(f *filter.Filter) Option {
	return func(p *Pipeline) { p.filter = f }
}

// WithStage limits evaluation to stage
func WithStage(s Stage) Option {
	return func(p *Pipeline) { p.stage = s }
}

// WithCache replaces the cache built from configuration
func WithCache(c cache.Cache) Option {
	return func(p *Pipeline) { p.cache = c }
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config, opts ...Option) (*Pipeline, error) {
	engines := make(map[model.Benefit]*decision.Engine, 2)
	for _, b := range []model.Benefit{model.BenefitUC, model.BenefitESA} {
		e, err := decision.NewEngine(b)
		if err != nil {
			return nil, fmt.Errorf("create %s engine: %w", b, err)
		}
		engines[b] = e
	}

	p := &Pipeline{
		loader:    NewLoader(cfg.Server.MaxBodyBytes),
		extractor: extract.NewExtractor(),
		engines:   engines,
		renderer:  NewRenderer(cfg.Output.IncludeFooter),
		cacheTTL:  cfg.Cache.DiskTTL,
		logger:    slog.Default(),
		stage:     StageFull,
	}
	if cfg.Cache.Enabled {
		p.cache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Renderer returns the pipeline's renderer
func (p *Pipeline) Renderer() *Renderer {
	return p.renderer
}

// EvaluateResult contains the complete evaluation result
type EvaluateResult struct {
	Report *model.Report
	Cached bool
}

// EvaluateFile evaluates the case file at path
func (p *Pipeline) EvaluateFile(ctx context.Context, path string) (*EvaluateResult, error) {
	loaded, err := p.loader.Load(path)
	if err != nil {
		return nil, err
	}
	return p.evaluateLoaded(ctx, loaded)
}

// EvaluateDocument evaluates a case document held in memory
func (p *Pipeline) EvaluateDocument(ctx context.Context, data []byte, format Format, source string) (*EvaluateResult, error) {
	loaded, err := p.loader.Decode(data, format)
	if err != nil {
		return nil, err
	}
	loaded.Source = source
	return p.evaluateLoaded(ctx, loaded)
}

func (p *Pipeline) evaluateLoaded(ctx context.Context, loaded *LoadResult) (*EvaluateResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := cache.ReportKey(loaded.Content, registry.RuleSetVersion, string(p.stage))
	if p.cache != nil && p.filter == nil {
		if report, ok := p.cached(key); ok {
			report.Source = loaded.Source
			report.Subject = loaded.Subject
			return &EvaluateResult{Report: report, Cached: true}, nil
		}
	}

	report, err := p.EvaluateCase(ctx, loaded.Case, loaded.Source)
	if err != nil {
		return nil, err
	}
	report.Subject = loaded.Subject

	// Filtered reports depend on the expression, not only on the case
	if p.cache != nil && report.Decision.Status != model.StatusFiltered {
		p.store(key, report)
	}
	return &EvaluateResult{Report: report}, nil
}

// EvaluateCase runs extraction and the decision engine on a decoded case.
// Inconsistent answers end up in the report; malformed ones are errors.
func (p *Pipeline) EvaluateCase(ctx context.Context, c *model.CaseData, source string) (*model.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	log := p.logger.With("case", c.CaseID, "source", source)

	facts, err := p.extractor.Extract(c)
	if err != nil {
		log.Warn("extraction failed", "error", err)
		return nil, fmt.Errorf("extract: %w", err)
	}
	points, err := p.extractor.Points(c)
	if err != nil {
		return nil, fmt.Errorf("points: %w", err)
	}
	descriptors, err := p.extractor.Descriptors(c)
	if err != nil {
		return nil, fmt.Errorf("descriptors: %w", err)
	}

	report := &model.Report{
		ID:             uuid.NewString(),
		CaseID:         c.CaseID,
		Source:         source,
		EvaluatedAt:    time.Now().UTC(),
		RuleSetVersion: registry.RuleSetVersion,
		Facts:          facts,
		Points:         points,
		Descriptors:    descriptors,
	}

	matched, err := p.filter.Match(facts)
	if err != nil {
		return nil, err
	}
	if !matched {
		report.Decision = model.Decision{Status: model.StatusFiltered}
		log.Debug("case filtered", "filter", p.filter.String())
		p.metrics.IncrementDecision(string(facts.Benefit), string(model.StatusFiltered))
		return report, nil
	}

	engine, ok := p.engines[facts.Benefit]
	if !ok {
		return nil, fmt.Errorf("no engine for benefit %s", facts.Benefit)
	}

	var d model.Decision
	if p.stage == StageValidation {
		d, err = engine.Validate(facts)
	} else {
		d, err = engine.Decide(facts)
	}
	if err != nil {
		log.Error("decision failed", "error", err, "facts", facts.Dump())
		return nil, fmt.Errorf("decide: %w", err)
	}
	report.Decision = d

	elapsed := time.Since(start)
	p.metrics.ObserveEvaluateLatency(elapsed)
	p.metrics.IncrementDecision(string(facts.Benefit), string(d.Status))
	if d.Scenario != "" {
		p.metrics.IncrementScenario(string(facts.Benefit), d.Scenario)
	}

	log.Debug("case evaluated",
		"benefit", facts.Benefit,
		"status", d.Status,
		"points", points.Total,
		"validation", d.ValidationCondition,
		"outcome", d.OutcomeCondition,
		"scenario", d.Scenario,
		"duration", elapsed,
	)
	return report, nil
}

func (p *Pipeline) cached(key string) (*model.Report, bool) {
	data, ok := p.cache.Get(key)
	p.metrics.ObserveCache(ok)
	if !ok {
		return nil, false
	}

	var report model.Report
	if err := json.Unmarshal(data, &report); err != nil {
		p.logger.Warn("discarding unreadable cache entry", "key", key, "error", err)
		_ = p.cache.Delete(key)
		return nil, false
	}
	return &report, true
}

func (p *Pipeline) store(key string, report *model.Report) {
	data, err := json.Marshal(report)
	if err != nil {
		p.logger.Warn("report not cached", "error", err)
		return
	}
	if err := p.cache.Set(key, data, p.cacheTTL); err != nil {
		p.logger.Warn("report not cached", "key", key, "error", err)
	}
}

// Outputs names the files a report is rendered to. Empty paths are skipped.
type Outputs struct {
	JSON     string
	Markdown string
	HTML     string
}

// RenderReport renders the report to the requested outputs and prints the
// console summary
func (p *Pipeline) RenderReport(report *model.Report, out Outputs, verbose bool) error {
	steps := []struct {
		path   string
		kind   string
		render func(*model.Report, string) error
	}{
		{out.JSON, "JSON", p.renderer.RenderJSON},
		{out.Markdown, "Markdown", p.renderer.RenderMarkdown},
		{out.HTML, "HTML", p.renderer.RenderHTML},
	}

	for _, s := range steps {
		if s.path == "" {
			continue
		}
		if err := s.render(report, s.path); err != nil {
			return fmt.Errorf("render %s: %w", s.kind, err)
		}
		if verbose {
			fmt.Printf("✓ Wrote %s: %s\n", s.kind, s.path)
		}
	}

	p.renderer.RenderSummary(report)
	return nil
}
