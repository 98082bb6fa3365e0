package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ppiankov/entitlement/internal/filter"
	"github.com/ppiankov/entitlement/internal/model"
	"github.com/ppiankov/entitlement/internal/pipeline"
	"github.com/ppiankov/entitlement/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	whereExpr    string
	batchHTML    bool
	batchStage   string
	sourceRates  []string
	// noCache and noFooter are defined in evaluate.go and shared here
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <manifest|dir>",
	Short: "Check many case files in parallel",
	Long: `Batch evaluates many case files concurrently:
- Read case file paths from a manifest (one per line, # for comments)
  or take every .json, .yaml and .yml file in a directory
- Evaluate cases in parallel with a configurable worker count
- Optionally keep only cases matching a CEL expression (--where)
- Write a JSON and Markdown report (and optional HTML) per case
- Throttle evaluations per case directory (rate_limiting in the config,
  or --source-rate dir=rate[/burst] for a single directory)

Interrupting the batch stops the workers; cases not yet evaluated are
reported as failures.

Variables available to --where: benefit, totalPoints, generateNotice,
allowedOrRefused, wcaAppeal, supportGroupOnly, schedule8Para4,
schedule9Para4, dwpReassessAward, schedule7Activities,
physicalActivities, mentalActivities.

Example:
  entitlement batch cases/
  entitlement batch cases.txt --concurrency 8 --output-dir ./reports
  entitlement batch cases/ --where 'benefit == "ESA" && totalPoints >= 15'
  entitlement batch cases.txt --source-rate /mnt/archive=2/4`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of concurrent workers (default: concurrency.workers)")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "", "output directory for reports (default: output.dir)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringVar(&whereExpr, "where", "", "CEL expression selecting the cases to decide")
	batchCmd.Flags().BoolVar(&batchHTML, "html", false, "also write HTML reports")
	batchCmd.Flags().StringVar(&batchStage, "stage", "full", "stages to run (full, validation)")
	batchCmd.Flags().StringArrayVar(&sourceRates, "source-rate", nil, "per-directory rate as dir=rate[/burst] (repeatable)")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the report cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown and HTML reports")
}

func runBatch(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, batchTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyOutputFlags(cfg)
	if concurrency > 0 {
		cfg.Concurrency.Workers = concurrency
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if batchHTML {
		cfg.Output.HTML = true
	}
	for _, spec := range sourceRates {
		sr, err := parseSourceRate(spec)
		if err != nil {
			return err
		}
		cfg.RateLimiting.Sources = append(cfg.RateLimiting.Sources, sr)
	}
	logger := newLogger(cfg.Logging)

	stage, err := pipeline.ParseStage(batchStage)
	if err != nil {
		return err
	}

	opts := []pipeline.Option{pipeline.WithLogger(logger), pipeline.WithStage(stage)}
	if whereExpr != "" {
		f, err := filter.Compile(whereExpr)
		if err != nil {
			return err
		}
		opts = append(opts, pipeline.WithFilter(f))
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Entitlement Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input:        %s\n", input)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", cfg.Concurrency.Workers)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", cfg.Output.Dir)
	fmt.Fprintf(os.Stderr, "  Stage:        %s\n", stage)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	if whereExpr != "" {
		fmt.Fprintf(os.Stderr, "  Where:        %s\n", whereExpr)
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p, err := pipeline.NewPipeline(cfg, opts...)
	if err != nil {
		return fmt.Errorf("create pipeline: %w", err)
	}
	p.Renderer().WithOutput(io.Discard)

	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers, cfg.RateLimiting.EvaluationsPerSecond, cfg.RateLimiting.BurstSize)
	limiter := processor.Limiter()
	if limiter.Unlimited() {
		fmt.Fprintf(os.Stderr, "  Rate:         unlimited\n")
	} else {
		fmt.Fprintf(os.Stderr, "  Rate:         %g/s per directory\n", cfg.RateLimiting.EvaluationsPerSecond)
	}
	for _, sr := range cfg.RateLimiting.Sources {
		limiter.SetSourceRate(sr.Dir, sr.EvaluationsPerSecond, sr.BurstSize)
		fmt.Fprintf(os.Stderr, "  Rate:         %g/s under %s\n", sr.EvaluationsPerSecond, sr.Dir)
	}
	fmt.Fprintf(os.Stderr, "\n")

	fmt.Fprintf(os.Stderr, "⚙️  Evaluating cases with %d workers...\n", cfg.Concurrency.Workers)
	fmt.Fprintf(os.Stderr, "\n")

	results, err := processor.ProcessManifest(ctx, input)
	if err != nil {
		return fmt.Errorf("process input: %w", err)
	}

	tally := summarize(p, results, cfg)

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:      %d cases\n", len(results))
	for _, status := range []model.DecisionStatus{
		model.StatusAccepted, model.StatusRejected, model.StatusIncomplete,
		model.StatusSkipped, model.StatusFiltered,
	} {
		if n := tally[string(status)]; n > 0 {
			fmt.Fprintf(os.Stderr, "  %-11s %d\n", cases.Title(language.English).String(string(status))+":", n)
		}
	}
	fmt.Fprintf(os.Stderr, "  Failures:   %d\n", tally["failed"])
	if n := tally["throttled"]; n > 0 {
		fmt.Fprintf(os.Stderr, "  Throttled:  %d\n", n)
	}
	fmt.Fprintf(os.Stderr, "  Output:     %s\n", cfg.Output.Dir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

// summarize writes the per-case reports and counts outcomes by status
func summarize(p *pipeline.Pipeline, results []*worker.CaseResult, cfg *model.Config) map[string]int {
	tally := make(map[string]int)
	names := newNameSet()

	for _, result := range results {
		if result.Throttled {
			tally["throttled"]++
		}
		if result.Error != nil {
			tally["failed"]++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		r := result.Report
		tally[string(r.Decision.Status)]++

		if r.Decision.Status == model.StatusFiltered {
			if cfg.Output.Verbose {
				fmt.Fprintf(os.Stderr, "- %s (filtered)\n", result.Path)
			}
			continue
		}

		slug := names.claim(reportName(r.Subject, result.Path))
		out := pipeline.Outputs{
			JSON:     filepath.Join(cfg.Output.Dir, slug+".json"),
			Markdown: filepath.Join(cfg.Output.Dir, slug+".md"),
		}
		if cfg.Output.HTML {
			out.HTML = filepath.Join(cfg.Output.Dir, slug+".html")
		}

		if err := p.RenderReport(r, out, false); err != nil {
			tally["failed"]++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, err)
			continue
		}

		mark := "✓"
		if r.Decision.Status != model.StatusAccepted {
			mark = "✗"
		}
		detail := r.Decision.Scenario
		if detail == "" {
			detail = string(r.Decision.Status)
		}
		fmt.Fprintf(os.Stderr, "%s %s (%s, %d points)\n", mark, slug, detail, r.Points.Total)
	}

	return tally
}

// parseSourceRate parses a dir=rate[/burst] flag value
func parseSourceRate(s string) (model.SourceRate, error) {
	dir, spec, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(dir) == "" {
		return model.SourceRate{}, fmt.Errorf("invalid source rate %q (want dir=rate[/burst])", s)
	}
	rateText, burstText, hasBurst := strings.Cut(spec, "/")

	sr := model.SourceRate{Dir: strings.TrimSpace(dir)}
	eps, err := strconv.ParseFloat(strings.TrimSpace(rateText), 64)
	if err != nil || eps < 0 {
		return model.SourceRate{}, fmt.Errorf("invalid rate in %q", s)
	}
	sr.EvaluationsPerSecond = eps

	if hasBurst {
		burst, err := strconv.Atoi(strings.TrimSpace(burstText))
		if err != nil || burst <= 0 {
			return model.SourceRate{}, fmt.Errorf("invalid burst in %q", s)
		}
		sr.BurstSize = burst
	}
	return sr, nil
}

// reportName picks the report subject, falling back to the file name
func reportName(subject, path string) string {
	name := subject
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sanitizeFilename(name)
}

// sanitizeFilename sanitizes a string for use as a filename
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		" ", "-",
	)
	s = replacer.Replace(strings.TrimSpace(s))

	if s == "" || s == "." || s == ".." {
		s = "case"
	}

	// Limit length
	if len(s) > 100 {
		s = s[:100]
	}

	return s
}

// nameSet hands out unique report names
type nameSet map[string]int

func newNameSet() nameSet { return make(nameSet) }

func (n nameSet) claim(name string) string {
	n[name]++
	if n[name] == 1 {
		return name
	}
	return fmt.Sprintf("%s-%d", name, n[name])
}
