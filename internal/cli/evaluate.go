package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/entitlement/internal/model"
	"github.com/ppiankov/entitlement/internal/pipeline"
)

var (
	outJSON   string
	outMD     string
	outHTML   string
	stageName string
	timeout   time.Duration
	noCache   bool
	noFooter  bool
)

// evaluateCmd represents the evaluate command
var evaluateCmd = &cobra.Command{
	Use:   "evaluate <case-file>",
	Short: "Check a single decision notice case file",
	Long: `Evaluate reads one case file (JSON or YAML) and:
- Extracts the answers and totals the activity points
- Checks the answers are consistent with the points awarded
- Checks the answers are consistent with the appeal outcome
- Selects the decision notice scenario
- Writes a JSON report and optional Markdown and HTML summaries

A rejected decision is a result, not a failure: the command only exits with
an error when the case file cannot be read or evaluated.

Example:
  entitlement evaluate case.json
  entitlement evaluate case.yaml --json report.json --md report.md
  entitlement evaluate case.json --stage validation`,
	Args: cobra.ExactArgs(1),
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	evaluateCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	evaluateCmd.Flags().StringVar(&outHTML, "html", "", "output HTML path (optional)")
	evaluateCmd.Flags().StringVar(&stageName, "stage", "full", "stages to run (full, validation)")
	evaluateCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "evaluation timeout")
	evaluateCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the report cache")
	evaluateCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown and HTML reports")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyOutputFlags(cfg)
	logger := newLogger(cfg.Logging)

	stage, err := pipeline.ParseStage(stageName)
	if err != nil {
		return err
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Evaluating: %s\n", path)
		fmt.Fprintf(os.Stderr, "Stage: %s\n", stage)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	p, err := pipeline.NewPipeline(cfg, pipeline.WithLogger(logger), pipeline.WithStage(stage))
	if err != nil {
		return fmt.Errorf("create pipeline: %w", err)
	}

	result, err := p.EvaluateFile(ctx, path)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	if cfg.Output.Verbose {
		r := result.Report
		if result.Cached {
			fmt.Fprintf(os.Stderr, "✓ Loaded cached report %s\n", r.ID)
		}
		fmt.Fprintf(os.Stderr, "✓ Totalled %d points (%s)\n", r.Points.Total, r.Points.Formula)
		if r.Decision.ValidationCondition != "" {
			fmt.Fprintf(os.Stderr, "✓ Points and activities: %s\n", r.Decision.ValidationCondition)
		}
		if r.Decision.OutcomeCondition != "" {
			fmt.Fprintf(os.Stderr, "✓ Allowed or refused: %s\n", r.Decision.OutcomeCondition)
		}
		fmt.Fprintln(os.Stderr)
	}

	out := pipeline.Outputs{JSON: outJSON, Markdown: outMD, HTML: outHTML}
	if err := p.RenderReport(result.Report, out, cfg.Output.Verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// applyOutputFlags lets command flags override the loaded configuration
func applyOutputFlags(cfg *model.Config) {
	if noCache {
		cfg.Cache.Enabled = false
	}
	if noFooter {
		cfg.Output.IncludeFooter = false
	}
	if verbose {
		cfg.Output.Verbose = true
	}
}
