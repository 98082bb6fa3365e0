package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ppiankov/entitlement/internal/model"
	"github.com/ppiankov/entitlement/internal/pipeline"
)

// mockEvaluator implements Evaluator
type mockEvaluator struct {
	ShouldError bool
	mu          sync.Mutex
	seen        []string
}

func (m *mockEvaluator) EvaluateFile(ctx context.Context, path string) (*pipeline.EvaluateResult, error) {
	time.Sleep(10 * time.Millisecond)

	m.mu.Lock()
	m.seen = append(m.seen, path)
	m.mu.Unlock()

	if m.ShouldError {
		return nil, errors.New("evaluate error")
	}
	return &pipeline.EvaluateResult{
		Report: &model.Report{
			CaseID: filepath.Base(path),
			Source: path,
		},
	}, nil
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestBatchProcessor_ProcessFiles(t *testing.T) {
	evaluator := &mockEvaluator{}
	processor := NewBatchProcessor(evaluator, 2, 0, 0)

	paths := []string{"cases/a.json", "cases/b.json", "cases/c.yaml"}
	results := processor.ProcessFiles(context.Background(), paths)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	for i, res := range results {
		if res.Error != nil {
			t.Errorf("unexpected error for %s: %v", res.Path, res.Error)
			continue
		}
		if res.Path != paths[i] || res.Index != i {
			t.Errorf("expected result %d for %s, got %d for %s", i, paths[i], res.Index, res.Path)
		}
		if res.Report == nil || res.Report.Source != paths[i] {
			t.Errorf("expected report for %s", paths[i])
		}
	}

	if len(evaluator.seen) != 3 {
		t.Errorf("expected 3 evaluations, got %d", len(evaluator.seen))
	}
}

func TestBatchProcessor_ProcessFiles_Error(t *testing.T) {
	processor := NewBatchProcessor(&mockEvaluator{ShouldError: true}, 2, 0, 0)

	results := processor.ProcessFiles(context.Background(), []string{"cases/a.json"})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Error == nil {
		t.Error("expected error, got nil")
	}
	if results[0].Report != nil {
		t.Error("expected nil report on error")
	}
}

func TestBatchProcessor_ProcessFiles_Empty(t *testing.T) {
	processor := NewBatchProcessor(&mockEvaluator{}, 2, 0, 0)

	results := processor.ProcessFiles(context.Background(), []string{})
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestBatchProcessor_ProcessFiles_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	processor := NewBatchProcessor(&mockEvaluator{}, 1, 0, 0)
	results := processor.ProcessFiles(ctx, []string{"a.json", "b.json", "c.json"})

	if len(results) != 3 {
		t.Fatalf("expected a result per path, got %d", len(results))
	}
	for _, res := range results {
		if res.Error == nil && res.Report == nil {
			t.Errorf("expected %s to carry a report or an error", res.Path)
		}
	}
}

func TestBatchProcessor_RateLimited(t *testing.T) {
	processor := NewBatchProcessor(&mockEvaluator{}, 4, 20, 1)
	if processor.Limiter().Unlimited() {
		t.Fatal("expected a throttled limiter")
	}

	start := time.Now()
	results := processor.ProcessFiles(context.Background(), []string{"s/a.json", "s/b.json", "s/c.json"})
	for _, res := range results {
		if res.Error != nil {
			t.Errorf("unexpected error for %s: %v", res.Path, res.Error)
		}
	}

	// burst 1 at 20/s: the third evaluation waits two intervals
	if elapsed := time.Since(start); elapsed < 90*time.Millisecond {
		t.Errorf("expected throttling, batch took %v", elapsed)
	}

	throttled := 0
	for _, res := range results {
		if res.Throttled {
			throttled++
		}
	}
	if throttled != 2 {
		t.Errorf("expected 2 throttled evaluations, got %d", throttled)
	}
}

func TestBatchProcessor_SourceRateOverride(t *testing.T) {
	processor := NewBatchProcessor(&mockEvaluator{}, 4, 0, 0)
	processor.Limiter().SetSourceRate("slow", 20, 1)

	results := processor.ProcessFiles(context.Background(), []string{"slow/a.json", "slow/b.json", "fast/a.json", "fast/b.json"})
	for _, res := range results[2:] {
		if res.Throttled {
			t.Errorf("expected %s to run unthrottled", res.Path)
		}
	}

	slow := 0
	for _, res := range results[:2] {
		if res.Throttled {
			slow++
		}
	}
	if slow != 1 {
		t.Errorf("expected one throttled evaluation under slow/, got %d", slow)
	}
}

func TestCaseResult_GetError(t *testing.T) {
	r1 := &CaseResult{Path: "a.json", Error: nil}
	if r1.GetError() != nil {
		t.Errorf("expected nil error, got %v", r1.GetError())
	}

	expected := errors.New("evaluate failed")
	r2 := &CaseResult{Path: "a.json", Error: expected}
	if r2.GetError() != expected {
		t.Errorf("expected %v, got %v", expected, r2.GetError())
	}
}

func TestReadManifest(t *testing.T) {
	dir := t.TempDir()
	content := `a.json
# comment
sub/b.yaml

/abs/c.json
./a.json`
	writeFiles(t, dir, map[string]string{"cases.txt": content})

	paths, err := ReadManifest(filepath.Join(dir, "cases.txt"))
	if err != nil {
		t.Fatalf("ReadManifest failed: %v", err)
	}

	expected := []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "sub", "b.yaml"),
		"/abs/c.json",
	}
	if len(paths) != len(expected) {
		t.Fatalf("expected %d paths, got %d: %v", len(expected), len(paths), paths)
	}

	for i, p := range paths {
		if p != expected[i] {
			t.Errorf("expected path %s at index %d, got %s", expected[i], i, p)
		}
	}
}

func TestReadManifest_NonExistent(t *testing.T) {
	_, err := ReadManifest("non_existent_manifest.txt")
	if err == nil {
		t.Error("expected error for non-existent manifest, got nil")
	}
}

func TestExpandInput_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"b.yaml":    "caseId: b",
		"a.json":    "{}",
		"c.yml":     "caseId: c",
		"notes.txt": "ignored",
	})
	if err := os.Mkdir(filepath.Join(dir, "nested.json"), 0755); err != nil {
		t.Fatal(err)
	}

	paths, err := ExpandInput(dir)
	if err != nil {
		t.Fatalf("ExpandInput failed: %v", err)
	}

	expected := []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.yaml"),
		filepath.Join(dir, "c.yml"),
	}
	if len(paths) != len(expected) {
		t.Fatalf("expected %d paths, got %v", len(expected), paths)
	}
	for i, p := range paths {
		if p != expected[i] {
			t.Errorf("expected %s at index %d, got %s", expected[i], i, p)
		}
	}
}

func TestBatchProcessor_ProcessManifest(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"cases.txt": "a.json\nb.json\n# comment\n\nc.json\n",
	})

	processor := NewBatchProcessor(&mockEvaluator{}, 2, 0, 0)

	results, err := processor.ProcessManifest(context.Background(), filepath.Join(dir, "cases.txt"))
	if err != nil {
		t.Fatalf("ProcessManifest failed: %v", err)
	}
	if len(results) != 3 {
		t.Errorf("expected 3 results, got %d", len(results))
	}
}

func TestBatchProcessor_ProcessManifest_NonExistent(t *testing.T) {
	processor := NewBatchProcessor(&mockEvaluator{}, 2, 0, 0)

	_, err := processor.ProcessManifest(context.Background(), "no_such_manifest.txt")
	if err == nil {
		t.Error("expected error for non-existent manifest, got nil")
	}
}

func TestBatchProcessor_RealPipeline(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}

	processor := NewBatchProcessor(p, 2, 0, 0)
	results := processor.ProcessFiles(context.Background(), []string{
		"../pipeline/testdata/uc_allowed.json",
		"../pipeline/testdata/unknown_activity.json",
	})

	if results[0].Error != nil || results[0].Report.Decision.Status != model.StatusAccepted {
		t.Errorf("expected accepted UC case, got %+v", results[0])
	}
	if results[1].Error == nil {
		t.Error("expected unknown activity to fail")
	}
}
