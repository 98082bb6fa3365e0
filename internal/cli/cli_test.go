package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/entitlement/internal/model"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"UC-1001", "UC-1001"},
		{"SC 123/45", "SC-123_45"},
		{"a:b*c?d", "a_b_c_d"},
		{"  ", "case"},
		{"..", "case"},
		{strings.Repeat("x", 150), strings.Repeat("x", 100)},
	}

	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestReportName(t *testing.T) {
	if got := reportName("", "/cases/appeal one.yaml"); got != "appeal-one" {
		t.Errorf("Expected file name fallback, got %q", got)
	}
	if got := reportName("ESA-2002", "/cases/x.yaml"); got != "ESA-2002" {
		t.Errorf("Expected subject, got %q", got)
	}
}

func TestNameSet_Claim(t *testing.T) {
	names := newNameSet()
	got := []string{names.claim("a"), names.claim("b"), names.claim("a"), names.claim("a")}
	want := []string{"a", "b", "a-2", "a-3"}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %s at %d, got %s", want[i], i, got[i])
		}
	}
}

func TestFlatten(t *testing.T) {
	got := flatten("", map[string]any{
		"server": map[string]any{"addr": ":8080", "tls": map[string]any{"on": false}},
		"top":    1,
	})

	want := map[string]any{"server.addr": ":8080", "server.tls.on": false, "top": 1}
	if len(got) != len(want) {
		t.Fatalf("Expected %d keys, got %v", len(want), got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("Expected %s=%v, got %v", k, v, got[k])
		}
	}
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfgFile = filepath.Join(t.TempDir(), "absent.yaml")
	t.Cleanup(func() { cfgFile = "" })

	t.Setenv("ENTITLEMENT_SERVER_ADDR", "127.0.0.1:9999")
	t.Setenv("ENTITLEMENT_CACHE_ENABLED", "false")
	t.Setenv("ENTITLEMENT_CACHE_MEMORY_TTL", "2m")

	initConfig()
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:9999" {
		t.Errorf("Expected env addr, got %s", cfg.Server.Addr)
	}
	if cfg.Cache.Enabled {
		t.Error("Expected cache to be disabled by env")
	}
	if cfg.Cache.MemoryTTL != 2*time.Minute {
		t.Errorf("Expected 2m memory TTL, got %v", cfg.Cache.MemoryTTL)
	}
	if cfg.Server.ShutdownTimeout != model.DefaultConfig().Server.ShutdownTimeout {
		t.Errorf("Expected default shutdown timeout, got %v", cfg.Server.ShutdownTimeout)
	}
}

func TestLoadConfig_File(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("concurrency:\n  workers: 3\nlogging:\n  format: json\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfgFile = path
	t.Cleanup(func() { cfgFile = "" })

	initConfig()
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Concurrency.Workers != 3 {
		t.Errorf("Expected 3 workers, got %d", cfg.Concurrency.Workers)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Expected json logging, got %s", cfg.Logging.Format)
	}
	if cfg.Output.Dir != model.DefaultConfig().Output.Dir {
		t.Errorf("Expected default output dir, got %s", cfg.Output.Dir)
	}
}

func TestParseSourceRate(t *testing.T) {
	tests := []struct {
		in      string
		want    model.SourceRate
		wantErr bool
	}{
		{"/mnt/archive=2", model.SourceRate{Dir: "/mnt/archive", EvaluationsPerSecond: 2}, false},
		{"cases/esa=0.5/3", model.SourceRate{Dir: "cases/esa", EvaluationsPerSecond: 0.5, BurstSize: 3}, false},
		{"cases=0", model.SourceRate{Dir: "cases", EvaluationsPerSecond: 0}, false},
		{"cases", model.SourceRate{}, true},
		{"=2", model.SourceRate{}, true},
		{"cases=fast", model.SourceRate{}, true},
		{"cases=-1", model.SourceRate{}, true},
		{"cases=2/0", model.SourceRate{}, true},
	}

	for _, tt := range tests {
		got, err := parseSourceRate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseSourceRate(%q): unexpected error state %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseSourceRate(%q): expected %+v, got %+v", tt.in, tt.want, got)
		}
	}
}

func TestLoadConfig_SourceRates(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "rate_limiting:\n  evaluations_per_second: 5\n  sources:\n    - dir: /mnt/archive\n      evaluations_per_second: 1\n      burst_size: 2\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	cfgFile = path
	t.Cleanup(func() { cfgFile = "" })

	initConfig()
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := []model.SourceRate{{Dir: "/mnt/archive", EvaluationsPerSecond: 1, BurstSize: 2}}
	if len(cfg.RateLimiting.Sources) != 1 || cfg.RateLimiting.Sources[0] != want[0] {
		t.Errorf("Expected sources %+v, got %+v", want, cfg.RateLimiting.Sources)
	}
	if cfg.RateLimiting.EvaluationsPerSecond != 5 {
		t.Errorf("Expected 5 evaluations per second, got %g", cfg.RateLimiting.EvaluationsPerSecond)
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	if err := writeDefaultConfig(path); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var cfg model.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("Expected readable YAML, got %v", err)
	}
	if cfg.Server.Addr != model.DefaultConfig().Server.Addr {
		t.Errorf("Expected default addr, got %s", cfg.Server.Addr)
	}

	if err := writeDefaultConfig(path); err == nil {
		t.Error("Expected an error when the file exists")
	}
}

func TestPrintCatalogs(t *testing.T) {
	var buf bytes.Buffer
	if err := printCatalogs(&buf, model.BenefitESA, true); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"ESA conditions",
		"ESA validation",
		"ESA outcome",
		"Schedule 3 Activities",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
}
