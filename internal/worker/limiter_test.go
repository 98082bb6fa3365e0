package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1)
	if l2.defaultBurst != 5 {
		t.Errorf("expected default burst 5 for negative input, got %d", l2.defaultBurst)
	}

	if l2.Unlimited() {
		t.Error("expected a positive rate to throttle")
	}
	if !NewLimiter(0, 0).Unlimited() {
		t.Error("expected zero rate to disable throttling")
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "cases/a.json"); err != nil {
		t.Errorf("wait failed: %v", err)
	}

	if err := limiter.Wait(ctx, "other/b.json"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_WaitCancelled(t *testing.T) {
	limiter := NewLimiter(0.01, 1)
	limiter.Allow("cases/a.json")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := limiter.Wait(ctx, "cases/b.json"); err == nil {
		t.Error("expected wait to fail once the context expires")
	}
}

func TestLimiter_RateLimit(t *testing.T) {
	// 1 rps, burst 1
	limiter := NewLimiter(1, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "cases/uc/a.json"); err != nil {
		t.Errorf("first wait failed: %v", err)
	}

	// same directory shares the bucket
	if limiter.Allow("cases/uc/b.json") {
		t.Errorf("expected allow to fail (exhausted tokens)")
	}

	if !limiter.Allow("cases/esa/a.json") {
		t.Errorf("expected allow for other source")
	}
}

func TestLimiter_Unlimited(t *testing.T) {
	limiter := NewLimiter(0, 1)
	for i := 0; i < 100; i++ {
		if !limiter.Allow("cases/a.json") {
			t.Fatalf("expected unlimited limiter to allow request %d", i)
		}
	}
}

func TestLimiter_SetSourceRate(t *testing.T) {
	limiter := NewLimiter(10, 10)

	limiter.SetSourceRate("slow/", 0.1, 1)

	if !limiter.Allow("slow/a.json") {
		t.Errorf("first request should pass")
	}

	if limiter.Allow("slow/b.json") {
		t.Errorf("second request should fail")
	}

	if !limiter.Allow("fast/a.json") {
		t.Errorf("other source should pass")
	}
}

func TestLimiter_SetSourceRateUnlimited(t *testing.T) {
	limiter := NewLimiter(1, 1)
	limiter.SetSourceRate("archive", 0, 0)

	for i := 0; i < 20; i++ {
		if !limiter.Allow("archive/case.json") {
			t.Fatalf("request %d should pass for an unthrottled source", i)
		}
	}
}

func TestSourceOf(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"cases/uc/a.json", "cases/uc"},
		{"cases/uc/../esa/b.yaml", "cases/esa"},
		{"a.json", "."},
	}

	for _, tt := range tests {
		if got := sourceOf(tt.path); got != tt.want {
			t.Errorf("sourceOf(%q): expected %s, got %s", tt.path, tt.want, got)
		}
	}
}
