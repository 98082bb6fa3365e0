package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/entitlement/internal/metrics"
	"github.com/ppiankov/entitlement/internal/model"
	"github.com/ppiankov/entitlement/internal/pipeline"
	"github.com/ppiankov/entitlement/internal/scenario"
)

func newTestServer(t *testing.T) (*Server, *metrics.Metrics) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()

	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	p, err := pipeline.NewPipeline(cfg, pipeline.WithLogger(logger), pipeline.WithMetrics(m))
	require.NoError(t, err)

	cfg.Server.MaxBodyBytes = 4096
	return New(cfg.Server, p, m, logger), m
}

func fixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile("../pipeline/testdata/" + name)
	require.NoError(t, err)
	return data
}

func do(t *testing.T, s *Server, method, path, contentType string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHandleEvaluate(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		name        string
		file        string
		contentType string
		caseID      string
		status      model.DecisionStatus
		scenario    scenario.ID
	}{
		{"json body", "uc_allowed.json", "application/json", "UC-1001", model.StatusAccepted, scenario.Scenario5},
		{"yaml body", "esa_refused.yaml", "application/yaml; charset=utf-8", "ESA-2002", model.StatusAccepted, scenario.Scenario1},
		{"no content type", "uc_inconsistent.json", "", "", model.StatusRejected, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/v1/evaluate", tt.contentType, fixture(t, tt.file))
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var resp EvaluateResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.NotNil(t, resp.Report)
			if tt.caseID != "" {
				assert.Equal(t, tt.caseID, resp.Report.CaseID)
			}
			assert.Equal(t, tt.status, resp.Report.Decision.Status)
			assert.Equal(t, string(tt.scenario), resp.Report.Decision.Scenario)
			assert.True(t, strings.HasPrefix(resp.Report.Source, "request:"))
		})
	}
}

func TestHandleEvaluate_Errors(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		name        string
		contentType string
		body        []byte
		status      int
		code        string
	}{
		{"malformed json", "application/json", []byte(`{"caseId":`), http.StatusBadRequest, codeBadRequest},
		{"unknown activity", "application/json", fixture(t, "unknown_activity.json"), http.StatusUnprocessableEntity, codeUnprocessable},
		{"unsupported benefit", "application/json", []byte(`{"caseId":"PIP-1","benefitType":"PIP"}`), http.StatusUnprocessableEntity, codeUnprocessable},
		{"unsupported media type", "text/plain", []byte("hello"), http.StatusUnsupportedMediaType, codeUnsupportedMedia},
		{"oversized body", "application/json", []byte(`{"caseId":"` + strings.Repeat("x", 5000) + `"}`), http.StatusRequestEntityTooLarge, codeTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/v1/evaluate", tt.contentType, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())

			var resp errorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Error)
			assert.NotEmpty(t, resp.Message)
			assert.NotEqual(t, "evaluation failed", resp.Message)
		})
	}
}

func TestHandleCatalog(t *testing.T) {
	s, _ := newTestServer(t)

	for _, benefit := range []string{"uc", "ESA"} {
		t.Run(benefit, func(t *testing.T) {
			w := do(t, s, http.MethodGet, "/v1/catalogs/"+benefit, "", nil)
			require.Equal(t, http.StatusOK, w.Code)

			var resp CatalogResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, strings.ToUpper(benefit), string(resp.Benefit))
			assert.NotEmpty(t, resp.Validation)
			assert.NotEmpty(t, resp.Outcome)
			for _, c := range append(resp.Validation, resp.Outcome...) {
				assert.NotEmpty(t, c.ID)
				assert.NotEmpty(t, c.Points)
			}
		})
	}

	w := do(t, s, http.MethodGet, "/v1/catalogs/PIP", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	w = do(t, s, http.MethodPost, "/v1/evaluate", "application/json", fixture(t, "uc_allowed.json"))
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, s, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `entitlement_decisions_total{benefit="UC",status="accepted"} 1`)
	assert.Contains(t, w.Body.String(), "entitlement_scenarios_total")
}

func TestMetricsDisabled(t *testing.T) {
	s := New(model.DefaultConfig().Server, nil, nil, nil)

	w := do(t, s, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServe_GracefulShutdown(t *testing.T) {
	s, _ := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRequestFormat(t *testing.T) {
	tests := []struct {
		contentType string
		want        pipeline.Format
		wantErr     bool
	}{
		{"", pipeline.FormatJSON, false},
		{"application/json; charset=utf-8", pipeline.FormatJSON, false},
		{"application/x-yaml", pipeline.FormatYAML, false},
		{"text/yaml", pipeline.FormatYAML, false},
		{"text/csv", "", true},
		{";;", "", true},
	}

	for _, tt := range tests {
		got, err := requestFormat(tt.contentType)
		if tt.wantErr {
			assert.Error(t, err, tt.contentType)
			continue
		}
		assert.NoError(t, err, tt.contentType)
		assert.Equal(t, tt.want, got)
	}
}
