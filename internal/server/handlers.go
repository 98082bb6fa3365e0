package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ppiankov/entitlement/internal/condition"
	"github.com/ppiankov/entitlement/internal/model"
	"github.com/ppiankov/entitlement/internal/pipeline"
	"github.com/ppiankov/entitlement/internal/registry"
)

// Error codes returned in the error envelope
const (
	codeBadRequest       = "bad_request"
	codeTooLarge         = "too_large"
	codeUnsupportedMedia = "unsupported_media_type"
	codeUnprocessable    = "unprocessable"
	codeNotFound         = "not_found"
	codeInternal         = "internal"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// EvaluateResponse is the body of a successful POST /v1/evaluate
type EvaluateResponse struct {
	Cached bool          `json:"cached"`
	Report *model.Report `json:"report"`
}

// CatalogResponse lists the conditions of a benefit
type CatalogResponse struct {
	Benefit        model.Benefit  `json:"benefit"`
	RuleSetVersion string         `json:"ruleSetVersion"`
	Validation     []ConditionDoc `json:"validation"`
	Outcome        []ConditionDoc `json:"outcome"`
}

// ConditionDoc describes one condition of a catalog
type ConditionDoc struct {
	ID     string       `json:"id"`
	Key    string       `json:"key"`
	Points string       `json:"points"`
	Facts  []model.Fact `json:"facts"`
	Award  string       `json:"award,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":         "ok",
		"ruleSetVersion": registry.RuleSetVersion,
	})
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetReqID(ctx)

	format, err := requestFormat(r.Header.Get("Content-Type"))
	if err != nil {
		writeError(w, http.StatusUnsupportedMediaType, codeUnsupportedMedia, err.Error())
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, codeTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, codeBadRequest, "unreadable request body")
		return
	}

	res, err := s.evaluator.EvaluateDocument(ctx, body, format, "request:"+requestID)
	if err != nil {
		status, code := classify(err)
		if status >= http.StatusInternalServerError {
			s.logger.ErrorContext(ctx, "evaluation failed", "request_id", requestID, "error", err)
			writeError(w, status, code, "evaluation failed")
			return
		}
		s.logger.WarnContext(ctx, "evaluation rejected", "request_id", requestID, "error", err)
		writeError(w, status, code, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, EvaluateResponse{Cached: res.Cached, Report: res.Report})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	benefit, err := model.ParseBenefit(chi.URLParam(r, "benefit"))
	if err != nil {
		writeError(w, http.StatusNotFound, codeNotFound, err.Error())
		return
	}

	validation, outcome, err := condition.ForBenefit(benefit)
	if err != nil {
		writeError(w, http.StatusNotFound, codeNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, CatalogResponse{
		Benefit:        benefit,
		RuleSetVersion: registry.RuleSetVersion,
		Validation:     describe(validation),
		Outcome:        describe(outcome),
	})
}

func describe(c *condition.Catalog) []ConditionDoc {
	docs := make([]ConditionDoc, 0, c.Len())
	for _, cond := range c.Conditions() {
		doc := ConditionDoc{
			ID:     cond.ID,
			Key:    cond.Key,
			Points: cond.Points.String(),
			Facts:  make([]model.Fact, 0, len(cond.Primary)),
			Award:  string(cond.Award),
		}
		for _, crit := range cond.Primary {
			doc.Facts = append(doc.Facts, crit.Fact())
		}
		docs = append(docs, doc)
	}
	return docs
}

func requestFormat(contentType string) (pipeline.Format, error) {
	if contentType == "" {
		return pipeline.FormatJSON, nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", err
	}
	switch mediaType {
	case "application/json":
		return pipeline.FormatJSON, nil
	case "application/yaml", "application/x-yaml", "text/yaml":
		return pipeline.FormatYAML, nil
	default:
		return "", errors.New("unsupported content type " + mediaType)
	}
}

// classify maps evaluation errors onto HTTP statuses
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, pipeline.ErrCaseTooLarge):
		return http.StatusRequestEntityTooLarge, codeTooLarge
	case errors.Is(err, pipeline.ErrMalformedCase):
		return http.StatusBadRequest, codeBadRequest
	case errors.Is(err, registry.ErrUnknownQuestionKey),
		errors.Is(err, registry.ErrRuleSetMismatch),
		errors.Is(err, model.ErrInvalidAnswer),
		errors.Is(err, model.ErrUnsupportedBenefit):
		return http.StatusUnprocessableEntity, codeUnprocessable
	default:
		return http.StatusInternalServerError, codeInternal
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.InfoContext(r.Context(), "request",
				"request_id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		})
	}
}
