package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/entitlement/internal/model"
)

var (
	// ErrMalformedCase marks a case document that could not be decoded
	ErrMalformedCase = errors.New("malformed case document")
	// ErrCaseTooLarge marks a case document over the size limit
	ErrCaseTooLarge = errors.New("case document too large")
)

// Format is the encoding of a case document
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension, defaulting to JSON
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Loader reads case documents from disk
type Loader struct {
	maxBytes int64
}

// NewLoader creates a Loader that refuses documents larger than maxBytes
func NewLoader(maxBytes int64) *Loader {
	if maxBytes <= 0 {
		maxBytes = 1 << 20
	}
	return &Loader{maxBytes: maxBytes}
}

// LoadResult is a decoded case document and the bytes it came from
type LoadResult struct {
	Case    *model.CaseData
	Content []byte
	Source  string
	Subject string
}

// Load reads and decodes the case file at path
func (l *Loader) Load(path string) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open case file: %w", err)
	}
	defer func() { _ = f.Close() }()

	// Read one byte past the limit to detect oversized documents
	body, err := io.ReadAll(io.LimitReader(f, l.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read case file: %w", err)
	}
	if int64(len(body)) > l.maxBytes {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrCaseTooLarge, path, l.maxBytes)
	}

	res, err := l.Decode(body, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	res.Source = path
	if res.Subject == "" {
		res.Subject = caseSubject(path)
	}
	return res, nil
}

// Decode parses a case document held in memory
func (l *Loader) Decode(data []byte, format Format) (*LoadResult, error) {
	if int64(len(data)) > l.maxBytes {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrCaseTooLarge, l.maxBytes)
	}

	var c model.CaseData
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("%w: decode yaml: %w", ErrMalformedCase, err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("%w: decode json: %w", ErrMalformedCase, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported case format %q", ErrMalformedCase, format)
	}

	return &LoadResult{Case: &c, Content: data, Subject: c.CaseID}, nil
}

// caseSubject derives a readable subject from a file name
func caseSubject(path string) string {
	base := filepath.Base(path)
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	base = strings.ReplaceAll(base, "_", " ")
	return base
}
