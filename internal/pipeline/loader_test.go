package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ppiankov/entitlement/internal/model"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"case.json", FormatJSON},
		{"case.yaml", FormatYAML},
		{"case.YML", FormatYAML},
		{"case", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestLoader_Load(t *testing.T) {
	loader := NewLoader(1 << 20)

	tests := []struct {
		desc    string
		file    string
		caseID  string
		benefit string
	}{
		{"json case", "testdata/uc_allowed.json", "UC-1001", "UC"},
		{"yaml case", "testdata/esa_refused.yaml", "ESA-2002", "ESA"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			res, err := loader.Load(tt.file)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if res.Case.CaseID != tt.caseID {
				t.Errorf("Expected case %s, got %s", tt.caseID, res.Case.CaseID)
			}
			if res.Case.BenefitType != tt.benefit {
				t.Errorf("Expected benefit %s, got %s", tt.benefit, res.Case.BenefitType)
			}
			if res.Source != tt.file {
				t.Errorf("Expected source %s, got %s", tt.file, res.Source)
			}
			if res.Subject != tt.caseID {
				t.Errorf("Expected subject %s, got %s", tt.caseID, res.Subject)
			}
			if len(res.Content) == 0 {
				t.Error("Expected raw content to be kept")
			}
		})
	}
}

func TestLoader_YAMLKeepsUnansweredLists(t *testing.T) {
	res, err := NewLoader(0).Load("testdata/esa_refused.yaml")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	esa := res.Case.ESA
	if esa == nil {
		t.Fatal("Expected ESA section")
	}
	if !esa.MentalAssessment.IsEmpty() {
		t.Errorf("Expected empty mental list, got %s", esa.MentalAssessment)
	}
	if esa.Schedule3Selections.IsSet() {
		t.Errorf("Expected Schedule 3 list to stay unanswered, got %s", esa.Schedule3Selections)
	}
}

func TestLoader_Errors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		desc    string
		path    string
		wantErr string
	}{
		{"missing file", filepath.Join(dir, "absent.json"), "open case file"},
		{"broken json", write("broken.json", `{"caseId":`), "decode json"},
		{"broken yaml", write("broken.yaml", "caseId: [unterminated"), "decode yaml"},
		{"bad list", write("list.json", `{"sscsUcCaseData":{"ucWriteFinalDecisionSchedule7ActivitiesQuestion":"x"}}`), "decode json"},
		{"oversized", write("big.json", `{"caseId":"`+strings.Repeat("x", 200)+`"}`), "exceeds"},
	}

	loader := NewLoader(128)
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := loader.Load(tt.path)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoader_DecodeUnsupportedFormat(t *testing.T) {
	_, err := NewLoader(0).Decode([]byte("{}"), Format("toml"))
	if !errors.Is(err, ErrMalformedCase) {
		t.Fatalf("Expected malformed case error, got %v", err)
	}
}

func TestLoader_ErrorKinds(t *testing.T) {
	loader := NewLoader(16)

	if _, err := loader.Decode([]byte(`{"caseId":"a-very-long-case-id"}`), FormatJSON); !errors.Is(err, ErrCaseTooLarge) {
		t.Errorf("Expected too large error, got %v", err)
	}
	if _, err := loader.Decode([]byte(`{`), FormatJSON); !errors.Is(err, ErrMalformedCase) {
		t.Errorf("Expected malformed case error, got %v", err)
	}
}

func TestCaseSubject(t *testing.T) {
	if got := caseSubject("/cases/appeal_2026_01.json"); got != "appeal 2026 01" {
		t.Errorf("Expected de-slugified subject, got %q", got)
	}

	res, err := NewLoader(0).Decode([]byte(`{"benefitType":"UC"}`), FormatJSON)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if res.Subject != "" || res.Case.BenefitType != string(model.BenefitUC) {
		t.Errorf("Unexpected decode result: %+v", res)
	}
}
