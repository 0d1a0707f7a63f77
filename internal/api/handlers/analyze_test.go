package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"vacancy-utils/internal/config"
	"vacancy-utils/internal/ingest"
	"vacancy-utils/internal/pipeline"
	"vacancy-utils/pkg/models"
)

func postAnalyze(t *testing.T, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := AnalyzeHandler(ingest.NewResolver(cfg), pipeline.New(), nil)
	return rec, handler(c)
}

func decodeAnalyze(t *testing.T, rec *httptest.ResponseRecorder) models.AnalyzeResponse {
	t.Helper()
	var resp models.AnalyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return resp
}

func TestAnalyzeHandlerCompleteAd(t *testing.T) {
	rec, err := postAnalyze(t, `{
		"content": "Senior Data Scientist (m/w/d)\nACME Analytics GmbH\nStandort: Berlin\nVollzeit, unbefristet"
	}`)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}

	resp := decodeAnalyze(t, rec)
	if !resp.Success {
		t.Error("Success = false, want true")
	}
	if resp.Result == nil {
		t.Fatal("Result is nil")
	}
	if resp.Result.Error != "" {
		t.Errorf("Result.Error = %q, want empty", resp.Result.Error)
	}
	if resp.Result.Enrichment == nil {
		t.Error("Enrichment is nil, want populated for a complete ad")
	}
	if resp.RequestID == "" {
		t.Error("RequestID is empty")
	}
}

func TestAnalyzeHandlerPipelineErrorStillOK(t *testing.T) {
	rec, err := postAnalyze(t, `{
		"content": "Senior Data Scientist bei ACME AG",
		"required_paths": ["job_title", "salary_expectation"]
	}`)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 despite pipeline error; body %s", rec.Code, rec.Body.String())
	}

	resp := decodeAnalyze(t, rec)
	if resp.Result == nil || resp.Result.Error == "" {
		t.Errorf("Result = %+v, want populated Error for malformed required paths", resp.Result)
	}
}

func TestAnalyzeHandlerRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"neither content nor url", `{}`},
		{"invalid source type", `{"content": "text", "source_type": "rss"}`},
		{"invalid url", `{"url": "not-a-url"}`},
		{"blank required path entry", `{"content": "text", "required_paths": [""]}`},
		{"malformed json", `{"content": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := postAnalyze(t, tt.body)
			if err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400; body %s", rec.Code, rec.Body.String())
			}
		})
	}
}
