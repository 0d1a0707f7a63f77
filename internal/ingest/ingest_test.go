package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"vacancy-utils/internal/config"
	"vacancy-utils/pkg/models"
)

func testConfig() *config.Config {
	cfg, err := config.LoadConfig("")
	if err != nil {
		panic(err)
	}
	return cfg
}

func TestResolverPassthrough(t *testing.T) {
	resolver := NewResolver(testConfig())

	for _, kind := range []models.SourceType{models.SourceText, models.SourcePDF, models.SourceDOCX} {
		t.Run(string(kind), func(t *testing.T) {
			raw, err := resolver.Resolve(context.Background(), models.RawInput{
				SourceType: kind,
				Content:    "Senior Data Scientist bei ACME",
			})
			if err != nil {
				t.Fatalf("Resolve returned unexpected error: %v", err)
			}
			if raw.Content != "Senior Data Scientist bei ACME" {
				t.Errorf("Content = %q, want pass-through", raw.Content)
			}
			if raw.SourceType != kind {
				t.Errorf("SourceType = %q, want %q preserved", raw.SourceType, kind)
			}
		})
	}
}

func TestResolverUnknownKind(t *testing.T) {
	resolver := NewResolver(testConfig())
	_, err := resolver.Resolve(context.Background(), models.RawInput{SourceType: "rss"})
	if err == nil {
		t.Fatal("expected error for unknown source kind")
	}
}

func TestURLSourceFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><style>body{}</style></head><body>
			<nav>Home | Jobs</nav>
			<main>
				<h1>Senior Data Scientist (m/w/d)</h1>
				<p>ACME Analytics GmbH</p>
				<p>Standort: Berlin</p>
			</main>
			<footer>Impressum</footer>
		</body></html>`))
	}))
	defer server.Close()

	text, err := NewURLSource(testConfig()).Resolve(context.Background(), models.RawInput{
		SourceType: models.SourceURL,
		Content:    server.URL,
	})
	if err != nil {
		t.Fatalf("Resolve returned unexpected error: %v", err)
	}
	for _, want := range []string{"Senior Data Scientist (m/w/d)", "ACME Analytics GmbH", "Standort: Berlin"} {
		if !strings.Contains(text, want) {
			t.Errorf("text %q missing %q", text, want)
		}
	}
	for _, reject := range []string{"Impressum", "Home | Jobs", "body{}"} {
		if strings.Contains(text, reject) {
			t.Errorf("text %q should not contain chrome %q", text, reject)
		}
	}
}

func TestURLSourceRetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("<html><body><p>Werkstudent Data Engineering</p></body></html>"))
	}))
	defer server.Close()

	text, err := NewURLSource(testConfig()).Resolve(context.Background(), models.RawInput{
		SourceType: models.SourceURL,
		Content:    server.URL,
	})
	if err != nil {
		t.Fatalf("Resolve returned unexpected error: %v", err)
	}
	if !strings.Contains(text, "Werkstudent Data Engineering") {
		t.Errorf("text = %q, want fetched body after retry", text)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("server saw %d calls, want 2", got)
	}
}

func TestURLSourceClientErrorFailsFast(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewURLSource(testConfig()).Resolve(context.Background(), models.RawInput{
		SourceType: models.SourceURL,
		Content:    server.URL,
	})
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("server saw %d calls, want no retries on 4xx", got)
	}
}

func TestURLSourceRejectsInvalidURL(t *testing.T) {
	for _, target := range []string{"", "not a url", "ftp://example.com/jobs"} {
		if _, err := NewURLSource(testConfig()).Resolve(context.Background(), models.RawInput{
			SourceType: models.SourceURL,
			Content:    target,
		}); err == nil {
			t.Errorf("expected error for target %q", target)
		}
	}
}

func TestHTMLToTextFallsBackToBody(t *testing.T) {
	text, err := HTMLToText("<html><body>plain text only</body></html>")
	if err != nil {
		t.Fatalf("HTMLToText returned unexpected error: %v", err)
	}
	if text != "plain text only" {
		t.Errorf("text = %q, want %q", text, "plain text only")
	}
}
