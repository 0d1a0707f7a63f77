package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"vacancy-utils/internal/config"
	"vacancy-utils/internal/logging"
	"vacancy-utils/pkg/models"
	"vacancy-utils/pkg/utils"
)

// URLSource fetches a vacancy page over HTTP and reduces it to plain text.
// Fetches are rate limited per domain and retried with backoff on server
// errors.
type URLSource struct {
	client       *http.Client
	userAgent    string
	maxRetries   int
	maxBodyBytes int64
	ratePerMin   int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func NewURLSource(cfg *config.Config) *URLSource {
	return &URLSource{
		client: &http.Client{
			Timeout: cfg.Ingest.RequestTimeout,
		},
		userAgent:    cfg.Ingest.UserAgent,
		maxRetries:   cfg.Ingest.MaxRetries,
		maxBodyBytes: cfg.Ingest.MaxBodyBytes,
		ratePerMin:   cfg.Ingest.RateLimit,
		limiters:     make(map[string]*rate.Limiter),
	}
}

func (s *URLSource) Kind() models.SourceType {
	return models.SourceURL
}

// Resolve fetches the page at the URL carried in the raw content and
// returns its visible text.
func (s *URLSource) Resolve(ctx context.Context, raw models.RawInput) (string, error) {
	target := strings.TrimSpace(raw.Content)
	parsed, err := url.Parse(target)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", utils.NewIngestError(fmt.Sprintf("invalid url %q", target))
	}

	if err := s.limiterFor(parsed.Host).Wait(ctx); err != nil {
		return "", utils.NewIngestError(fmt.Sprintf("rate limit wait aborted for %s: %v", parsed.Host, err))
	}

	body, err := s.fetch(ctx, target)
	if err != nil {
		return "", err
	}

	text, err := HTMLToText(body)
	if err != nil {
		return "", utils.NewIngestError(fmt.Sprintf("failed to parse page at %s: %v", target, err))
	}
	if strings.TrimSpace(text) == "" {
		return "", utils.NewIngestError(fmt.Sprintf("page at %s has no visible text", target))
	}
	return text, nil
}

func (s *URLSource) limiterFor(host string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	host = strings.ToLower(host)
	if limiter, ok := s.limiters[host]; ok {
		return limiter
	}
	limiter := rate.NewLimiter(rate.Limit(float64(s.ratePerMin)/60.0), s.ratePerMin)
	s.limiters[host] = limiter
	return limiter
}

// fetch retrieves the page, retrying on 5xx responses and transport errors
// with linear backoff. 4xx responses fail immediately.
func (s *URLSource) fetch(ctx context.Context, target string) (string, error) {
	log := logging.GetGlobalLogger()

	var lastErr error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", utils.NewIngestError(fmt.Sprintf("fetch aborted: %v", ctx.Err()))
			case <-time.After(time.Duration(attempt) * time.Second):
			}
			log.Debug("Retrying vacancy page fetch", map[string]interface{}{
				"url":     target,
				"attempt": attempt,
			})
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return "", utils.NewIngestError(fmt.Sprintf("invalid request for %s: %v", target, err))
		}
		req.Header.Set("User-Agent", s.userAgent)
		req.Header.Set("Accept", "text/html,application/xhtml+xml")

		resp, err := s.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, readErr := io.ReadAll(io.LimitReader(resp.Body, s.maxBodyBytes))
		resp.Body.Close()

		switch {
		case resp.StatusCode >= 500:
			lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
			continue
		case resp.StatusCode >= 400:
			return "", utils.NewIngestError(fmt.Sprintf("fetch of %s failed with status %d", target, resp.StatusCode))
		case readErr != nil:
			lastErr = readErr
			continue
		}
		return string(body), nil
	}

	return "", utils.NewIngestError(fmt.Sprintf("fetch of %s failed after %d attempts: %v", target, s.maxRetries+1, lastErr))
}

// HTMLToText extracts the visible text of an HTML document. Script, style
// and navigation chrome are dropped; block elements become line breaks so
// the extractor's section detection keeps working.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript, nav, header, footer, iframe, svg").Remove()

	root := doc.Find("main, article").First()
	if root.Length() == 0 {
		root = doc.Find("body")
	}

	var b strings.Builder
	root.Find("h1, h2, h3, h4, h5, h6, p, li, td, th, div, br").Each(func(_ int, sel *goquery.Selection) {
		// Only leaves contribute text, otherwise nested blocks duplicate it.
		if sel.Children().Filter("h1, h2, h3, h4, h5, h6, p, li, td, th, div").Length() > 0 {
			return
		}
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			b.WriteString(text)
			b.WriteString("\n")
		}
	})

	if b.Len() == 0 {
		return strings.TrimSpace(root.Text()), nil
	}
	return strings.TrimSpace(b.String()), nil
}
