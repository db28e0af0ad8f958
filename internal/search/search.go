package search

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"regexp"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/seekmux/seekmux/internal/sanitize"
)

// Result represents a single search hit from any engine.
type Result struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Snippet string `json:"summary"`
	Source  string `json:"source,omitempty"` // engine name for observability
}

// Provider is a minimal interface for search engines.
type Provider interface {
	Search(ctx context.Context, query string, limit int) ([]Result, error)
	Name() string
}

// DefaultUserAgents is the stock desktop-browser pool used when the caller
// does not supply one. Rotating the fingerprint per request reduces uniform
// blocking by the engines.
var DefaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
}

// Headers carries the request fingerprint configuration shared by engine
// queries. It is passed in explicitly so providers stay testable without
// process-wide state. Pick selects an index into UserAgents; nil falls back
// to math/rand.
type Headers struct {
	UserAgents []string
	Pick       func(n int) int
}

func (h Headers) userAgent() string {
	pool := h.UserAgents
	if len(pool) == 0 {
		pool = DefaultUserAgents
	}
	pick := h.Pick
	if pick == nil {
		pick = rand.Intn
	}
	i := pick(len(pool))
	if i < 0 || i >= len(pool) {
		i = 0
	}
	return pool[i]
}

// Multi fans one query out to every configured engine concurrently and
// waits for all of them to settle before returning. A failed engine
// contributes an empty list and a warning log entry; it never fails the
// search and never cancels its siblings.
type Multi struct {
	Providers []Provider
	// Timeout bounds each engine request independently. Zero means 10s.
	Timeout time.Duration
}

// SearchAll returns one result group per provider, in provider order.
// Groups of failed providers are nil.
func (m *Multi) SearchAll(ctx context.Context, query string, limit int) [][]Result {
	groups := make([][]Result, len(m.Providers))
	timeout := m.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	var wg sync.WaitGroup
	for i, p := range m.Providers {
		wg.Add(1)
		go func(i int, p Provider) {
			defer wg.Done()
			pctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			res, err := p.Search(pctx, query, limit)
			if err != nil {
				log.Warn().Err(err).Str("engine", p.Name()).Str("query", query).Msg("engine search failed")
				return
			}
			groups[i] = res
		}(i, p)
	}
	wg.Wait()
	return groups
}

// fetchHTML issues an engine GET and returns the page body. Engines share
// this helper so every request carries the rotated User-Agent and the same
// browser-shaped accept headers.
func fetchHTML(ctx context.Context, client *http.Client, rawURL string, h Headers) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", h.userAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(b), nil
}

// firstMatch runs each pattern against the fragment in order and returns
// the first stripped submatch longer than min characters. This is the
// fallback-chain primitive the engine parsers build summary extraction on.
func firstMatch(fragment string, min int, patterns ...*regexp.Regexp) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(fragment); m != nil {
			if text := sanitize.StripTags(m[1]); len(text) > min {
				return text
			}
		}
	}
	return ""
}
