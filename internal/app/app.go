// Package app wires the search engines, result merger and page fetcher
// behind the two operations the protocol layer exposes.
package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/seekmux/seekmux/internal/aggregate"
	"github.com/seekmux/seekmux/internal/extract"
	"github.com/seekmux/seekmux/internal/fetch"
	"github.com/seekmux/seekmux/internal/markdown"
	"github.com/seekmux/seekmux/internal/search"
)

const (
	defaultMaxResults    = 8
	defaultMaxFetchChars = 50000
)

// ErrEmptyQuery is returned by WebSearch when no query is supplied. It is
// the only way a search fails; backend errors are absorbed into empty
// result groups.
var ErrEmptyQuery = errors.New("query must not be empty")

// ErrEmptyURL is returned by WebFetch when no URL is supplied.
var ErrEmptyURL = errors.New("url must not be empty")

// App is the long-lived core behind the web_search and web_fetch tools.
// It holds no mutable state across calls; every operation is independent.
type App struct {
	cfg    Config
	multi  *search.Multi
	client *fetch.Client
}

// New validates cfg, applies defaults and builds the engine set.
func New(cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = fetch.DefaultTimeout
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = defaultMaxResults
	}
	if cfg.MaxFetchChars <= 0 {
		cfg.MaxFetchChars = defaultMaxFetchChars
	}
	uas := cfg.UserAgents
	if len(uas) == 0 {
		uas = search.DefaultUserAgents
	}

	headers := search.Headers{UserAgents: uas}
	httpClient := &http.Client{}
	providers := buildProviders(cfg, httpClient, headers)

	return &App{
		cfg:   cfg,
		multi: &search.Multi{Providers: providers, Timeout: cfg.Timeout},
		client: &fetch.Client{
			UserAgents: uas,
			Timeout:    cfg.Timeout,
		},
	}, nil
}

func buildProviders(cfg Config, hc *http.Client, h search.Headers) []search.Provider {
	enabled := cfg.Engines
	if len(enabled) == 0 {
		enabled = EngineNames
	}
	providers := make([]search.Provider, 0, len(enabled))
	for _, name := range EngineNames {
		if !containsName(enabled, name) {
			continue
		}
		switch name {
		case "google":
			providers = append(providers, &search.Google{BaseURL: cfg.GoogleURL, HTTPClient: hc, Headers: h})
		case "bing":
			providers = append(providers, &search.Bing{BaseURL: cfg.BingURL, HTTPClient: hc, Headers: h})
		case "duckduckgo":
			providers = append(providers, &search.DuckDuckGo{BaseURL: cfg.DuckDuckGoURL, HTTPClient: hc, Headers: h})
		}
	}
	return providers
}

func containsName(list []string, name string) bool {
	for _, v := range list {
		if v == name {
			return true
		}
	}
	return false
}

// WebSearch runs the query against every enabled engine concurrently and
// returns the merged, deduplicated, ad-filtered list. Backend failures are
// absorbed; the returned error is non-nil only for missing input.
func (a *App) WebSearch(ctx context.Context, query string, numResults int) ([]search.Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if numResults <= 0 {
		numResults = a.cfg.MaxResults
	}
	started := time.Now()
	groups := a.multi.SearchAll(ctx, query, numResults)
	merged := aggregate.Merge(groups, numResults)
	log.Debug().
		Str("query", query).
		Int("merged", len(merged)).
		Dur("elapsed", time.Since(started)).
		Msg("search complete")
	return merged, nil
}

// WebFetch retrieves one page and returns its text, truncated to maxChars.
// HTML is simplified to Markdown unless simplify is false; other content
// types return the raw body. Fetch failures propagate as categorized
// errors; simplification failures degrade to plain text and never
// propagate.
func (a *App) WebFetch(ctx context.Context, rawURL string, maxChars int, simplify bool) (string, error) {
	if strings.TrimSpace(rawURL) == "" {
		return "", ErrEmptyURL
	}
	if maxChars <= 0 {
		maxChars = a.cfg.MaxFetchChars
	}
	doc, err := a.client.Get(ctx, rawURL)
	if err != nil {
		return "", err
	}
	if !simplify || !fetch.IsHTML(doc.ContentType) {
		return truncate(doc.Body, maxChars), nil
	}
	text := markdown.Convert(extract.Main(doc.Body))
	return truncate(text, maxChars), nil
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
