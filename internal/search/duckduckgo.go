package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/seekmux/seekmux/internal/adfilter"
	"github.com/seekmux/seekmux/internal/sanitize"
)

// DuckDuckGo scrapes the JavaScript-free html.duckduckgo.com endpoint.
type DuckDuckGo struct {
	// BaseURL overrides the search endpoint, mainly for tests.
	BaseURL    string
	HTTPClient *http.Client
	Headers    Headers
}

const ddgEndpoint = "https://html.duckduckgo.com/html/"

// Under load DuckDuckGo serves a bot-challenge page instead of results.
// There is no retry; a detected challenge simply yields an empty list.
const (
	ddgChallengeClass  = `class="anomaly-modal`
	ddgChallengePhrase = "Unfortunately, bots use DuckDuckGo too"
)

var (
	ddgResultPattern  = regexp.MustCompile(`(?s)<a[^>]+class="[^"]*result__a[^"]*"[^>]+href="([^"]+)"[^>]*>(.*?)</a>`)
	ddgSnippetPattern = regexp.MustCompile(`(?s)<a[^>]+class="[^"]*result__snippet[^"]*"[^>]*>(.*?)</a>`)
)

func (d *DuckDuckGo) Name() string { return "duckduckgo" }

func (d *DuckDuckGo) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	base := d.BaseURL
	if base == "" {
		base = ddgEndpoint
	}
	endpoint := fmt.Sprintf("%s?q=%s", base, url.QueryEscape(query))
	page, err := fetchHTML(ctx, d.HTTPClient, endpoint, d.Headers)
	if err != nil {
		return nil, err
	}
	res := parseDuckDuckGo(page)
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

// parseDuckDuckGo extracts results from the html endpoint. Result anchors
// and snippet anchors are two parallel flat sequences paired by position;
// a missing snippet leaves the summary empty. Result hrefs arrive wrapped
// in the /l/?uddg= redirect indirection and are unwrapped to the percent-
// decoded destination.
func parseDuckDuckGo(page string) []Result {
	if strings.Contains(page, ddgChallengeClass) || strings.Contains(page, ddgChallengePhrase) {
		return nil
	}
	links := ddgResultPattern.FindAllStringSubmatch(page, -1)
	snippets := ddgSnippetPattern.FindAllStringSubmatch(page, -1)
	out := make([]Result, 0, len(links))
	for i, m := range links {
		dest := ddgDestination(sanitize.DecodeEntities(m[1]))
		if dest == "" {
			continue
		}
		// y.js is DuckDuckGo's own ad-click script; the classifier catches
		// the remaining sponsored markers.
		if strings.Contains(dest, "duckduckgo.com/y.js") || adfilter.IsAd(dest) {
			continue
		}
		title := sanitize.StripTags(m[2])
		if title == "" {
			continue
		}
		summary := ""
		if i < len(snippets) {
			summary = sanitize.StripTags(snippets[i][1])
		}
		out = append(out, Result{URL: dest, Title: title, Snippet: summary, Source: "duckduckgo"})
	}
	return out
}

// ddgDestination recovers the true destination from a result href. Hrefs
// without a uddg parameter that start with // are protocol-relative links
// to the destination itself.
func ddgDestination(href string) string {
	if i := strings.Index(href, "uddg="); i >= 0 {
		enc := href[i+len("uddg="):]
		if j := strings.IndexByte(enc, '&'); j >= 0 {
			enc = enc[:j]
		}
		dec, err := url.QueryUnescape(enc)
		if err != nil {
			return ""
		}
		return dec
	}
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	return href
}
