package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/seekmux/seekmux/internal/sanitize"
)

// Google scrapes the classic Google results page.
type Google struct {
	// BaseURL overrides the search endpoint, mainly for tests.
	BaseURL    string
	HTTPClient *http.Client
	Headers    Headers
}

const googleEndpoint = "https://www.google.com/search"

// googleBlockMarker delimits one organic result card. Everything before the
// first marker is page chrome and is ignored.
const googleBlockMarker = `<div class="tF2Cxc`

// googleBlockScan bounds how far into a block the patterns run, so a huge
// or degenerate page cannot blow the parse up quadratically.
const googleBlockScan = 3000

var (
	googleLinkPattern = regexp.MustCompile(`(?s)<a[^>]+href="(https?://[^"]+)"[^>]*>(.*?)</a>`)
	// Snippet containers: current results use VwiC3b, older layouts IsZvec.
	googleDescPattern    = regexp.MustCompile(`(?s)<(?:div|span)[^>]+class="[^"]*VwiC3b[^"]*"[^>]*>(.*?)</(?:div|span)>`)
	googleSnippetPattern = regexp.MustCompile(`(?s)<(?:div|span)[^>]+class="[^"]*IsZvec[^"]*"[^>]*>(.*?)</(?:div|span)>`)
)

func (g *Google) Name() string { return "google" }

func (g *Google) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	base := g.BaseURL
	if base == "" {
		base = googleEndpoint
	}
	endpoint := fmt.Sprintf("%s?q=%s&num=%d&hl=en", base, url.QueryEscape(query), limit+5)
	page, err := fetchHTML(ctx, g.HTTPClient, endpoint, g.Headers)
	if err != nil {
		return nil, err
	}
	res := parseGoogle(page)
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

// parseGoogle extracts organic results from a Google results page. It is
// pure and never fails: blocks that do not look like ordinary web results
// (video and image cards, knowledge panels) are skipped, and malformed
// input yields an empty or partial list.
func parseGoogle(page string) []Result {
	blocks := strings.Split(page, googleBlockMarker)
	if len(blocks) < 2 {
		return nil
	}
	out := make([]Result, 0, len(blocks)-1)
	for _, block := range blocks[1:] {
		if len(block) > googleBlockScan {
			block = block[:googleBlockScan]
		}
		var href, title string
		for _, m := range googleLinkPattern.FindAllStringSubmatch(block, -1) {
			candidate := sanitize.DecodeEntities(m[1])
			u, err := url.Parse(candidate)
			if err != nil || isGoogleHost(u.Hostname()) {
				continue
			}
			href = candidate
			title = sanitize.StripTags(m[2])
			break
		}
		// Non-web cards either carry no outbound link or only a stub title.
		if href == "" || len(title) <= 1 {
			continue
		}
		summary := firstMatch(block, 0, googleDescPattern, googleSnippetPattern)
		out = append(out, Result{URL: href, Title: title, Snippet: summary, Source: "google"})
	}
	return out
}

func isGoogleHost(host string) bool {
	host = strings.ToLower(host)
	switch {
	case host == "":
		return true
	case strings.Contains(host, "google."):
		return true
	case strings.HasSuffix(host, ".google"):
		return true
	case strings.HasSuffix(host, "gstatic.com"), strings.HasSuffix(host, "googleusercontent.com"):
		return true
	}
	return false
}
