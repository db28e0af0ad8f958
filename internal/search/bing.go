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

// Bing scrapes the Bing results page.
type Bing struct {
	// BaseURL overrides the search endpoint, mainly for tests.
	BaseURL    string
	HTTPClient *http.Client
	Headers    Headers
}

const (
	bingEndpoint = "https://www.bing.com/search"
	bingOrigin   = "https://www.bing.com"

	// bingCardMarker delimits one algorithmic result card.
	bingCardMarker = `<li class="b_algo`

	// bingMinSummaryLen rejects decorative near-empty containers that would
	// otherwise win the summary fallback chain.
	bingMinSummaryLen = 10
)

var (
	bingHeadingPattern = regexp.MustCompile(`(?s)<h2[^>]*>(.*?)</h2>`)
	bingLinkPattern    = regexp.MustCompile(`(?s)<a[^>]+href="([^"]+)"[^>]*>(.*?)</a>`)
	// Summary containers in fallback order: line-clamped layout, caption,
	// plain snippet text.
	bingSummaryPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?s)<(?:div|p)[^>]+class="[^"]*b_lineclamp[^"]*"[^>]*>(.*?)</(?:div|p)>`),
		regexp.MustCompile(`(?s)<(?:div|p)[^>]+class="[^"]*b_caption[^"]*"[^>]*>(.*?)</(?:div|p)>`),
		regexp.MustCompile(`(?s)<(?:div|p)[^>]+class="[^"]*b_snippet[^"]*"[^>]*>(.*?)</(?:div|p)>`),
	}
)

func (b *Bing) Name() string { return "bing" }

func (b *Bing) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	base := b.BaseURL
	if base == "" {
		base = bingEndpoint
	}
	endpoint := fmt.Sprintf("%s?q=%s&count=%d", base, url.QueryEscape(query), limit+5)
	page, err := fetchHTML(ctx, b.HTTPClient, endpoint, b.Headers)
	if err != nil {
		return nil, err
	}
	res := parseBing(page)
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

// parseBing extracts results from a Bing results page. Cards without an
// <h2> heading are special media cards and are skipped entirely. Relative
// hrefs (the /ck/a click-redirect path) are rewritten against the Bing
// origin so emitted URLs are always absolute.
func parseBing(page string) []Result {
	cards := strings.Split(page, bingCardMarker)
	if len(cards) < 2 {
		return nil
	}
	out := make([]Result, 0, len(cards)-1)
	for _, card := range cards[1:] {
		heading := bingHeadingPattern.FindStringSubmatch(card)
		if heading == nil {
			continue
		}
		link := bingLinkPattern.FindStringSubmatch(heading[1])
		if link == nil {
			continue
		}
		href := sanitize.DecodeEntities(link[1])
		title := sanitize.StripTags(link[2])
		if title == "" {
			continue
		}
		if strings.HasPrefix(href, "/") {
			href = bingOrigin + href
		}
		summary := firstMatch(card, bingMinSummaryLen, bingSummaryPatterns...)
		out = append(out, Result{URL: href, Title: title, Snippet: summary, Source: "bing"})
	}
	return out
}
