package adfilter

import "testing"

func TestIsAd_MatchesKnownPatterns(t *testing.T) {
	ads := []string{
		"https://ads.example.com/banner",
		"https://ad.doubleclick.net/ddm/clk/123",
		"https://adclick.g.doubleclick.net/pcs/click",
		"https://adservice.example.org/serve",
		"https://www.googleadservices.com/pagead/aclk?sa=L",
		"https://googlesyndication.com/pagead/js",
		"https://www.google.com/aclk?sa=l&ai=x",
		"https://www.bing.com/aclick?ld=e8x",
		"https://duckduckgo.com/y.js?ad_provider=bingv7aa",
		"https://example.com/search?q=x&ad_domain=example.org",
		"https://example.com/ads/inline",
		"https://example.com/advertising/about",
		"https://example.com/sponsored-content",
		"https://example.com/promo/deal",
		"https://tracker.example.com/click?target=1",
		"https://example.com/pagead/conversion",
	}
	for _, u := range ads {
		if !IsAd(u) {
			t.Errorf("IsAd(%q) = false, want true", u)
		}
	}
}

func TestIsAd_PassesContentURLs(t *testing.T) {
	ok := []string{
		"https://example.com/article/how-go-works",
		"https://en.wikipedia.org/wiki/Search_engine",
		"https://github.com/golang/go/issues/1",
		"https://blog.example.org/2024/01/post?id=7",
		"https://docs.example.com/reference",
		"https://example.com/download?file=report.pdf",
	}
	for _, u := range ok {
		if IsAd(u) {
			t.Errorf("IsAd(%q) = true, want false", u)
		}
	}
}
