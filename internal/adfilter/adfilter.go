// Package adfilter classifies URLs as advertising or tracking links.
//
// The signature table is deliberately coarse: it runs on every candidate
// result twice (once inside engine parsers, once as a safety net during the
// merge) so a parser that fails to suppress a sponsored block still cannot
// leak it into the final output.
package adfilter

import "regexp"

var signatures = []*regexp.Regexp{
	// Ad-network hosts and subdomains.
	regexp.MustCompile(`(?i)//ads?\.`),
	regexp.MustCompile(`(?i)//ad(server|service|click|sense)\.`),
	regexp.MustCompile(`(?i)\bdoubleclick\.net/`),
	regexp.MustCompile(`(?i)\bgoogleadservices\.com/`),
	regexp.MustCompile(`(?i)\bgooglesyndication\.com/`),

	// Engine-specific sponsored-result markers: Google and Bing wrap paid
	// clicks in tracked redirect paths, DuckDuckGo tags them with query
	// parameters on its y.js click script.
	regexp.MustCompile(`(?i)google\.[a-z.]+/aclk`),
	regexp.MustCompile(`(?i)bing\.com/aclick`),
	regexp.MustCompile(`(?i)duckduckgo\.com/y\.js`),
	regexp.MustCompile(`(?i)[?&]ad_(provider|domain)=`),

	// Generic ad path fragments.
	regexp.MustCompile(`(?i)/ads/`),
	regexp.MustCompile(`(?i)/advert`),
	regexp.MustCompile(`(?i)/sponsor`),
	regexp.MustCompile(`(?i)/promo/`),
	regexp.MustCompile(`(?i)/click\?`),
	regexp.MustCompile(`(?i)/aclk\?`),
	regexp.MustCompile(`(?i)/pagead/`),
}

// IsAd reports whether a URL matches any known advertising signature. It is
// pure and stateless; the first matching signature short-circuits.
func IsAd(url string) bool {
	for _, sig := range signatures {
		if sig.MatchString(url) {
			return true
		}
	}
	return false
}
