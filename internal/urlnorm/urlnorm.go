// Package urlnorm derives deduplication keys from result URLs.
//
// A key is never displayed to a consumer; it only has to be deterministic
// and collapse the URL variants different engines emit for the same
// resource (scheme, www. prefix, trailing slash, parameter order, tracking
// parameters).
package urlnorm

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/purell"
)

// trackingParams never change which resource a URL points at, only how the
// visit is attributed. utm_* parameters are matched by prefix separately.
var trackingParams = map[string]struct{}{
	"ref":     {},
	"fbclid":  {},
	"gclid":   {},
	"msclkid": {},
	"spm":     {},
	"from":    {},
}

// canonicalFlags is the purell pre-pass applied before key derivation. It
// cleans up the escaping and path artifacts typical of URLs recovered from
// scraped markup and redirect wrappers.
const canonicalFlags = purell.FlagLowercaseScheme |
	purell.FlagLowercaseHost |
	purell.FlagDecodeUnnecessaryEscapes |
	purell.FlagRemoveDefaultPort |
	purell.FlagRemoveDotSegments |
	purell.FlagRemoveDuplicateSlashes |
	purell.FlagRemoveFragment

// Normalize returns the deduplication key for raw. It never fails: inputs
// that cannot be parsed as a URL fall back to the lowercased raw string.
// Normalize is idempotent; keys fed back in map to themselves.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	// Keys are scheme-less, so a previously produced key arrives here
	// without "://". Reattach a scheme to make the round trip exact.
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil || u.Hostname() == "" {
		return strings.ToLower(strings.TrimSpace(raw))
	}
	if canon, cerr := purell.NormalizeURLString(s, canonicalFlags); cerr == nil {
		if cu, perr := url.Parse(canon); perr == nil {
			u = cu
		}
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	path := strings.TrimRight(u.EscapedPath(), "/")

	q := u.Query()
	for name := range q {
		lower := strings.ToLower(name)
		if _, tracked := trackingParams[lower]; tracked || strings.HasPrefix(lower, "utm_") {
			q.Del(name)
		}
	}

	key := host + path
	if enc := q.Encode(); enc != "" {
		key += "?" + enc
	}
	return strings.ToLower(key)
}
