package sanitize

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	tagPattern     = regexp.MustCompile(`<[^>]*?>`)
	decimalPattern = regexp.MustCompile(`&#([0-9]+);`)
	hexPattern     = regexp.MustCompile(`&#[xX]([0-9a-fA-F]+);`)
)

// namedEntities covers the handful of entities that actually show up in
// search result markup. Anything else passes through unchanged.
var namedEntities = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&apos;", "'",
	"&nbsp;", " ",
	"&amp;", "&",
)

// DecodeEntities replaces numeric character references and the common named
// entities with their literal characters. Numeric references are decoded
// first so that already-escaped ampersands are not decoded twice.
func DecodeEntities(text string) string {
	text = hexPattern.ReplaceAllStringFunc(text, func(m string) string {
		return decodeRef(hexPattern.FindStringSubmatch(m)[1], 16, m)
	})
	text = decimalPattern.ReplaceAllStringFunc(text, func(m string) string {
		return decodeRef(decimalPattern.FindStringSubmatch(m)[1], 10, m)
	})
	return namedEntities.Replace(text)
}

func decodeRef(digits string, base int, original string) string {
	n, err := strconv.ParseInt(digits, base, 32)
	if err != nil || n <= 0 || n > utf8.MaxRune {
		return original
	}
	return string(rune(n))
}

// StripTags removes all <...> markup lexically, decodes entities and trims
// surrounding whitespace. It makes no attempt to interpret nested or
// malformed tags structurally.
func StripTags(html string) string {
	return strings.TrimSpace(DecodeEntities(tagPattern.ReplaceAllString(html, "")))
}
