// Package extract isolates the readable main content of a fetched page.
//
// The cleanup pass is lexical: non-content tags are removed by matching
// each open tag through to its close tag or self-closing form, without
// building a parse tree. Region selection then runs on the cleaned
// document structurally. Both passes degrade to returning their input
// rather than failing.
package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// nonContentTags contribute no readable content and are removed wholesale
// before region selection.
var nonContentTags = []string{
	"script", "style", "iframe", "noscript", "svg", "object", "embed",
	"applet", "link", "meta", "head", "nav", "footer", "aside",
}

var (
	commentPattern     = regexp.MustCompile(`(?s)<!--.*?-->`)
	nonContentPatterns = compileTagPatterns(nonContentTags)
)

func compileTagPatterns(tags []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(tags))
	for _, tag := range tags {
		// Open tag through matching close tag, or a lone/self-closing form.
		out = append(out, regexp.MustCompile(`(?is)<`+tag+`\b[^>]*>.*?</`+tag+`\s*>|<`+tag+`\b[^>]*/?>`))
	}
	return out
}

// regionSelectors are tried in priority order; the first present region
// wins. <body> is effectively a catch-all since parsing synthesizes one.
var regionSelectors = []string{"main", "article", "div#content", "body"}

// Main returns the HTML fragment most likely to hold the page's main
// content. It never fails: when the cleaned document cannot be parsed or
// no region matches, the cleaned document itself is returned.
func Main(page string) string {
	cleaned := commentPattern.ReplaceAllString(page, "")
	for _, p := range nonContentPatterns {
		cleaned = p.ReplaceAllString(cleaned, "")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(cleaned))
	if err != nil {
		return cleaned
	}
	for _, sel := range regionSelectors {
		region := doc.Find(sel).First()
		if region.Length() == 0 {
			continue
		}
		if fragment, err := goquery.OuterHtml(region); err == nil && strings.TrimSpace(fragment) != "" {
			return fragment
		}
	}
	return cleaned
}
