// Package markdown renders extracted HTML fragments as Markdown.
package markdown

import (
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/rs/zerolog/log"

	"github.com/seekmux/seekmux/internal/extract"
)

// removedTags are stripped again at conversion time even though the
// extractor removes most of them already; conversion input does not always
// come from the extractor.
var removedTags = []string{"script", "style", "iframe", "noscript", "svg", "nav", "footer"}

var (
	multiBlankPattern = regexp.MustCompile(`\n{3,}`)
	trailingWSPattern = regexp.MustCompile(`(?m)[ \t]+$`)
)

// Convert renders an HTML fragment as Markdown using ATX headings, fenced
// code blocks and "-" bullets. It never fails: when the converter rejects
// the input, the degraded plain-text extraction is returned instead.
func Convert(fragment string) string {
	conv := md.NewConverter("", true, &md.Options{
		HeadingStyle:     "atx",
		CodeBlockStyle:   "fenced",
		BulletListMarker: "-",
	})
	conv.Remove(removedTags...)

	out, err := conv.ConvertString(fragment)
	if err != nil {
		log.Debug().Err(err).Msg("markdown conversion failed; falling back to plain text")
		return extract.PlainText(fragment)
	}
	out = multiBlankPattern.ReplaceAllString(out, "\n\n")
	out = trailingWSPattern.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}
