package extract

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/seekmux/seekmux/internal/sanitize"
)

// PlainText is the degraded fallback used when Markdown conversion fails:
// strip all markup, keep rough block separation, collapse whitespace.
// Page simplification must always produce some text, so this never fails
// either — unparseable input falls back to lexical tag stripping.
func PlainText(page string) string {
	node, err := html.Parse(strings.NewReader(page))
	if err != nil || node == nil {
		return collapseBlankLines(sanitize.StripTags(page))
	}
	var b strings.Builder
	collectText(&b, node)
	return collapseBlankLines(b.String())
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "iframe", "svg", "nav", "footer", "aside":
			return
		case "br", "hr", "p", "div", "li", "tr", "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n")
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(strings.TrimSpace(n.Data))
		b.WriteString(" ")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "li", "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n")
		}
	}
}

func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.Join(strings.Fields(line), " ")
		if trimmed == "" {
			if len(out) > 0 && out[len(out)-1] == "" {
				continue
			}
			if len(out) == 0 {
				continue
			}
			out = append(out, "")
			continue
		}
		out = append(out, trimmed)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
