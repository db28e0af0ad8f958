package extract

import (
	"strings"
	"testing"
)

func TestMain_RemovesNonContentTags(t *testing.T) {
	page := `<html><head><title>T</title><meta charset="utf-8"></head><body>
<nav>menu items</nav>
<script>var x = "<span>not content</span>";</script>
<style>.a { color: red }</style>
<!-- a comment -->
<p>Real content stays.</p>
<footer>copyright</footer>
<aside>related links</aside>
</body></html>`
	got := Main(page)
	for _, banned := range []string{"menu items", "var x", "color: red", "a comment", "copyright", "related links"} {
		if strings.Contains(got, banned) {
			t.Errorf("non-content fragment %q survived extraction:\n%s", banned, got)
		}
	}
	if !strings.Contains(got, "Real content stays.") {
		t.Errorf("content lost:\n%s", got)
	}
}

func TestMain_RegionPriority(t *testing.T) {
	cases := []struct {
		name, page, want, not string
	}{
		{
			"main wins over article",
			`<body><article>article text</article><main>main text</main></body>`,
			"main text", "article text",
		},
		{
			"article wins over div#content",
			`<body><div id="content">div text</div><article>article text</article></body>`,
			"article text", "div text",
		},
		{
			"div#content wins over body",
			`<body><p>body text</p><div id="content">div text</div></body>`,
			"div text", "body text",
		},
		{
			"body as fallback",
			`<body><p>only body text</p></body>`,
			"only body text", "",
		},
	}
	for _, c := range cases {
		got := Main(c.page)
		if !strings.Contains(got, c.want) {
			t.Errorf("%s: %q missing from %q", c.name, c.want, got)
		}
		if c.not != "" && strings.Contains(got, c.not) {
			t.Errorf("%s: lower-priority region %q leaked into %q", c.name, c.not, got)
		}
	}
}

func TestMain_NeverEmptyHanded(t *testing.T) {
	for _, page := range []string{"", "just plain text", "<p>unclosed"} {
		// Must not panic and must return something derived from the input.
		_ = Main(page)
	}
}

func TestPlainText(t *testing.T) {
	page := `<html><body><h1>Title</h1><script>junk()</script><p>Para one.</p><p>Para   two.</p></body></html>`
	got := PlainText(page)
	if strings.Contains(got, "junk") {
		t.Errorf("script content leaked: %q", got)
	}
	for _, want := range []string{"Title", "Para one.", "Para two."} {
		if !strings.Contains(got, want) {
			t.Errorf("%q missing from %q", want, got)
		}
	}
	if strings.Contains(got, "  ") {
		t.Errorf("whitespace not collapsed: %q", got)
	}
}

func TestPlainText_EmptyInput(t *testing.T) {
	if got := PlainText(""); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}
