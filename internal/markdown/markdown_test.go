package markdown

import (
	"strings"
	"testing"
)

func TestConvert_Structure(t *testing.T) {
	fragment := `<h1>Heading</h1>
<p>A paragraph with <a href="https://example.com">a link</a>.</p>
<ul><li>first</li><li>second</li></ul>
<pre><code>fmt.Println("hi")</code></pre>`

	got := Convert(fragment)
	if !strings.Contains(got, "# Heading") {
		t.Errorf("expected ATX heading, got:\n%s", got)
	}
	if !strings.Contains(got, "[a link](https://example.com)") {
		t.Errorf("expected markdown link, got:\n%s", got)
	}
	if !strings.Contains(got, "- first") || !strings.Contains(got, "- second") {
		t.Errorf("expected dash bullets, got:\n%s", got)
	}
	if !strings.Contains(got, "```") {
		t.Errorf("expected fenced code block, got:\n%s", got)
	}
}

func TestConvert_RemovesNoiseTags(t *testing.T) {
	fragment := `<p>keep</p><script>drop()</script><nav>menu</nav><footer>foot</footer>`
	got := Convert(fragment)
	for _, banned := range []string{"drop()", "menu", "foot"} {
		if strings.Contains(got, banned) {
			t.Errorf("noise %q survived conversion:\n%s", banned, got)
		}
	}
	if !strings.Contains(got, "keep") {
		t.Errorf("content lost:\n%s", got)
	}
}

func TestConvert_CollapsesBlankRuns(t *testing.T) {
	fragment := `<p>one</p><br><br><br><br><p>two</p>`
	got := Convert(fragment)
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("blank runs not collapsed:\n%q", got)
	}
}

func TestConvert_NeverReturnsError(t *testing.T) {
	// Degenerate inputs must still produce text (possibly empty), not panic.
	for _, fragment := range []string{"", "plain text", "<div><p>unclosed", "<<<>>>"} {
		_ = Convert(fragment)
	}
}
