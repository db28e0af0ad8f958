package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const googleFixture = `<html><body>
<div id="chrome">header junk</div>
<div class="tF2Cxc"><div class="yuRUbf">
  <a href="https://example.com/alpha"><h3>Alpha Result</h3></a>
</div>
<div class="VwiC3b">Alpha summary text</div>
</div>
<div class="tF2Cxc">
  <a href="https://www.google.com/watch?v=abc"><h3>V</h3></a>
  <div class="VwiC3b">video card, internal link only</div>
</div>
<div class="tF2Cxc"><div class="yuRUbf">
  <a href="https://example.org/beta?x=1&amp;y=2"><h3>Beta &amp; Gamma</h3></a>
</div>
<div class="IsZvec">Beta fallback snippet</div>
</div>
</body></html>`

func TestParseGoogle_SkipsNonWebBlocks(t *testing.T) {
	got := parseGoogle(googleFixture)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d: %+v", len(got), got)
	}
	if got[0].URL != "https://example.com/alpha" {
		t.Errorf("unexpected url: %q", got[0].URL)
	}
	if got[0].Title != "Alpha Result" {
		t.Errorf("unexpected title: %q", got[0].Title)
	}
	if got[0].Snippet != "Alpha summary text" {
		t.Errorf("unexpected summary: %q", got[0].Snippet)
	}
	if got[1].URL != "https://example.org/beta?x=1&y=2" {
		t.Errorf("entities in href not decoded: %q", got[1].URL)
	}
	if got[1].Title != "Beta & Gamma" {
		t.Errorf("unexpected title: %q", got[1].Title)
	}
	if got[1].Snippet != "Beta fallback snippet" {
		t.Errorf("fallback snippet not used: %q", got[1].Snippet)
	}
}

func TestParseGoogle_MalformedInput(t *testing.T) {
	for _, page := range []string{"", "<html>nothing here</html>", `<div class="tF2Cxc">truncat`} {
		if got := parseGoogle(page); len(got) != 0 {
			t.Errorf("expected no results for %q, got %+v", page, got)
		}
	}
}

func TestGoogle_Search_UsesEndpointAndUA(t *testing.T) {
	var gotUA, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(googleFixture))
	}))
	defer srv.Close()

	g := &Google{
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
		Headers:    Headers{UserAgents: []string{"fixed-ua"}, Pick: func(int) int { return 0 }},
	}
	got, err := g.Search(context.Background(), "go testing", 1)
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("limit not applied, got %d results", len(got))
	}
	if gotUA != "fixed-ua" {
		t.Errorf("unexpected user agent: %q", gotUA)
	}
	if gotQuery != "go testing" {
		t.Errorf("unexpected query: %q", gotQuery)
	}
}

func TestGoogle_Search_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := &Google{BaseURL: srv.URL, HTTPClient: srv.Client()}
	if _, err := g.Search(context.Background(), "q", 5); err == nil {
		t.Fatal("expected error on 429")
	}
}
