package search

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubProvider struct {
	name    string
	results []Result
	err     error
	delay   time.Duration
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func TestMulti_FailureIsolation(t *testing.T) {
	ok := &stubProvider{name: "ok", results: []Result{{URL: "https://example.com", Title: "t"}}}
	bad := &stubProvider{name: "bad", err: errors.New("boom")}
	slow := &stubProvider{name: "slow", delay: 10 * time.Millisecond, results: []Result{{URL: "https://example.org", Title: "s"}}}

	m := &Multi{Providers: []Provider{ok, bad, slow}}
	groups := m.SearchAll(context.Background(), "q", 5)
	if len(groups) != 3 {
		t.Fatalf("expected one group per provider, got %d", len(groups))
	}
	if len(groups[0]) != 1 {
		t.Errorf("healthy provider lost results: %+v", groups[0])
	}
	if groups[1] != nil {
		t.Errorf("failed provider should contribute nil, got %+v", groups[1])
	}
	if len(groups[2]) != 1 {
		t.Errorf("slow provider must still be awaited: %+v", groups[2])
	}
}

func TestMulti_PerProviderTimeout(t *testing.T) {
	fast := &stubProvider{name: "fast", results: []Result{{URL: "https://example.com", Title: "t"}}}
	stuck := &stubProvider{name: "stuck", delay: time.Second}

	m := &Multi{Providers: []Provider{fast, stuck}, Timeout: 20 * time.Millisecond}
	start := time.Now()
	groups := m.SearchAll(context.Background(), "q", 5)
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Fatalf("timeout not enforced, took %s", elapsed)
	}
	if len(groups[0]) != 1 {
		t.Errorf("fast provider affected by sibling timeout: %+v", groups[0])
	}
	if groups[1] != nil {
		t.Errorf("timed-out provider should contribute nil, got %+v", groups[1])
	}
}

func TestHeaders_UserAgentPool(t *testing.T) {
	h := Headers{UserAgents: []string{"a", "b", "c"}, Pick: func(n int) int { return 2 }}
	if got := h.userAgent(); got != "c" {
		t.Errorf("expected pinned pick, got %q", got)
	}
	var empty Headers
	if got := empty.userAgent(); got == "" {
		t.Error("default pool should never yield an empty user agent")
	}
}
