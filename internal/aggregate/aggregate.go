// Package aggregate merges per-engine result lists into the final output.
package aggregate

import (
	"github.com/seekmux/seekmux/internal/adfilter"
	"github.com/seekmux/seekmux/internal/search"
	"github.com/seekmux/seekmux/internal/urlnorm"
)

// Merge interleaves the groups round-robin by position (index 0 from each
// group in input order, then index 1, and so on), drops ad-classified URLs,
// de-duplicates on the normalized URL key keeping the first-seen item, and
// truncates to max. Interleaving keeps the head of the output diverse even
// when one engine returns far more results than the others. The output is
// deterministic for the same groups in the same order.
func Merge(groups [][]search.Result, max int) []search.Result {
	if max <= 0 {
		return nil
	}
	seen := map[string]struct{}{}
	out := make([]search.Result, 0, max)
	for i := 0; ; i++ {
		advanced := false
		for _, g := range groups {
			if i >= len(g) {
				continue
			}
			advanced = true
			r := g[i]
			if r.URL == "" || adfilter.IsAd(r.URL) {
				continue
			}
			key := urlnorm.Normalize(r.URL)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, r)
			if len(out) >= max {
				return out
			}
		}
		if !advanced {
			break
		}
	}
	return out
}
