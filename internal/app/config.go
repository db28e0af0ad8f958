package app

import (
	"fmt"
	"time"
)

// EngineNames lists the supported engines in the order their result groups
// are merged. The order is part of the output contract: it decides which
// engine wins a position in the round-robin interleave.
var EngineNames = []string{"google", "bing", "duckduckgo"}

// Config holds runtime configuration for the application.
type Config struct {
	// Engines selects which backends to query; empty means all of them.
	Engines []string

	// Endpoint overrides, mainly for tests and self-hosted mirrors.
	GoogleURL     string
	BingURL       string
	DuckDuckGoURL string

	// UserAgents is the rotation pool for outbound requests; empty uses
	// the stock pool.
	UserAgents []string

	// Timeout bounds each engine query and each page fetch. Zero means 10s.
	Timeout time.Duration

	// Defaults for the two operations.
	MaxResults    int // web_search numResults default (8)
	MaxFetchChars int // web_fetch character budget default (50000)

	Verbose bool
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	for _, e := range cfg.Engines {
		if !knownEngine(e) {
			return fmt.Errorf("config: unknown engine %q", e)
		}
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("config: negative timeout is not allowed")
	}
	if cfg.MaxResults < 0 || cfg.MaxFetchChars < 0 {
		return fmt.Errorf("config: negative limits are not allowed")
	}
	return nil
}

func knownEngine(name string) bool {
	for _, e := range EngineNames {
		if e == name {
			return true
		}
	}
	return false
}
