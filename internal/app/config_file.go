package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested
// sections map naturally to flags.
type FileConfig struct {
	Engines []string `yaml:"engines" json:"engines"`

	Endpoints struct {
		Google     string `yaml:"google" json:"google"`
		Bing       string `yaml:"bing" json:"bing"`
		DuckDuckGo string `yaml:"duckduckgo" json:"duckduckgo"`
	} `yaml:"endpoints" json:"endpoints"`

	UserAgents []string      `yaml:"userAgents" json:"userAgents"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout"`

	Max struct {
		Results    int `yaml:"results" json:"results"`
		FetchChars int `yaml:"fetchChars" json:"fetchChars"`
	} `yaml:"max" json:"max"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// that are currently unset/zero in cfg. Flags should already have been
// parsed; this lets file config supply defaults while preserving explicit
// flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if len(cfg.Engines) == 0 && len(fc.Engines) > 0 {
		cfg.Engines = append([]string{}, fc.Engines...)
	}
	if cfg.GoogleURL == "" && fc.Endpoints.Google != "" {
		cfg.GoogleURL = fc.Endpoints.Google
	}
	if cfg.BingURL == "" && fc.Endpoints.Bing != "" {
		cfg.BingURL = fc.Endpoints.Bing
	}
	if cfg.DuckDuckGoURL == "" && fc.Endpoints.DuckDuckGo != "" {
		cfg.DuckDuckGoURL = fc.Endpoints.DuckDuckGo
	}
	if len(cfg.UserAgents) == 0 && len(fc.UserAgents) > 0 {
		cfg.UserAgents = append([]string{}, fc.UserAgents...)
	}
	if cfg.Timeout == 0 && fc.Timeout > 0 {
		cfg.Timeout = fc.Timeout
	}
	if cfg.MaxResults == 0 && fc.Max.Results > 0 {
		cfg.MaxResults = fc.Max.Results
	}
	if cfg.MaxFetchChars == 0 && fc.Max.FetchChars > 0 {
		cfg.MaxFetchChars = fc.Max.FetchChars
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
