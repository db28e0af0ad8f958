package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/seekmux/seekmux/internal/app"
	"github.com/seekmux/seekmux/internal/mcpserver"
)

func main() {
	// Logging setup. Stdout carries the MCP stream, so logs go to stderr.
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		configPath    string
		engines       string
		googleURL     string
		bingURL       string
		ddgURL        string
		timeout       time.Duration
		maxResults    int
		maxFetchChars int
		verbose       bool
		showVersion   bool
	)

	flag.StringVar(&configPath, "config", os.Getenv("SEEKMUX_CONFIG"), "Path to YAML/JSON config file (optional)")
	flag.StringVar(&engines, "engines", os.Getenv("SEEKMUX_ENGINES"), "Comma-separated engine subset (google,bing,duckduckgo); empty enables all")
	flag.StringVar(&googleURL, "google.url", "", "Override the Google search endpoint")
	flag.StringVar(&bingURL, "bing.url", "", "Override the Bing search endpoint")
	flag.StringVar(&ddgURL, "duckduckgo.url", "", "Override the DuckDuckGo search endpoint")
	flag.DurationVar(&timeout, "timeout", 0, "Per-request timeout for engine queries and page fetches (default 10s)")
	flag.IntVar(&maxResults, "max.results", 0, "Default numResults for web_search (default 8)")
	flag.IntVar(&maxFetchChars, "max.fetchChars", 0, "Default character budget for web_fetch (default 50000)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("seekmux %s (%s, %s)\n", app.BuildVersion, app.BuildCommit, app.BuildDate)
		return
	}

	cfg := app.Config{
		GoogleURL:     googleURL,
		BingURL:       bingURL,
		DuckDuckGoURL: ddgURL,
		Timeout:       timeout,
		MaxResults:    maxResults,
		MaxFetchChars: maxFetchChars,
		Verbose:       verbose,
	}
	if s := strings.TrimSpace(engines); s != "" {
		for _, part := range strings.Split(s, ",") {
			if v := strings.TrimSpace(part); v != "" {
				cfg.Engines = append(cfg.Engines, v)
			}
		}
	}

	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config file failed")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	log.Info().
		Strs("engines", enabledEngines(cfg)).
		Str("version", app.BuildVersion).
		Msg("serving MCP over stdio")
	return mcpserver.Serve(mcpserver.New(a, app.BuildVersion))
}

func enabledEngines(cfg app.Config) []string {
	if len(cfg.Engines) > 0 {
		return cfg.Engines
	}
	return app.EngineNames
}
