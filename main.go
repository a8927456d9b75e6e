// go_resume — Resume Analysis & Job Matching MCP server.
//
// Parses resume text or PDFs into structured profiles (contact, education,
// experience, skills), stores them in PostgreSQL, fetches postings from
// Adzuna and GitHub Jobs, and ranks them against a candidate.
// Runs as HTTP MCP server or stdio transport.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_resume/internal/engine"
	"github.com/anatolykoptev/go_resume/internal/engine/resume"
	"github.com/anatolykoptev/go_resume/internal/resumeserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8892")
)

func main() {
	initEngine()

	slog.Info("starting go_resume",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_resume",
		Version: version,
	}, nil)

	resumeserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 7))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_resume",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		AdzunaAppID:          env.Str("ADZUNA_APP_ID", ""),
		AdzunaAPIKey:         env.Str("ADZUNA_API_KEY", ""),
		AdzunaCountry:        env.Str("ADZUNA_COUNTRY", "gb"),
		AdzunaResultsPerPage: env.Int("ADZUNA_RESULTS_PER_PAGE", 50),
		MaxEnrichURLs:        env.Int("MAX_ENRICH_URLS", 5),
		MaxContentChars:      env.Int("MAX_CONTENT_CHARS", 6000),
		FetchTimeout:         env.Duration("FETCH_TIMEOUT", 10*time.Second),
		DatabaseURL:          env.Str("DATABASE_URL", ""),
		TrackerPath:          env.Str("TRACKER_PATH", ""),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}
	engine.Init(c)

	// Profile storage (PostgreSQL)
	if c.DatabaseURL != "" {
		pdb, err := resume.ConnectProfileDB(context.Background(), c.DatabaseURL)
		if err != nil {
			slog.Warn("profile DB init failed, profiles disabled", slog.Any("error", err))
		} else {
			resume.SetProfileDB(pdb)
			slog.Info("profile DB initialized")
		}
	}

	// Job results are keyed by calendar day, so the TTL matches.
	cacheTTL := env.Duration("CACHE_TTL", 24*time.Hour)
	engine.InitCache(env.Str("REDIS_URL", ""), cacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)
}
