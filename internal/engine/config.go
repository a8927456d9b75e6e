package engine

import (
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	AdzunaAppID          string
	AdzunaAPIKey         string
	AdzunaCountry        string // two-letter market code, e.g. "gb", "us"
	AdzunaResultsPerPage int
	MaxEnrichURLs        int // postings enriched per fetch when the description is empty
	MaxContentChars      int
	FetchTimeout         time.Duration
	DatabaseURL          string
	TrackerPath          string // SQLite match-history DB; empty = $HOME/.go_resume/matches.db
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
	HTTPClient           *http.Client
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (resume, jobs).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	if c.AdzunaCountry == "" {
		c.AdzunaCountry = "gb"
	}
	if c.AdzunaResultsPerPage <= 0 {
		c.AdzunaResultsPerPage = 50
	}
	if c.MaxContentChars <= 0 {
		c.MaxContentChars = 6000
	}
	cfg = c
	Cfg = &cfg
}
