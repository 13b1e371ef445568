package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Validate checks Config for problems that would break the dispatch loop.
// It collects all errors into a single joined error.
func (c *Config) Validate() error {
	var errs []string

	if c.DB.Password == "" {
		errs = append(errs, "DB_PASSWORD is required")
	}

	// Port ranges
	if c.DB.Port < 1 || c.DB.Port > 65535 {
		errs = append(errs, fmt.Sprintf("DB_PORT must be 1-65535, got %d", c.DB.Port))
	}
	if c.Redis.Port < 1 || c.Redis.Port > 65535 {
		errs = append(errs, fmt.Sprintf("REDIS_PORT must be 1-65535, got %d", c.Redis.Port))
	}

	if !strings.HasPrefix(c.Ollama.Host, "http://") && !strings.HasPrefix(c.Ollama.Host, "https://") {
		errs = append(errs, "OLLAMA_HOST must be an http(s) URL")
	}
	if c.Ollama.Timeout <= 0 {
		errs = append(errs, "OLLAMA_TIMEOUT must be positive")
	}

	// Face matching: L2 distance over normalized 128-d encodings lives in (0, 1].
	if c.Face.MatchThreshold <= 0 || c.Face.MatchThreshold > 1 {
		errs = append(errs, fmt.Sprintf("FACE_MATCH_THRESHOLD must be in (0, 1], got %g", c.Face.MatchThreshold))
	}
	if c.Face.EmbeddingDim < 1 {
		errs = append(errs, fmt.Sprintf("FACE_EMBEDDING_DIM must be positive, got %d", c.Face.EmbeddingDim))
	}

	if c.Session.IdleTimeout <= 0 {
		errs = append(errs, "SESSION_IDLE_TIMEOUT must be positive")
	}
	if c.Session.ContextTurns < 1 {
		errs = append(errs, fmt.Sprintf("SESSION_CONTEXT_TURNS must be positive, got %d", c.Session.ContextTurns))
	}

	// Search credentials: warn only, the router falls back to an apology
	// when search is disabled.
	if !c.Search.Enabled() {
		slog.Warn("SEARCH_API_KEY/SEARCH_ENGINE_ID not set, web-search fallback is disabled")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  " + strings.Join(errs, "\n  "))
	}
	return nil
}
