package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, "http://localhost:11434", cfg.Ollama.Host)
	assert.Equal(t, "gemma:2b", cfg.Ollama.BanglaModel)
	assert.Equal(t, "gemma:2b", cfg.Ollama.EnglishModel)
	assert.Equal(t, 30*time.Second, cfg.Ollama.Timeout)
	assert.Equal(t, 2*time.Minute, cfg.Session.IdleTimeout)
	assert.Equal(t, 5, cfg.Session.ContextTurns)
	assert.Equal(t, time.Hour, cfg.Session.ContextTTL)
	assert.Equal(t, 0.6, cfg.Face.MatchThreshold)
	assert.Equal(t, 128, cfg.Face.EmbeddingDim)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("OLLAMA_BANGLA_MODEL", "llama3:8b")
	t.Setenv("SESSION_IDLE_TIMEOUT", "5m")
	t.Setenv("FACE_MATCH_THRESHOLD", "0.45")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "llama3:8b", cfg.Ollama.BanglaModel)
	assert.Equal(t, 5*time.Minute, cfg.Session.IdleTimeout)
	assert.Equal(t, 0.45, cfg.Face.MatchThreshold)
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("OLLAMA_TIMEOUT", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ollama.timeout")
}

func TestDSNAndAddr(t *testing.T) {
	db := DBConfig{Host: "db", Port: 5433, User: "u", Password: "p", Name: "bondhu", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5433/bondhu?sslmode=disable", db.DSN())

	r := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", r.Addr())
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{}

	err := cfg.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "DB_PASSWORD")
	assert.Contains(t, msg, "DB_PORT")
	assert.Contains(t, msg, "OLLAMA_HOST")
	assert.Contains(t, msg, "FACE_MATCH_THRESHOLD")
	assert.Contains(t, msg, "SESSION_IDLE_TIMEOUT")
	// All problems reported at once, one per line.
	assert.Greater(t, strings.Count(msg, "\n"), 3)
}

func TestValidate_AcceptsCompleteConfig(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
}

func TestSearchConfig_Enabled(t *testing.T) {
	assert.False(t, SearchConfig{}.Enabled())
	assert.False(t, SearchConfig{APIKey: "k"}.Enabled())
	assert.True(t, SearchConfig{APIKey: "k", EngineID: "e"}.Enabled())
}
