package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	DB      DBConfig
	Redis   RedisConfig
	Ollama  OllamaConfig
	Search  SearchConfig
	Session SessionConfig
	Face    FaceConfig
	Metrics MetricsConfig
	Log     LogConfig
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type OllamaConfig struct {
	Host         string
	BanglaModel  string
	EnglishModel string
	Timeout      time.Duration
}

type SearchConfig struct {
	APIKey   string
	EngineID string
	Timeout  time.Duration
}

// Enabled reports whether search credentials are configured.
func (c SearchConfig) Enabled() bool {
	return c.APIKey != "" && c.EngineID != ""
}

type SessionConfig struct {
	IdleTimeout  time.Duration
	ContextTurns int
	ContextTTL   time.Duration
}

type FaceConfig struct {
	MatchThreshold float64
	EmbeddingDim   int
}

type MetricsConfig struct {
	Addr string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Load .env file if it exists (ignore error if missing)
	_ = k.Load(file.Provider(".env"), dotenv.Parser())

	// Load environment variables (override .env)
	err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(strings.ReplaceAll(s, "_", "."))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	cfg := &Config{
		DB: DBConfig{
			Host:     k.String("db.host"),
			Port:     k.Int("db.port"),
			User:     k.String("db.user"),
			Password: k.String("db.password"),
			Name:     k.String("db.name"),
			SSLMode:  k.String("db.sslmode"),
			MaxConns: int32(k.Int("db.max.conns")),
		},
		Redis: RedisConfig{
			Host:     k.String("redis.host"),
			Port:     k.Int("redis.port"),
			Password: k.String("redis.password"),
			DB:       k.Int("redis.db"),
		},
		Ollama: OllamaConfig{
			Host:         k.String("ollama.host"),
			BanglaModel:  k.String("ollama.bangla.model"),
			EnglishModel: k.String("ollama.english.model"),
		},
		Search: SearchConfig{
			APIKey:   k.String("search.api.key"),
			EngineID: k.String("search.engine.id"),
		},
		Session: SessionConfig{
			ContextTurns: k.Int("session.context.turns"),
		},
		Face: FaceConfig{
			MatchThreshold: k.Float64("face.match.threshold"),
			EmbeddingDim:   k.Int("face.embedding.dim"),
		},
		Metrics: MetricsConfig{
			Addr: k.String("metrics.addr"),
		},
		Log: LogConfig{
			Level:  k.String("log.level"),
			Format: k.String("log.format"),
		},
	}

	// Apply defaults
	if cfg.DB.Host == "" {
		cfg.DB.Host = "localhost"
	}
	if cfg.DB.Port == 0 {
		cfg.DB.Port = 5432
	}
	if cfg.DB.User == "" {
		cfg.DB.User = "bondhu"
	}
	if cfg.DB.Name == "" {
		cfg.DB.Name = "bondhu"
	}
	if cfg.DB.SSLMode == "" {
		cfg.DB.SSLMode = "disable"
	}
	if cfg.DB.MaxConns == 0 {
		cfg.DB.MaxConns = 10
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Ollama.Host == "" {
		cfg.Ollama.Host = "http://localhost:11434"
	}
	if cfg.Ollama.BanglaModel == "" {
		cfg.Ollama.BanglaModel = "gemma:2b"
	}
	if cfg.Ollama.EnglishModel == "" {
		cfg.Ollama.EnglishModel = "gemma:2b"
	}
	if cfg.Session.ContextTurns == 0 {
		cfg.Session.ContextTurns = 5
	}
	if cfg.Face.MatchThreshold == 0 {
		cfg.Face.MatchThreshold = 0.6
	}
	if cfg.Face.EmbeddingDim == 0 {
		cfg.Face.EmbeddingDim = 128
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}

	// Parse durations
	cfg.Ollama.Timeout, err = parseDuration(k, "ollama.timeout", "30s")
	if err != nil {
		return nil, err
	}
	cfg.Search.Timeout, err = parseDuration(k, "search.timeout", "10s")
	if err != nil {
		return nil, err
	}
	cfg.Session.IdleTimeout, err = parseDuration(k, "session.idle.timeout", "2m")
	if err != nil {
		return nil, err
	}
	cfg.Session.ContextTTL, err = parseDuration(k, "session.context.ttl", "1h")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseDuration(k *koanf.Koanf, key, fallback string) (time.Duration, error) {
	raw := k.String(key)
	if raw == "" {
		raw = fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return d, nil
}
