package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"

	"github.com/bondhu-robotics/bondhu/internal/config"
	"github.com/bondhu-robotics/bondhu/internal/intent"
)

// ErrUnavailable means the model backend is unreachable or timed out. The
// router reacts by falling through to web search.
var ErrUnavailable = errors.New("ai backend unavailable")

// ContextTurn is one prior exchange passed as generation context.
type ContextTurn struct {
	Utterance string
	Response  string
}

// GenerateRequest is a single generation call.
type GenerateRequest struct {
	Prompt   string
	Language intent.Language
	// SchoolContext selects the school-assistant system prompt for enrolled
	// speakers.
	SchoolContext bool
	Context       []ContextTurn
}

// Client talks to a local Ollama server. Calls are bounded by the configured
// timeout so a hung backend becomes a routed failure instead of a stalled
// dispatch loop.
type Client struct {
	api          *api.Client
	banglaModel  string
	englishModel string
	timeout      time.Duration
}

func NewClient(cfg config.OllamaConfig) (*Client, error) {
	base, err := url.Parse(cfg.Host)
	if err != nil {
		return nil, fmt.Errorf("parsing ollama host: %w", err)
	}
	return &Client{
		api:          api.NewClient(base, &http.Client{}),
		banglaModel:  cfg.BanglaModel,
		englishModel: cfg.EnglishModel,
		timeout:      cfg.Timeout,
	}, nil
}

// Available reports whether the backend answers its heartbeat.
func (c *Client) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return c.api.Heartbeat(ctx) == nil
}

func (c *Client) model(lang intent.Language) string {
	if lang == intent.LangBangla {
		return c.banglaModel
	}
	return c.englishModel
}

// Generate produces a response for the prompt with the recent conversation as
// chat context.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	messages := []api.Message{
		{Role: "system", Content: systemPrompt(req.Language, req.SchoolContext)},
	}
	for _, t := range req.Context {
		messages = append(messages,
			api.Message{Role: "user", Content: t.Utterance},
			api.Message{Role: "assistant", Content: t.Response},
		)
	}
	messages = append(messages, api.Message{Role: "user", Content: req.Prompt})

	stream := false
	chatReq := &api.ChatRequest{
		Model:    c.model(req.Language),
		Messages: messages,
		Stream:   &stream,
		Options: map[string]any{
			"temperature": 0.7,
			"top_p":       0.9,
			"num_predict": 500,
		},
	}

	var sb strings.Builder
	err := c.api.Chat(ctx, chatReq, func(resp api.ChatResponse) error {
		sb.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	out := PostProcess(sb.String(), req.Language)
	if out == "" {
		return "", fmt.Errorf("%w: empty completion", ErrUnavailable)
	}
	return out, nil
}
