package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/bondhu-robotics/bondhu/internal/config"
	"github.com/bondhu-robotics/bondhu/internal/intent"
)

// ErrUnavailable means search is not configured or the request failed. The
// router reacts with the fixed apology.
var ErrUnavailable = errors.New("web search unavailable")

const defaultBaseURL = "https://www.googleapis.com/customsearch/v1"

// Client queries the Google Custom Search JSON API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	engineID   string
	baseURL    string
}

func NewClient(cfg config.SearchConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		apiKey:     cfg.APIKey,
		engineID:   cfg.EngineID,
		baseURL:    defaultBaseURL,
	}
}

// Enabled reports whether API credentials are configured.
func (c *Client) Enabled() bool {
	return c.apiKey != "" && c.engineID != ""
}

type searchResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
		Link    string `json:"link"`
	} `json:"items"`
}

// Search runs a language-restricted query and formats the top results as
// speakable text.
func (c *Client) Search(ctx context.Context, query string, lang intent.Language) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("%w: missing API credentials", ErrUnavailable)
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("cx", c.engineID)
	params.Set("q", query)
	params.Set("num", "5")
	params.Set("safe", "medium")
	if lang == intent.LangBangla {
		params.Set("lr", "lang_bn")
	} else {
		params.Set("lr", "lang_en")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("building search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var data searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("decoding search response: %w", err)
	}

	return formatResults(data, lang), nil
}

func formatResults(data searchResponse, lang intent.Language) string {
	if len(data.Items) == 0 {
		if lang == intent.LangBangla {
			return "দুঃখিত, এই বিষয়ে কোনো তথ্য পাইনি।"
		}
		return "Sorry, no information found on this topic."
	}

	var sb strings.Builder
	if lang == intent.LangBangla {
		sb.WriteString("খুঁজে পাওয়া তথ্য:\n")
	} else {
		sb.WriteString("Search results:\n")
	}

	max := len(data.Items)
	if max > 3 {
		max = 3
	}
	for i := 0; i < max; i++ {
		item := data.Items[i]
		fmt.Fprintf(&sb, "%d. %s — %s\n", i+1, item.Title, item.Snippet)
	}
	return strings.TrimSpace(sb.String())
}
