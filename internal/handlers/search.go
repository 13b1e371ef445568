package handlers

import (
	"context"
	"fmt"

	"github.com/bondhu-robotics/bondhu/internal/intent"
	"github.com/bondhu-robotics/bondhu/internal/search"
)

// SearchHandler answers factual queries through the web search client.
type SearchHandler struct {
	client *search.Client
}

func NewSearchHandler(client *search.Client) *SearchHandler {
	return &SearchHandler{client: client}
}

func (h *SearchHandler) ID() ID { return Search }

func (h *SearchHandler) Handle(ctx context.Context, req *Request) (*Result, error) {
	query := req.Intent.Slot(intent.SlotQuery)
	if query == "" {
		query = req.Intent.Slot(intent.SlotTopic)
	}
	if query == "" {
		query = req.Intent.Text
	}

	response, err := h.client.Search(ctx, query, req.Language())
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", query, err)
	}
	return &Result{Response: response}, nil
}
