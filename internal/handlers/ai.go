package handlers

import (
	"context"
	"fmt"

	"github.com/bondhu-robotics/bondhu/internal/ai"
	"github.com/bondhu-robotics/bondhu/internal/intent"
	"github.com/bondhu-robotics/bondhu/internal/store"
)

// AIHandler answers open questions through the local model backend.
type AIHandler struct {
	client *ai.Client
}

func NewAIHandler(client *ai.Client) *AIHandler {
	return &AIHandler{client: client}
}

func (h *AIHandler) ID() ID { return AI }

func (h *AIHandler) Handle(ctx context.Context, req *Request) (*Result, error) {
	prompt := req.Intent.Slot(intent.SlotTopic)
	if prompt == "" {
		prompt = req.Intent.Text
	}

	response, err := h.client.Generate(ctx, ai.GenerateRequest{
		Prompt:        prompt,
		Language:      req.Language(),
		SchoolContext: schoolContext(req.Person),
		Context:       req.Context,
	})
	if err != nil {
		return nil, fmt.Errorf("generating response: %w", err)
	}
	return &Result{Response: response}, nil
}

// schoolContext is true for enrolled school members, who get the
// school-assistant persona instead of the general one.
func schoolContext(p *store.Person) bool {
	if p == nil {
		return false
	}
	switch p.Role {
	case store.RoleStudent, store.RoleTeacher, store.RolePrincipal:
		return true
	}
	return false
}
