package handlers

import (
	"context"
	"fmt"

	"github.com/bondhu-robotics/bondhu/internal/ai"
	"github.com/bondhu-robotics/bondhu/internal/intent"
	"github.com/bondhu-robotics/bondhu/internal/store"
)

// ID identifies an action handler. The set is closed: handlers are registered
// explicitly at startup, never discovered.
type ID string

const (
	Greeting      ID = "greeting"
	Entertainment ID = "entertainment"
	Motion        ID = "motion"
	Vision        ID = "vision"
	School        ID = "school"
	AI            ID = "ai"
	Search        ID = "search"
)

// Request carries everything a handler may need for one turn.
type Request struct {
	Intent intent.Intent
	// Person is the recognized speaker, nil for an anonymous session.
	Person *store.Person
	// Context is the recent conversation window for generative handlers.
	Context []ai.ContextTurn
}

// Language returns the turn's language tag.
func (r *Request) Language() intent.Language {
	return r.Intent.Language
}

// Result is the outcome of one handler execution.
type Result struct {
	Response string
	// AwaitSlot, when set, asks the task manager to feed the next utterance
	// directly into the named slot and re-dispatch the same intent.
	AwaitSlot string
}

// Handler fulfills one action domain.
type Handler interface {
	ID() ID
	Handle(ctx context.Context, req *Request) (*Result, error)
}

// Registry is the closed handler set.
type Registry struct {
	handlers map[ID]Handler
}

// NewRegistry builds a registry from an explicit handler list.
func NewRegistry(hs ...Handler) (*Registry, error) {
	m := make(map[ID]Handler, len(hs))
	for _, h := range hs {
		if _, dup := m[h.ID()]; dup {
			return nil, fmt.Errorf("duplicate handler %q", h.ID())
		}
		m[h.ID()] = h
	}
	return &Registry{handlers: m}, nil
}

// Get returns the handler for id.
func (r *Registry) Get(id ID) (Handler, bool) {
	h, ok := r.handlers[id]
	return h, ok
}
