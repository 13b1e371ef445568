package router

import (
	"github.com/bondhu-robotics/bondhu/internal/handlers"
	"github.com/bondhu-robotics/bondhu/internal/intent"
	"github.com/bondhu-robotics/bondhu/internal/metrics"
	"github.com/bondhu-robotics/bondhu/internal/store"
)

// Strategy tells the dispatch loop how the response is produced.
type Strategy string

const (
	// StrategyCanned and StrategyTemplated responses come from fixed tables.
	StrategyCanned    Strategy = "canned"
	StrategyTemplated Strategy = "templated"
	// StrategyGenerative responses run the ai -> search -> apology chain.
	StrategyGenerative Strategy = "generative"
)

// Decision is the routing verdict for one classified intent.
type Decision struct {
	Handler  handlers.ID
	Strategy Strategy
	// Denied is set when the role gate refused the intent. Response then
	// carries the fixed denial text and no handler runs.
	Denied   bool
	Response string
}

// privileged lists intents that require teacher rank or above. The gate runs
// before any handler, so a denied command has no side effects.
var privileged = map[intent.Type]bool{
	intent.Move:             true,
	intent.StartPatrol:      true,
	intent.EndPatrol:        true,
	intent.RecordAttendance: true,
}

var handlerFor = map[intent.Type]handlers.ID{
	intent.StartPatrol:      handlers.School,
	intent.EndPatrol:        handlers.School,
	intent.RecordAttendance: handlers.School,
	intent.Move:             handlers.Motion,
	intent.RegisterFace:     handlers.Vision,
	intent.CapturePhoto:     handlers.Vision,
	intent.WebSearch:        handlers.Search,
	intent.TellJoke:         handlers.Entertainment,
	intent.TellStory:        handlers.Entertainment,
	intent.TellRiddle:       handlers.Entertainment,
	intent.Greet:            handlers.Greeting,
	intent.AskKnowledge:     handlers.AI,
}

// Router maps a classified intent to a handler, gated by the speaker's role.
type Router struct{}

func New() *Router { return &Router{} }

// Route decides where the intent goes. Unknown or low-confidence intents take
// the generative path; a slot-extraction downgrade still reaches its mapped
// handler, which asks for the missing slot itself.
func (r *Router) Route(it intent.Intent, person *store.Person) Decision {
	if privileged[it.Type] && !roleOf(person).AtLeast(store.RoleTeacher) {
		metrics.AccessDeniedTotal.Inc()
		return Decision{Denied: true, Response: Denial(it.Language)}
	}

	id, ok := handlerFor[it.Type]
	if !ok || it.Confidence < intent.ConfidenceDowngrade {
		return Decision{Handler: handlers.AI, Strategy: StrategyGenerative}
	}

	strategy := StrategyTemplated
	switch id {
	case handlers.Greeting, handlers.Entertainment:
		strategy = StrategyCanned
	case handlers.AI:
		strategy = StrategyGenerative
	}
	return Decision{Handler: id, Strategy: strategy}
}

func roleOf(p *store.Person) store.Role {
	if p == nil {
		return store.RoleUnknown
	}
	return p.Role
}
