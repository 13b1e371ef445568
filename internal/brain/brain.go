package brain

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bondhu-robotics/bondhu/internal/ai"
	"github.com/bondhu-robotics/bondhu/internal/config"
	"github.com/bondhu-robotics/bondhu/internal/handlers"
	"github.com/bondhu-robotics/bondhu/internal/intent"
	"github.com/bondhu-robotics/bondhu/internal/metrics"
	"github.com/bondhu-robotics/bondhu/internal/router"
	"github.com/bondhu-robotics/bondhu/internal/store"
)

// Speaker is the text-to-speech collaborator boundary.
type Speaker interface {
	Speak(ctx context.Context, text string, lang intent.Language) error
}

// AIBackend is the availability probe for the generative chain. The full
// generation call goes through the registered AI handler.
type AIBackend interface {
	Available(ctx context.Context) bool
}

// Storage is the durable-store surface the dispatch loop needs.
type Storage interface {
	FindPersonByEmbedding(ctx context.Context, embedding []float32) (*store.Person, error)
	AppendTurn(ctx context.Context, t *store.ConversationTurn) error
	TouchPerson(ctx context.Context, id uuid.UUID) error
}

// event is one item of sensory input for the dispatch loop.
type event struct {
	utterance *intent.Utterance
	embedding []float32
}

// TaskManager owns the session and serializes every turn through one
// goroutine, so the store and session never see concurrent writers.
type TaskManager struct {
	recognizer *intent.Recognizer
	router     *router.Router
	registry   *handlers.Registry
	store      Storage
	contexts   *store.ContextStore
	ai         AIBackend
	speaker    Speaker
	cfg        config.SessionConfig
	logger     *slog.Logger

	session *Session
	intake  chan event
}

func NewTaskManager(
	recognizer *intent.Recognizer,
	rt *router.Router,
	registry *handlers.Registry,
	st Storage,
	contexts *store.ContextStore,
	aiClient AIBackend,
	speaker Speaker,
	cfg config.SessionConfig,
	logger *slog.Logger,
) *TaskManager {
	return &TaskManager{
		recognizer: recognizer,
		router:     rt,
		registry:   registry,
		store:      st,
		contexts:   contexts,
		ai:         aiClient,
		speaker:    speaker,
		cfg:        cfg,
		logger:     logger,
		session:    NewSession(),
		intake:     make(chan event, 16),
	}
}

// SubmitUtterance queues one speech-recognition result for dispatch.
func (m *TaskManager) SubmitUtterance(u intent.Utterance) {
	m.intake <- event{utterance: &u}
}

// SubmitFace queues one detected face embedding. The next turns run under the
// matched person's identity and role.
func (m *TaskManager) SubmitFace(embedding []float32) {
	m.intake <- event{embedding: embedding}
}

// Run consumes the intake queue until ctx is canceled.
func (m *TaskManager) Run(ctx context.Context) error {
	m.logger.Info("task manager started")
	for {
		select {
		case <-ctx.Done():
			m.logger.Info("task manager stopping")
			return ctx.Err()
		case ev := <-m.intake:
			if ev.embedding != nil {
				m.identifyFace(ctx, ev.embedding)
				continue
			}
			if ev.utterance != nil {
				m.processTurn(ctx, *ev.utterance)
			}
		}
	}
}

// identifyFace resolves an embedding to an enrolled person and binds the
// session to them. An unmatched face leaves the session anonymous.
func (m *TaskManager) identifyFace(ctx context.Context, embedding []float32) {
	person, err := m.store.FindPersonByEmbedding(ctx, embedding)
	if err != nil {
		m.logger.Error("face lookup failed", "error", err)
		return
	}
	if person == nil {
		m.logger.Debug("face did not match anyone enrolled")
		return
	}

	m.session.Person = person
	m.session.Language = person.LanguagePref
	m.session.Touch(time.Now())
	m.logger.Info("speaker identified", "person", person.Name, "role", person.Role)
}

func (m *TaskManager) processTurn(ctx context.Context, u intent.Utterance) {
	if strings.TrimSpace(u.Text) == "" {
		return
	}
	start := time.Now()

	if m.session.Expired(start, m.cfg.IdleTimeout) {
		m.logger.Info("session idle, resetting")
		if err := m.contexts.Clear(ctx, m.session.PersonID()); err != nil {
			m.logger.Warn("clearing context window failed", "error", err)
		}
		m.session.Reset()
	}
	m.session.Touch(start)
	m.session.Language = u.Language

	// A parked intent waiting for a slot consumes this utterance whole.
	it, resumed := m.session.TakePending(u.Text)
	if !resumed {
		it = m.recognizer.Recognize(u)
	}

	m.logger.Debug("intent recognized",
		"intent", it.Type, "confidence", it.Confidence, "language", it.Language)

	response := m.dispatch(ctx, it)

	if err := m.speaker.Speak(ctx, response, it.Language); err != nil {
		m.logger.Error("speaking response failed", "error", err)
	}

	m.persistTurn(ctx, it, u.Text, response)

	metrics.TurnsTotal.WithLabelValues(string(it.Type), string(it.Language)).Inc()
	metrics.TurnDuration.Observe(time.Since(start).Seconds())
}

// dispatch routes and executes one intent, always producing a speakable
// response. Failures degrade through the fallback chain, never to silence.
func (m *TaskManager) dispatch(ctx context.Context, it intent.Intent) string {
	decision := m.router.Route(it, m.session.Person)
	if decision.Denied {
		m.logger.Info("access denied", "intent", it.Type, "role", roleName(m.session.Person))
		return decision.Response
	}

	if decision.Strategy == router.StrategyGenerative {
		return m.generative(ctx, it)
	}

	handler, ok := m.registry.Get(decision.Handler)
	if !ok {
		m.logger.Error("no handler registered", "handler", decision.Handler)
		return router.Apology(it.Language)
	}

	result, err := handler.Handle(ctx, m.request(ctx, it))
	if err != nil {
		metrics.HandlerFailuresTotal.WithLabelValues(string(decision.Handler)).Inc()
		m.logger.Error("handler failed", "handler", decision.Handler, "error", err)
		return router.Apology(it.Language)
	}

	if result.AwaitSlot != "" {
		m.session.Await(it, result.AwaitSlot)
	}
	return result.Response
}

// generative runs the ai -> search -> apology chain.
func (m *TaskManager) generative(ctx context.Context, it intent.Intent) string {
	req := m.request(ctx, it)

	if m.ai.Available(ctx) {
		if h, ok := m.registry.Get(handlers.AI); ok {
			result, err := h.Handle(ctx, req)
			if err == nil {
				return result.Response
			}
			if !errors.Is(err, ai.ErrUnavailable) {
				metrics.HandlerFailuresTotal.WithLabelValues(string(handlers.AI)).Inc()
			}
			m.logger.Warn("ai generation failed, falling back to search", "error", err)
		}
	}
	metrics.FallbacksTotal.WithLabelValues("ai_to_search").Inc()

	if h, ok := m.registry.Get(handlers.Search); ok {
		result, err := h.Handle(ctx, req)
		if err == nil {
			return result.Response
		}
		m.logger.Warn("search fallback failed", "error", err)
	}
	metrics.FallbacksTotal.WithLabelValues("search_to_apology").Inc()

	return router.Apology(it.Language)
}

// request assembles the handler request, including the recent conversation
// window for generative handlers.
func (m *TaskManager) request(ctx context.Context, it intent.Intent) *handlers.Request {
	req := &handlers.Request{Intent: it, Person: m.session.Person}

	entries, err := m.contexts.Recent(ctx, m.session.PersonID(), m.cfg.ContextTurns)
	if err != nil {
		m.logger.Warn("loading context window failed", "error", err)
		return req
	}
	for _, e := range entries {
		req.Context = append(req.Context, ai.ContextTurn{Utterance: e.Utterance, Response: e.Response})
	}
	return req
}

// persistTurn writes the durable record and the short-term window. The
// Postgres write gets one retry; the turn is spoken either way, so the only
// cost of a double failure is a gap in history. utterance is the raw text of
// this turn, which differs from it.Text when a parked intent was resumed.
func (m *TaskManager) persistTurn(ctx context.Context, it intent.Intent, utterance, response string) {
	turn := &store.ConversationTurn{
		PersonID:   m.session.PersonID(),
		Utterance:  utterance,
		Language:   it.Language,
		Intent:     it.Type,
		Confidence: it.Confidence,
		Response:   response,
	}
	if err := m.store.AppendTurn(ctx, turn); err != nil {
		metrics.StoreRetriesTotal.Inc()
		m.logger.Warn("turn write failed, retrying", "error", err)
		time.Sleep(200 * time.Millisecond)
		if err := m.store.AppendTurn(ctx, turn); err != nil {
			m.logger.Error("turn write failed permanently", "error", err)
		}
	}

	if m.session.Person != nil {
		if err := m.store.TouchPerson(ctx, m.session.Person.ID); err != nil {
			m.logger.Warn("touching person failed", "error", err)
		}
	}

	entry := store.ContextEntry{
		Utterance: utterance,
		Response:  response,
		Language:  it.Language,
		Timestamp: time.Now().UTC(),
	}
	if err := m.contexts.Append(ctx, m.session.PersonID(), entry, m.cfg.ContextTurns, m.cfg.ContextTTL); err != nil {
		m.logger.Warn("appending context window failed", "error", err)
	}
}

func roleName(p *store.Person) store.Role {
	if p == nil {
		return store.RoleUnknown
	}
	return p.Role
}
