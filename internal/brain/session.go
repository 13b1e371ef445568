package brain

import (
	"time"

	"github.com/google/uuid"

	"github.com/bondhu-robotics/bondhu/internal/intent"
	"github.com/bondhu-robotics/bondhu/internal/store"
)

// Session is the task manager's view of who it is talking to right now.
// Only the task manager goroutine touches it, so it carries no locking.
type Session struct {
	// Person is the recognized speaker, nil while anonymous.
	Person *store.Person
	// Language is the last language the speaker used.
	Language intent.Language

	// pending holds a dispatched intent waiting for one more slot. The next
	// utterance fills the slot instead of being classified.
	pending   *intent.Intent
	awaitSlot string

	lastActivity time.Time
}

func NewSession() *Session {
	return &Session{Language: intent.LangBangla}
}

// Touch records activity at t.
func (s *Session) Touch(t time.Time) { s.lastActivity = t }

// Expired reports whether the session has been idle longer than timeout.
func (s *Session) Expired(now time.Time, timeout time.Duration) bool {
	return !s.lastActivity.IsZero() && now.Sub(s.lastActivity) > timeout
}

// Reset returns the session to its anonymous initial state.
func (s *Session) Reset() {
	s.Person = nil
	s.Language = intent.LangBangla
	s.pending = nil
	s.awaitSlot = ""
}

// Await parks it until the next utterance supplies the named slot.
func (s *Session) Await(it intent.Intent, slot string) {
	s.pending = &it
	s.awaitSlot = slot
}

// TakePending pops the parked intent with the slot filled from text. The
// second return is false when nothing was pending.
func (s *Session) TakePending(text string) (intent.Intent, bool) {
	if s.pending == nil {
		return intent.Intent{}, false
	}
	it := *s.pending
	if it.Slots == nil {
		it.Slots = make(map[string]string)
	}
	it.Slots[s.awaitSlot] = text
	it.Confidence = intent.ConfidenceExact
	s.pending = nil
	s.awaitSlot = ""
	return it, true
}

// PersonID returns the speaker's id, nil while anonymous.
func (s *Session) PersonID() *uuid.UUID {
	if s.Person == nil {
		return nil
	}
	return &s.Person.ID
}
