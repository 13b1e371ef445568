package intent

import (
	"time"

	"github.com/google/uuid"
)

// Language is the utterance language tag reported by the speech collaborator.
type Language string

const (
	LangBangla  Language = "bn"
	LangEnglish Language = "en"
)

// Type classifies the purpose of an utterance.
type Type string

const (
	StartPatrol      Type = "start_patrol"
	EndPatrol        Type = "end_patrol"
	RecordAttendance Type = "record_attendance"
	Move             Type = "move"
	RegisterFace     Type = "register_face"
	CapturePhoto     Type = "capture_photo"
	WebSearch        Type = "web_search"
	TellJoke         Type = "tell_joke"
	TellStory        Type = "tell_story"
	TellRiddle       Type = "tell_riddle"
	Greet            Type = "greet"
	AskKnowledge     Type = "ask_knowledge"
	Unknown          Type = "unknown"
)

// Utterance is one completed speech-recognition result. Immutable once created.
type Utterance struct {
	Text      string
	Language  Language
	Timestamp time.Time
	SpeakerID *uuid.UUID
}

// Intent is the structured classification of an utterance. Produced fresh per
// utterance and never mutated afterwards.
type Intent struct {
	Type       Type
	Confidence float64
	Slots      map[string]string
	Text       string
	Language   Language
}

// Slot returns the named slot value, or "" if absent.
func (i Intent) Slot(name string) string {
	return i.Slots[name]
}

// Slot names used across handlers.
const (
	SlotTopic     = "topic"
	SlotQuery     = "query"
	SlotDirection = "direction"
	SlotName      = "name"
	SlotTarget    = "target"
	SlotKind      = "kind"
)
