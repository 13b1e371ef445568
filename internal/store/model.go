package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/bondhu-robotics/bondhu/internal/intent"
)

// Role is the access tier assigned to a person. Higher levels may do
// everything lower levels may.
type Role string

const (
	RoleUnknown   Role = "unknown"
	RoleStudent   Role = "student"
	RoleTeacher   Role = "teacher"
	RolePrincipal Role = "principal"
)

func (r Role) level() int {
	switch r {
	case RoleStudent:
		return 1
	case RoleTeacher:
		return 2
	case RolePrincipal:
		return 3
	default:
		return 0
	}
}

// AtLeast reports whether r grants the access of min.
func (r Role) AtLeast(min Role) bool {
	return r.level() >= min.level()
}

// Person is an identity record in the people table. A person always has
// exactly one role; deregistration is a soft delete.
type Person struct {
	ID               uuid.UUID
	Name             string
	Role             Role
	Embedding        []float32
	LanguagePref     intent.Language
	InteractionCount int
	CreatedAt        time.Time
	LastSeenAt       time.Time
	DeletedAt        *time.Time
}

// RegisterPersonInput is the validated input for enrolling a person.
type RegisterPersonInput struct {
	Name         string          `validate:"required,min=1,max=255"`
	Role         Role            `validate:"omitempty,oneof=unknown student teacher principal"`
	Embedding    []float32       `validate:"required,min=1"`
	LanguagePref intent.Language `validate:"omitempty,oneof=bn en"`
}

// ConversationTurn is one append-only row of the conversation history.
type ConversationTurn struct {
	ID         int64
	PersonID   *uuid.UUID
	Utterance  string
	Language   intent.Language
	Intent     intent.Type
	Confidence float64
	Response   string
	CreatedAt  time.Time
}
