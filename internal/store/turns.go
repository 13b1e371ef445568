package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AppendTurn persists one conversation turn. Writes are durable before the
// call returns.
func (s *Store) AppendTurn(ctx context.Context, t *ConversationTurn) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO conversation_turns (person_id, utterance, language, intent, confidence, response, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		t.PersonID, t.Utterance, t.Language, t.Intent, t.Confidence, t.Response, t.CreatedAt,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("appending turn: %w", err)
	}
	return nil
}

// QueryRecentTurns returns up to limit turns, most recent first. A nil
// personID returns turns across all speakers, including anonymous ones.
func (s *Store) QueryRecentTurns(ctx context.Context, personID *uuid.UUID, limit int) ([]ConversationTurn, error) {
	query := `SELECT id, person_id, utterance, language, intent, confidence, response, created_at
		 FROM conversation_turns`
	args := []any{limit}
	if personID != nil {
		query += ` WHERE person_id = $2`
		args = append(args, *personID)
	}
	query += ` ORDER BY created_at DESC LIMIT $1`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying recent turns: %w", err)
	}
	defer rows.Close()

	var turns []ConversationTurn
	for rows.Next() {
		var t ConversationTurn
		if err := rows.Scan(&t.ID, &t.PersonID, &t.Utterance, &t.Language,
			&t.Intent, &t.Confidence, &t.Response, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning turn: %w", err)
		}
		turns = append(turns, t)
	}
	return turns, rows.Err()
}

// RecordAttendance appends one attendance row for a person.
func (s *Store) RecordAttendance(ctx context.Context, personID uuid.UUID, status string, recordedBy *uuid.UUID) error {
	if status == "" {
		status = "present"
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO attendance (person_id, status, recorded_by) VALUES ($1, $2, $3)`,
		personID, status, recordedBy)
	if err != nil {
		return fmt.Errorf("recording attendance: %w", err)
	}
	return nil
}
