package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/bondhu-robotics/bondhu/internal/intent"
)

// ErrPersonNotFound is returned when an operation names a person the store
// does not know.
var ErrPersonNotFound = errors.New("person not found")

// Store owns all persisted people and conversation state. The task manager is
// its only writer, so no locking beyond the connection pool is needed.
type Store struct {
	pool      *pgxpool.Pool
	threshold float64
	validate  *validator.Validate
}

// New creates a Store. threshold is the maximum L2 embedding distance that
// still counts as the same face.
func New(pool *pgxpool.Pool, threshold float64) *Store {
	return &Store{
		pool:      pool,
		threshold: threshold,
		validate:  validator.New(),
	}
}

const personColumns = `id, name, role, embedding, language_pref, interaction_count, created_at, last_seen_at, deleted_at`

func scanPerson(row pgx.Row) (*Person, error) {
	var p Person
	var vec pgvector.Vector
	if err := row.Scan(&p.ID, &p.Name, &p.Role, &vec, &p.LanguagePref,
		&p.InteractionCount, &p.CreatedAt, &p.LastSeenAt, &p.DeletedAt); err != nil {
		return nil, err
	}
	p.Embedding = vec.Slice()
	return &p, nil
}

// UpsertPerson enrolls a person. If the embedding matches an existing person
// within the configured threshold the existing record is updated instead of a
// duplicate being created, and its id is returned.
func (s *Store) UpsertPerson(ctx context.Context, in RegisterPersonInput) (*Person, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("validating registration: %w", err)
	}
	if in.Role == "" {
		in.Role = RoleUnknown
	}
	if in.LanguagePref == "" {
		in.LanguagePref = intent.LangBangla
	}

	existing, err := s.FindPersonByEmbedding(ctx, in.Embedding)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if existing != nil {
		row := s.pool.QueryRow(ctx,
			`UPDATE people
			 SET name = $2, role = $3, embedding = $4, language_pref = $5, last_seen_at = $6
			 WHERE id = $1
			 RETURNING `+personColumns,
			existing.ID, in.Name, in.Role, pgvector.NewVector(in.Embedding), in.LanguagePref, now)
		p, err := scanPerson(row)
		if err != nil {
			return nil, fmt.Errorf("updating person: %w", err)
		}
		return p, nil
	}

	row := s.pool.QueryRow(ctx,
		`INSERT INTO people (id, name, role, embedding, language_pref, created_at, last_seen_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $6)
		 RETURNING `+personColumns,
		uuid.New(), in.Name, in.Role, pgvector.NewVector(in.Embedding), in.LanguagePref, now)
	p, err := scanPerson(row)
	if err != nil {
		return nil, fmt.Errorf("inserting person: %w", err)
	}
	return p, nil
}

// FindPersonByEmbedding returns the nearest enrolled person whose embedding
// lies within the match threshold, or nil when the best candidate is too far
// away. It never returns a low-confidence guess.
func (s *Store) FindPersonByEmbedding(ctx context.Context, embedding []float32) (*Person, error) {
	vec := pgvector.NewVector(embedding)
	var p Person
	var stored pgvector.Vector
	var distance float64
	err := s.pool.QueryRow(ctx,
		`SELECT `+personColumns+`, embedding <-> $1 AS distance
		 FROM people
		 WHERE deleted_at IS NULL AND embedding IS NOT NULL
		 ORDER BY embedding <-> $1
		 LIMIT 1`,
		vec,
	).Scan(&p.ID, &p.Name, &p.Role, &stored, &p.LanguagePref,
		&p.InteractionCount, &p.CreatedAt, &p.LastSeenAt, &p.DeletedAt, &distance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("searching person by embedding: %w", err)
	}
	if distance > s.threshold {
		return nil, nil
	}
	p.Embedding = stored.Slice()
	return &p, nil
}

// FindPersonByName returns the person with the given display name, or nil.
func (s *Store) FindPersonByName(ctx context.Context, name string) (*Person, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+personColumns+` FROM people
		 WHERE lower(name) = lower($1) AND deleted_at IS NULL`,
		name)
	p, err := scanPerson(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying person by name: %w", err)
	}
	return p, nil
}

// TouchPerson bumps last-seen and the interaction counter.
func (s *Store) TouchPerson(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE people
		 SET last_seen_at = now(), interaction_count = interaction_count + 1
		 WHERE id = $1 AND deleted_at IS NULL`,
		id)
	if err != nil {
		return fmt.Errorf("touching person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPersonNotFound
	}
	return nil
}

// SetRole changes a person's role. A person has exactly one role at a time.
func (s *Store) SetRole(ctx context.Context, id uuid.UUID, role Role) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE people SET role = $2 WHERE id = $1 AND deleted_at IS NULL`,
		id, role)
	if err != nil {
		return fmt.Errorf("setting role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPersonNotFound
	}
	return nil
}

// DeregisterPerson soft-deletes a person. History rows keep their reference.
func (s *Store) DeregisterPerson(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE people SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`,
		id)
	if err != nil {
		return fmt.Errorf("deregistering person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPersonNotFound
	}
	return nil
}

// ListPeople returns all enrolled people, most recently seen first.
func (s *Store) ListPeople(ctx context.Context) ([]Person, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+personColumns+` FROM people
		 WHERE deleted_at IS NULL
		 ORDER BY last_seen_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing people: %w", err)
	}
	defer rows.Close()

	var people []Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning person: %w", err)
		}
		people = append(people, *p)
	}
	return people, rows.Err()
}
