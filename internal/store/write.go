package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/roach88/triad/internal/triple"
)

// newFactID generates a time-ordered unique row id.
// Uses github.com/google/uuid package for RFC 4122 compliant UUIDs.
func newFactID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Insert persists a single fully-concrete fact.
// Uses ON CONFLICT DO NOTHING for idempotency - inserting a fact that is
// already stored is silently ignored.
//
// Patterns cannot be stored: a triple containing a variable is rejected.
func (s *Store) Insert(ctx context.Context, fact triple.Triple) error {
	if fact.IsPattern() {
		return fmt.Errorf("insert %q: pattern triples cannot be stored", fact)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO facts (fact_id, id, predicate, object)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id, predicate, object) DO NOTHING
	`,
		newFactID(),
		fact.ID,
		fact.Predicate,
		fact.Object,
	)
	if err != nil {
		return fmt.Errorf("insert %q: %w", fact, err)
	}

	return nil
}

// Delete removes a single fully-concrete fact. Deleting a fact that is not
// stored is a no-op, not an error.
func (s *Store) Delete(ctx context.Context, fact triple.Triple) error {
	if fact.IsPattern() {
		return fmt.Errorf("delete %q: pattern triples cannot be deleted directly", fact)
	}

	_, err := s.db.ExecContext(ctx, `
		DELETE FROM facts
		WHERE id = ? AND predicate = ? AND object = ?
	`,
		fact.ID,
		fact.Predicate,
		fact.Object,
	)
	if err != nil {
		return fmt.Errorf("delete %q: %w", fact, err)
	}

	return nil
}

// Clear removes all facts.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM facts"); err != nil {
		return fmt.Errorf("clear facts: %w", err)
	}
	return nil
}
