package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/fieldhq/brevet/ent"
)

// sequenceCounter manages the monotonic sequence number shared by all
// event rows. Per-table auto-increment IDs can't order events across
// commanders or future event types, so a single counter assigns one
// increasing sequence to every event.
//
// Uses raw SQL outside ent because ent doesn't support database-level
// atomic counters. The mutex serializes within the process; the
// RETURNING clause makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client  *ent.Client
	counter *sequenceCounter
}

func (r *eventRepo) AppendProgress(ctx context.Context, data ProgressEventData) error {
	seq, err := r.counter.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.ProgressEvent.Create().
		SetSequence(seq).
		SetCommanderID(data.CommanderID).
		SetKind(data.Kind).
		SetSkill(data.Skill).
		SetBranch(data.Branch).
		SetDelta(data.Delta).
		SetReputation(data.Reputation).
		SetGrade(data.Grade).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append progress event: %w", err)
	}
	return nil
}
