// Package roster ties the catalog, per-commander trees and the store
// together: it loads careers from snapshots, persists them after every
// mutation, and appends progression events for the audit trail.
package roster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fieldhq/brevet/internal/career"
	"github.com/fieldhq/brevet/internal/catalog"
	"github.com/fieldhq/brevet/internal/store"
)

// ErrNotFound reports a commander with no stored career.
var ErrNotFound = errors.New("commander not found")

// keepSnapshots bounds per-commander snapshot history.
const keepSnapshots = 10

// Career pairs a tree with its owning commander for persistence.
type Career struct {
	CommanderID string
	Tree        *career.Tree
}

// Service is the persistence-aware surface over commander careers.
type Service struct {
	cat      *catalog.Catalog
	families *catalog.Classifier
	careers  store.CareerRepo
	events   store.EventRepo
	log      *slog.Logger
}

// NewService creates a roster service. A nil logger falls back to
// slog.Default().
func NewService(cat *catalog.Catalog, families *catalog.Classifier, careers store.CareerRepo, events store.EventRepo, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{cat: cat, families: families, careers: careers, events: events, log: log}
}

// Create registers a new commander with a starting reputation balance
// and persists the initial snapshot.
func (s *Service) Create(ctx context.Context, reputation int) (*Career, error) {
	c := &Career{
		CommanderID: uuid.NewString(),
		Tree:        career.New(s.cat, s.families, reputation),
	}
	if err := s.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Load restores a commander's career from the latest snapshot. Snapshot
// entries that no longer resolve are logged and skipped, never fatal.
func (s *Service) Load(ctx context.Context, commanderID string) (*Career, error) {
	snap, err := s.careers.Latest(ctx, commanderID)
	if err != nil {
		return nil, fmt.Errorf("load career: %w", err)
	}
	if snap == nil {
		return nil, fmt.Errorf("commander %s: %w", commanderID, ErrNotFound)
	}

	tree, warnings := career.Restore(s.cat, s.families, snap.Data)
	for _, w := range warnings {
		s.log.Warn("snapshot entry skipped",
			"commander", commanderID,
			"field", w.Field,
			"value", w.Value,
			"reason", w.Reason)
	}
	return &Career{CommanderID: commanderID, Tree: tree}, nil
}

// Save persists a snapshot of the career and prunes old history.
func (s *Service) Save(ctx context.Context, c *Career) error {
	err := s.careers.Save(ctx, &store.CareerSnapshot{
		CommanderID: c.CommanderID,
		Timestamp:   time.Now().UTC(),
		Data:        c.Tree.Snapshot(),
	})
	if err != nil {
		return fmt.Errorf("save career: %w", err)
	}
	if err := s.careers.Prune(ctx, c.CommanderID, keepSnapshots); err != nil {
		// History is a convenience; the snapshot itself is saved.
		s.log.Warn("prune snapshots failed", "commander", c.CommanderID, "error", err)
	}
	return nil
}

// Unlock applies one unlock to the career and persists the result. A
// rejected unlock reports ok=false with no error and no state change.
func (s *Service) Unlock(ctx context.Context, c *Career, tag catalog.SkillTag) (*career.Change, bool, error) {
	ch, ok := c.Tree.Unlock(tag)
	if !ok {
		return nil, false, nil
	}
	if err := s.Save(ctx, c); err != nil {
		return ch, true, err
	}

	kind := "unlock"
	if ch.Promoted {
		kind = "promotion"
	}
	s.appendEvent(ctx, store.ProgressEventData{
		CommanderID: c.CommanderID,
		Kind:        kind,
		Skill:       ch.Tag.String(),
		Branch:      ch.Branch.String(),
		Delta:       ch.ReputationDelta,
		Reputation:  ch.Reputation,
		Grade:       ch.Grade.String(),
	})
	return ch, true, nil
}

// ResetAll respecs every non-promotion skill and persists the result.
func (s *Service) ResetAll(ctx context.Context, c *Career) (career.ResetResult, error) {
	return s.applyReset(ctx, c, catalog.BranchNone, c.Tree.ResetAll)
}

// ResetBranch respecs one branch and persists the result.
func (s *Service) ResetBranch(ctx context.Context, c *Career, b catalog.BranchTag) (career.ResetResult, error) {
	return s.applyReset(ctx, c, b, func() career.ResetResult { return c.Tree.ResetBranch(b) })
}

// ResetAllExceptFoundation respecs doctrine and specialization progress
// and persists the result.
func (s *Service) ResetAllExceptFoundation(ctx context.Context, c *Career) (career.ResetResult, error) {
	return s.applyReset(ctx, c, catalog.BranchNone, c.Tree.ResetAllExceptFoundation)
}

func (s *Service) applyReset(ctx context.Context, c *Career, branch catalog.BranchTag, reset func() career.ResetResult) (career.ResetResult, error) {
	res := reset()
	if !res.Changed() {
		return res, nil
	}
	if err := s.Save(ctx, c); err != nil {
		return res, err
	}

	data := store.ProgressEventData{
		CommanderID: c.CommanderID,
		Kind:        "reset",
		Delta:       res.Refund,
		Reputation:  c.Tree.Reputation(),
		Grade:       c.Tree.Grade().String(),
	}
	if branch != catalog.BranchNone {
		data.Branch = branch.String()
	}
	s.appendEvent(ctx, data)
	return res, nil
}

// appendEvent records a progression event. The trail is advisory: a
// failed append is logged, never surfaced to the caller.
func (s *Service) appendEvent(ctx context.Context, data store.ProgressEventData) {
	if s.events == nil {
		return
	}
	if err := s.events.AppendProgress(ctx, data); err != nil {
		s.log.Warn("append progress event failed",
			"commander", data.CommanderID,
			"kind", data.Kind,
			"error", err)
	}
}
