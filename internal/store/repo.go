package store

import (
	"context"
	"time"
)

// CareerData is the flat, serializable form of a commander's skill tree.
// It deliberately stores external names alongside raw tag values so old
// saves survive catalog renumbering: restore resolves by name first and
// falls back to the integer value.
type CareerData struct {
	Version    int               `json:"version"`
	Reputation int               `json:"reputation"`
	Grade      string            `json:"grade"`
	Branches   []string          `json:"branches"`
	Skills     []SkillRecordData `json:"skills"`
}

// SkillRecordData identifies one unlocked skill in a snapshot.
type SkillRecordData struct {
	Branch   string `json:"branch"`
	Tag      string `json:"tag"`
	TagValue int    `json:"tag_value"`
}

// CareerSnapshot is a point-in-time capture of one commander's career.
type CareerSnapshot struct {
	ID          int
	CommanderID string
	Timestamp   time.Time
	Data        CareerData
}

// CareerRepo manages per-commander career snapshots.
type CareerRepo interface {
	// Save stores a new snapshot for a commander.
	Save(ctx context.Context, snap *CareerSnapshot) error

	// Latest returns the commander's most recent snapshot, or nil if
	// none exist.
	Latest(ctx context.Context, commanderID string) (*CareerSnapshot, error)

	// Prune deletes all but the commander's N most recent snapshots.
	Prune(ctx context.Context, commanderID string, keep int) error
}

// ProgressEventData captures one unlock, promotion or respec for the
// append-only audit trail.
type ProgressEventData struct {
	CommanderID string
	Kind        string // "unlock", "promotion", "reset"
	Skill       string
	Branch      string
	Delta       int // reputation delta: negative on unlock, positive on refund
	Reputation  int // balance after the change
	Grade       string
}

// EventRepo provides append access to progression events.
type EventRepo interface {
	// AppendProgress records a progression event.
	AppendProgress(ctx context.Context, data ProgressEventData) error
}
