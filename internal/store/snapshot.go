package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fieldhq/brevet/ent"
	"github.com/fieldhq/brevet/ent/careersnapshot"
)

// careerRepo implements CareerRepo using the ent client.
type careerRepo struct {
	client *ent.Client
}

func (r *careerRepo) Save(ctx context.Context, snap *CareerSnapshot) error {
	dataMap, err := careerDataToMap(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal career data: %w", err)
	}

	_, err = r.client.CareerSnapshot.Create().
		SetCommanderID(snap.CommanderID).
		SetTimestamp(snap.Timestamp).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save career snapshot: %w", err)
	}
	return nil
}

func (r *careerRepo) Latest(ctx context.Context, commanderID string) (*CareerSnapshot, error) {
	s, err := r.client.CareerSnapshot.Query().
		Where(careersnapshot.CommanderID(commanderID)).
		Order(ent.Desc(careersnapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest career snapshot: %w", err)
	}
	return entToCareerSnapshot(s)
}

func (r *careerRepo) Prune(ctx context.Context, commanderID string, keep int) error {
	// Find the timestamp threshold: the Nth most recent snapshot.
	snapshots, err := r.client.CareerSnapshot.Query().
		Where(careersnapshot.CommanderID(commanderID)).
		Order(ent.Desc(careersnapshot.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snapshots[0].Timestamp
	_, err = r.client.CareerSnapshot.Delete().
		Where(
			careersnapshot.CommanderID(commanderID),
			careersnapshot.TimestampLTE(threshold),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// careerDataToMap converts CareerData to map[string]any for ent JSON storage.
func careerDataToMap(data CareerData) (map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entToCareerSnapshot converts an ent CareerSnapshot to a store CareerSnapshot.
func entToCareerSnapshot(s *ent.CareerSnapshot) (*CareerSnapshot, error) {
	b, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal ent data: %w", err)
	}
	var data CareerData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("unmarshal career data: %w", err)
	}
	return &CareerSnapshot{
		ID:          s.ID,
		CommanderID: s.CommanderID,
		Timestamp:   s.Timestamp,
		Data:        data,
	}, nil
}
