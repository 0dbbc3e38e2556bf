package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dkessler/mnemo/ent"
	"github.com/dkessler/mnemo/ent/sessionsnapshot"
	"github.com/dkessler/mnemo/internal/session"
)

// snapshotStore implements session.SnapshotStore on the ent client, one row
// per deck and mode.
type snapshotStore struct {
	client *ent.Client
}

func (s *snapshotStore) Save(ctx context.Context, key session.Key, snap *session.Snapshot) error {
	dataMap, err := snapshotDataToMap(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	n, err := s.client.SessionSnapshot.Update().
		Where(
			sessionsnapshot.DeckID(key.DeckID),
			sessionsnapshot.Mode(string(key.Mode)),
		).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update snapshot: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = s.client.SessionSnapshot.Create().
		SetDeckID(key.DeckID).
		SetMode(string(key.Mode)).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (s *snapshotStore) Load(ctx context.Context, key session.Key) (*session.Snapshot, error) {
	row, err := s.client.SessionSnapshot.Query().
		Where(
			sessionsnapshot.DeckID(key.DeckID),
			sessionsnapshot.Mode(string(key.Mode)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query snapshot: %w", err)
	}
	return snapshotFromMap(row.Data)
}

func (s *snapshotStore) Delete(ctx context.Context, key session.Key) error {
	_, err := s.client.SessionSnapshot.Delete().
		Where(
			sessionsnapshot.DeckID(key.DeckID),
			sessionsnapshot.Mode(string(key.Mode)),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}

// snapshotDataToMap converts a session snapshot to map[string]any for ent
// JSON storage.
func snapshotDataToMap(snap *session.Snapshot) (map[string]any, error) {
	b, err := json.Marshal(snap)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// snapshotFromMap converts the stored JSON back to a session snapshot.
func snapshotFromMap(m map[string]any) (*session.Snapshot, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal stored data: %w", err)
	}
	var snap session.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	return &snap, nil
}
