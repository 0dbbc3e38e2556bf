package session

import (
	"context"
	"sort"
)

// Snapshot is the persisted form of an in-progress session: the queue's entry
// ids in order, the cursor, the unlock bookkeeping, and the completion
// counter. It must round-trip losslessly through the persistence
// collaborator; the encoding is the collaborator's concern.
type Snapshot struct {
	EntryIDs          []string `json:"entry_ids"`
	CurrentIndex      int      `json:"current_index"`
	ItemsCompleted    int      `json:"items_completed"`
	ReadInfoCards     []string `json:"read_info_cards,omitempty"`
	UnlockedQuestions []string `json:"unlocked_questions,omitempty"`
}

// SnapshotFromQueue captures the queue's resumable state. Set contents are
// sorted so snapshots of equal state compare equal.
func SnapshotFromQueue(q *Queue) *Snapshot {
	ids := make([]string, len(q.Entries))
	for i := range q.Entries {
		ids[i] = q.Entries[i].ID()
	}
	return &Snapshot{
		EntryIDs:          ids,
		CurrentIndex:      q.CurrentIndex,
		ItemsCompleted:    q.ItemsCompleted,
		ReadInfoCards:     sortedKeys(q.ReadInfoCards),
		UnlockedQuestions: sortedKeys(q.UnlockedQuestions),
	}
}

// SnapshotStore is the persistence capability the engine is handed. One
// snapshot exists per key; Save overwrites. Load returns (nil, nil) when no
// snapshot exists for the key.
type SnapshotStore interface {
	Save(ctx context.Context, key Key, snap *Snapshot) error
	Load(ctx context.Context, key Key) (*Snapshot, error)
	Delete(ctx context.Context, key Key) error
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
