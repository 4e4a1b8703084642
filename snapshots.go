package coinfolio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// SnapshotStore persists snapshots as a JSON array in their own file,
// following the same rules as the main store: no in-memory copy, every
// call is a whole-file read-modify-write.
type SnapshotStore struct {
	path string
}

// DefaultSnapshotPath returns the snapshot file next to the given document.
func DefaultSnapshotPath(documentPath string) string {
	return filepath.Join(filepath.Dir(documentPath), "snapshots.json")
}

// OpenSnapshotStore opens the snapshot file at path, creating parent
// directories as needed. A missing file means no snapshots yet.
func OpenSnapshotStore(path string) (*SnapshotStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating snapshot directory: %w", err)
	}
	return &SnapshotStore{path: path}, nil
}

func (ss *SnapshotStore) read() ([]Snapshot, error) {
	data, err := os.ReadFile(ss.path)
	if os.IsNotExist(err) {
		return []Snapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshots %q: %w", ss.path, err)
	}
	var snapshots []Snapshot
	if err := json.Unmarshal(data, &snapshots); err != nil {
		return nil, fmt.Errorf("parsing snapshots %q: %w", ss.path, err)
	}
	return snapshots, nil
}

func (ss *SnapshotStore) write(snapshots []Snapshot) error {
	data, err := json.MarshalIndent(snapshots, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshots: %w", err)
	}
	if err := os.WriteFile(ss.path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("writing snapshots %q: %w", ss.path, err)
	}
	return nil
}

// Add appends a snapshot.
func (ss *SnapshotStore) Add(snapshot Snapshot) error {
	snapshots, err := ss.read()
	if err != nil {
		return err
	}
	return ss.write(append(snapshots, snapshot))
}

// List returns all snapshots, newest first.
func (ss *SnapshotStore) List() ([]Snapshot, error) {
	snapshots, err := ss.read()
	if err != nil {
		return nil, err
	}
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Timestamp.After(snapshots[j].Timestamp)
	})
	return snapshots, nil
}

// Get returns the snapshot with the given id.
func (ss *SnapshotStore) Get(id string) (Snapshot, bool, error) {
	snapshots, err := ss.read()
	if err != nil {
		return Snapshot{}, false, err
	}
	for _, s := range snapshots {
		if s.ID == id {
			return s, true, nil
		}
	}
	return Snapshot{}, false, nil
}

// Remove deletes the snapshot with the given id, reporting whether it
// existed. An unknown id is not an error.
func (ss *SnapshotStore) Remove(id string) (bool, error) {
	snapshots, err := ss.read()
	if err != nil {
		return false, err
	}
	kept := make([]Snapshot, 0, len(snapshots))
	for _, s := range snapshots {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(snapshots) {
		return false, nil
	}
	return true, ss.write(kept)
}

// Count returns the number of stored snapshots.
func (ss *SnapshotStore) Count() (int, error) {
	snapshots, err := ss.read()
	if err != nil {
		return 0, err
	}
	return len(snapshots), nil
}
