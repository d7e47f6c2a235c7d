package store

import (
	"errors"
	"sort"
	"strings"

	"github.com/EstateFlowDigital/lumos-inspector-sub001/snapshot"
)

// snapshotPrefix namespaces persisted snapshots within the store.
const snapshotPrefix = "lumos:snapshot:"

// SnapshotStore persists serialized snapshots by id.
type SnapshotStore struct {
	kv KV
}

// NewSnapshotStore wraps a KV as a snapshot store.
func NewSnapshotStore(kv KV) *SnapshotStore {
	return &SnapshotStore{kv: kv}
}

// Save persists a snapshot under its id. A quota failure is returned for
// the caller to surface as a warning.
func (s *SnapshotStore) Save(snap *snapshot.Snapshot) error {
	data, err := snapshot.Serialize(snap)
	if err != nil {
		return err
	}
	if err := s.kv.Put(snapshotPrefix+snap.ID, data); err != nil {
		if errors.Is(err, ErrQuotaExceeded) {
			tracer().Errorf("snapshot %q not persisted: %v", snap.Name, err)
		}
		return err
	}
	return nil
}

// Load retrieves a snapshot by id. A missing id reports false; a corrupt
// blob fails closed to an empty snapshot, as snapshot.Deserialize does.
func (s *SnapshotStore) Load(id string) (*snapshot.Snapshot, bool, error) {
	data, ok, err := s.kv.Get(snapshotPrefix + id)
	if err != nil || !ok {
		return nil, false, err
	}
	return snapshot.Deserialize(data), true, nil
}

// Delete drops a persisted snapshot.
func (s *SnapshotStore) Delete(id string) error {
	return s.kv.Delete(snapshotPrefix + id)
}

// IDs lists the ids of all persisted snapshots, sorted. Only stores that
// support enumeration report ids; others report nil.
func (s *SnapshotStore) IDs() []string {
	lister, ok := s.kv.(interface{ Keys() []string })
	if !ok {
		return nil
	}
	var ids []string
	for _, key := range lister.Keys() {
		if strings.HasPrefix(key, snapshotPrefix) {
			ids = append(ids, strings.TrimPrefix(key, snapshotPrefix))
		}
	}
	sort.Strings(ids)
	return ids
}
