// Package favorites keeps the set of favorited character identifiers in
// memory and mirrors it to a blob store slot on every mutation.
package favorites

import (
	"encoding/json"
	"errors"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/rm-browser/internal/model"
	"github.com/ytget/rm-browser/internal/storage"
)

// DefaultKey is the slot name favorites are stored under
const DefaultKey = "rm_favorites"

// Store owns the favorite set. The in-memory set is authoritative; write
// failures are logged and do not roll back a mutation.
type Store struct {
	log   *zap.Logger
	blobs storage.BlobStore
	key   string

	mu  sync.RWMutex
	ids map[model.CharacterID]struct{}
}

// NewStore creates an empty store over blobs. Call Load to read persisted ids.
func NewStore(log *zap.Logger, blobs storage.BlobStore, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{
		log:   log.Named("favorites"),
		blobs: blobs,
		key:   key,
		ids:   make(map[model.CharacterID]struct{}),
	}
}

// Load replaces the in-memory set with the persisted one. An absent, corrupt,
// or non-array slot yields an empty set.
func (s *Store) Load() []model.CharacterID {
	ids := s.read()

	s.mu.Lock()
	s.ids = make(map[model.CharacterID]struct{}, len(ids))
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	s.mu.Unlock()

	s.log.Debug("favorites loaded", zap.Int("count", len(ids)))
	return s.IDs()
}

// read decodes the slot, skipping elements that are not integer ids
func (s *Store) read() []model.CharacterID {
	data, err := s.blobs.Load(s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn("failed to read favorites", zap.String("key", s.key), zap.Error(err))
		}
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.log.Warn("ignoring corrupt favorites slot", zap.String("key", s.key), zap.Error(err))
		return nil
	}

	ids := make([]model.CharacterID, 0, len(raw))
	for _, elem := range raw {
		var id model.CharacterID
		if err := json.Unmarshal(elem, &id); err != nil {
			s.log.Debug("skipping invalid favorite entry", zap.ByteString("entry", elem))
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// IsFavorite reports whether id is in the set
func (s *Store) IsFavorite(id model.CharacterID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[id]
	return ok
}

// Add inserts id and persists the set. No write happens if id is present.
func (s *Store) Add(id model.CharacterID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[id]; ok {
		return
	}
	s.ids[id] = struct{}{}
	s.persistLocked()
}

// Remove deletes id and persists the set. No write happens if id is absent.
func (s *Store) Remove(id model.CharacterID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[id]; !ok {
		return
	}
	delete(s.ids, id)
	s.persistLocked()
}

// Toggle flips membership of id and returns the new membership
func (s *Store) Toggle(id model.CharacterID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.ids[id]
	if ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
	s.persistLocked()
	return !ok
}

// IDs returns the favorite ids in ascending order
func (s *Store) IDs() []model.CharacterID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked()
}

// Len returns the number of favorites
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

func (s *Store) sortedLocked() []model.CharacterID {
	ids := make([]model.CharacterID, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// persistLocked writes the full set; callers hold s.mu
func (s *Store) persistLocked() {
	data, err := json.Marshal(s.sortedLocked())
	if err != nil {
		s.log.Error("failed to encode favorites", zap.Error(err))
		return
	}
	if err := s.blobs.Save(s.key, data); err != nil {
		s.log.Warn("failed to persist favorites", zap.String("key", s.key), zap.Error(err))
	}
}
