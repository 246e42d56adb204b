package favorites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ytget/rm-browser/internal/model"
	"github.com/ytget/rm-browser/internal/storage"
)

func newTestStore(blobs storage.BlobStore) *Store {
	s := NewStore(zap.NewNop(), blobs, "")
	s.Load()
	return s
}

func TestLoad_AbsentOrCorrupt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []model.CharacterID
	}{
		{"object", `{"a":1}`, []model.CharacterID{}},
		{"garbage", `not json`, []model.CharacterID{}},
		{"number", `42`, []model.CharacterID{}},
		{"null", `null`, []model.CharacterID{}},
		{"mixed elements", `[3,"x",1,{"id":2}]`, []model.CharacterID{1, 3}},
		{"valid", `[5,2]`, []model.CharacterID{2, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blobs := storage.NewMemoryStore()
			require.NoError(t, blobs.Save(DefaultKey, []byte(tt.value)))

			s := NewStore(zap.NewNop(), blobs, DefaultKey)
			assert.Equal(t, tt.want, s.Load())
		})
	}

	t.Run("absent", func(t *testing.T) {
		s := NewStore(zap.NewNop(), storage.NewMemoryStore(), DefaultKey)
		assert.Empty(t, s.Load())
	})

	t.Run("unavailable", func(t *testing.T) {
		s := NewStore(zap.NewNop(), storage.NewPreferencesStore(nil), DefaultKey)
		assert.Empty(t, s.Load())
	})
}

func TestAddRemoveRoundTrip(t *testing.T) {
	s := newTestStore(storage.NewMemoryStore())

	for _, id := range []model.CharacterID{1, 42, 826} {
		s.Add(id)
		assert.True(t, s.IsFavorite(id), "after Add(%d)", id)
		s.Remove(id)
		assert.False(t, s.IsFavorite(id), "after Remove(%d)", id)
	}
}

func TestAdd_NoWriteWhenPresent(t *testing.T) {
	blobs := storage.NewMemoryStore()
	s := newTestStore(blobs)

	s.Add(7)
	assert.Equal(t, 1, blobs.Saves())
	s.Add(7)
	assert.Equal(t, 1, blobs.Saves())

	s.Remove(8)
	assert.Equal(t, 1, blobs.Saves())
	s.Remove(7)
	assert.Equal(t, 2, blobs.Saves())
}

func TestReloadReturnsFinalSet(t *testing.T) {
	blobs := storage.NewMemoryStore()
	s := newTestStore(blobs)

	s.Add(3)
	s.Add(1)
	s.Add(2)
	s.Remove(3)
	s.Add(9)
	s.Toggle(1)
	s.Toggle(4)

	reloaded := newTestStore(blobs)
	assert.ElementsMatch(t, []model.CharacterID{2, 4, 9}, reloaded.IDs())
	assert.Equal(t, 3, reloaded.Len())

	raw, err := blobs.Load(DefaultKey)
	require.NoError(t, err)
	assert.JSONEq(t, `[2,4,9]`, string(raw))
}

func TestWriteFailureKeepsMemorySet(t *testing.T) {
	blobs := storage.NewMemoryStore()
	s := newTestStore(blobs)
	blobs.FailWrites = true

	s.Add(11)
	assert.True(t, s.IsFavorite(11))
	assert.True(t, s.Toggle(12))
	assert.True(t, s.IsFavorite(12))

	s.Remove(11)
	assert.False(t, s.IsFavorite(11))
}

func TestToggle(t *testing.T) {
	s := newTestStore(storage.NewMemoryStore())

	assert.True(t, s.Toggle(5))
	assert.True(t, s.IsFavorite(5))
	assert.False(t, s.Toggle(5))
	assert.False(t, s.IsFavorite(5))
}
