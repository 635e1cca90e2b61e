package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	ID    string  `json:"id"`
	Price float64 `json:"price"`
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	items := []entry{{ID: "p1", Price: 100}, {ID: "p2", Price: 49.99}}
	require.NoError(t, SaveJSON(store, KeyCart, items))

	loaded := LoadJSON[entry](store, KeyCart)
	assert.Equal(t, items, loaded)
}

func TestFileStoreMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, LoadJSON[entry](store, KeyWishlist))
}

func TestFileStoreCorruptData(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	// Write an unparsable payload directly into the slot file.
	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyOrders+".json"), []byte("{not json"), 0o644))

	assert.Empty(t, LoadJSON[entry](store, KeyOrders))
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, SaveJSON(store, KeyCart, []entry{{ID: "p1"}}))
	require.NoError(t, SaveJSON(store, KeyCart, []entry{{ID: "p2"}, {ID: "p3"}}))

	loaded := LoadJSON[entry](store, KeyCart)
	require.Len(t, loaded, 2)
	assert.Equal(t, "p2", loaded[0].ID)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	items := []entry{{ID: "p1", Price: 10}}
	require.NoError(t, SaveJSON(store, KeyAddresses, items))
	assert.Equal(t, items, LoadJSON[entry](store, KeyAddresses))

	raw, err := store.Load("never-written")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestLoadJSONNullPayload(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(KeyCart, []byte("null")))

	loaded := LoadJSON[entry](store, KeyCart)
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}
