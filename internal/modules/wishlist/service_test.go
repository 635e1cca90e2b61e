package wishlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfarouk/souqly-backend/internal/storage"
)

var watch = Item{ID: "p1", Title: "Watch", Price: 120}

func newTestService(t *testing.T) (*Service, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	svc := NewService(store)
	require.NoError(t, svc.Init())
	return svc, store
}

func TestToggleParity(t *testing.T) {
	svc, _ := newTestService(t)

	// Even numbers of toggles return to absent, odd numbers to present.
	for i := 1; i <= 6; i++ {
		svc.ToggleWishlist(watch)
		assert.Equal(t, i%2 == 1, svc.IsInWishlist("p1"), "after %d toggles", i)
	}
	assert.Empty(t, svc.Items())
}

func TestDuplicateAddIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)

	svc.AddToWishlist(watch)
	svc.AddToWishlist(watch)
	svc.AddToWishlist(watch)

	assert.Len(t, svc.Items(), 1)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	svc, _ := newTestService(t)

	svc.RemoveFromWishlist("ghost")
	assert.Empty(t, svc.Items())
}

func TestClearWishlist(t *testing.T) {
	svc, store := newTestService(t)

	svc.AddToWishlist(watch)
	svc.AddToWishlist(Item{ID: "p2", Title: "Belt", Price: 30})
	svc.ClearWishlist()

	assert.Empty(t, svc.Items())
	assert.Empty(t, storage.LoadJSON[Item](store, storage.KeyWishlist))
}

func TestWishlistPersistsAndReloads(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewService(store)
	require.NoError(t, svc.Init())
	svc.AddToWishlist(watch)

	reloaded := NewService(store)
	require.NoError(t, reloaded.Init())

	assert.True(t, reloaded.IsInWishlist("p1"))
	assert.Equal(t, []Item{watch}, reloaded.Items())
}

func TestWishlistCorruptSlot(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Save(storage.KeyWishlist, []byte("not json")))

	svc := NewService(store)
	require.NoError(t, svc.Init())
	assert.Empty(t, svc.Items())
}

func TestWishlistSubscribeNotify(t *testing.T) {
	svc, _ := newTestService(t)

	var count int
	unsubscribe := svc.Subscribe(func(State) { count++ })

	svc.ToggleWishlist(watch)
	svc.ToggleWishlist(watch)
	assert.Equal(t, 2, count)

	unsubscribe()
	svc.AddToWishlist(watch)
	assert.Equal(t, 2, count)
}
