package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfarouk/souqly-backend/internal/storage"
)

func TestServicePersistsOnEveryMutation(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewService(store)
	require.NoError(t, svc.Init())

	svc.AddToCart(shirt)
	svc.AddToCart(shoes)
	svc.UpdateQuantity("p1", 3)

	persisted := storage.LoadJSON[LineItem](store, storage.KeyCart)
	require.Len(t, persisted, 2)
	assert.Equal(t, 3, persisted[0].Quantity)
}

func TestServiceInitRecomputesTotal(t *testing.T) {
	store := storage.NewMemoryStore()
	seed := []LineItem{
		{ProductID: "p1", Product: shirt, Quantity: 2, UnitPrice: 100},
		{ProductID: "p2", Product: shoes, Quantity: 1, UnitPrice: 50},
	}
	require.NoError(t, storage.SaveJSON(store, storage.KeyCart, seed))

	svc := NewService(store)
	require.NoError(t, svc.Init())

	assert.Equal(t, 250.0, svc.TotalPrice())
	assert.Len(t, svc.Items(), 2)
}

func TestServiceInitCorruptSlot(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Save(storage.KeyCart, []byte("][")))

	svc := NewService(store)
	require.NoError(t, svc.Init())

	assert.Empty(t, svc.Items())
	assert.Zero(t, svc.TotalPrice())
}

func TestServiceSubscribeNotify(t *testing.T) {
	svc := NewService(storage.NewMemoryStore())
	require.NoError(t, svc.Init())

	var seen []State
	unsubscribe := svc.Subscribe(func(s State) { seen = append(seen, s) })

	svc.AddToCart(shirt)
	svc.AddToCart(shirt)
	require.Len(t, seen, 2)
	assert.Equal(t, 200.0, seen[1].TotalPrice)

	unsubscribe()
	svc.ClearCart()
	assert.Len(t, seen, 2)
}

func TestServiceSnapshotIsACopy(t *testing.T) {
	svc := NewService(storage.NewMemoryStore())
	require.NoError(t, svc.Init())
	svc.AddToCart(shirt)

	snap := svc.Snapshot()
	snap.Items[0].Quantity = 99

	assert.Equal(t, 1, svc.Items()[0].Quantity)
}
