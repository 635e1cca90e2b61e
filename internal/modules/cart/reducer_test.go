package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	shirt = ProductRef{ID: "p1", Title: "Shirt", Price: 100}
	shoes = ProductRef{ID: "p2", Title: "Shoes", Price: 80, DiscountedPrice: 50}
)

func TestReduceAddMergesDuplicates(t *testing.T) {
	state := State{Items: []LineItem{}}
	for i := 0; i < 5; i++ {
		state = Reduce(state, AddItem{Product: shirt})
	}

	require.Len(t, state.Items, 1)
	assert.Equal(t, "p1", state.Items[0].ProductID)
	assert.Equal(t, 5, state.Items[0].Quantity)
	assert.Equal(t, 500.0, state.TotalPrice)
}

func TestReduceAddLocksDiscountedPrice(t *testing.T) {
	state := Reduce(State{}, AddItem{Product: shoes})

	require.Len(t, state.Items, 1)
	assert.Equal(t, 50.0, state.Items[0].UnitPrice)
	assert.Equal(t, 50.0, state.TotalPrice)
}

func TestReduceTotalAcrossItems(t *testing.T) {
	state := Reduce(State{}, AddItem{Product: shirt})
	state = Reduce(state, AddItem{Product: shirt})
	state = Reduce(state, AddItem{Product: shoes})

	// [{100 × 2}, {50 × 1}]
	assert.Equal(t, 250.0, state.TotalPrice)
}

func TestReduceSetQuantity(t *testing.T) {
	state := Reduce(State{}, AddItem{Product: shirt})
	state = Reduce(state, SetQuantity{ProductID: "p1", Quantity: 4})

	require.Len(t, state.Items, 1)
	assert.Equal(t, 4, state.Items[0].Quantity)
	assert.Equal(t, 400.0, state.TotalPrice)
}

func TestReduceZeroQuantityRemoves(t *testing.T) {
	state := Reduce(State{}, AddItem{Product: shirt})
	state = Reduce(state, AddItem{Product: shoes})
	state = Reduce(state, SetQuantity{ProductID: "p1", Quantity: 0})

	require.Len(t, state.Items, 1)
	assert.Equal(t, "p2", state.Items[0].ProductID)
	assert.Equal(t, 50.0, state.TotalPrice)
}

func TestReduceSetQuantityUnknownIDIsNoop(t *testing.T) {
	state := Reduce(State{}, AddItem{Product: shirt})
	next := Reduce(state, SetQuantity{ProductID: "ghost", Quantity: 7})

	assert.Equal(t, state.Items, next.Items)
	assert.Equal(t, state.TotalPrice, next.TotalPrice)
}

func TestReduceRemoveItem(t *testing.T) {
	state := Reduce(State{}, AddItem{Product: shirt})
	state = Reduce(state, RemoveItem{ProductID: "p1"})

	assert.Empty(t, state.Items)
	assert.Zero(t, state.TotalPrice)

	// Removing an absent id is a no-op, not an error.
	state = Reduce(state, RemoveItem{ProductID: "p1"})
	assert.Empty(t, state.Items)
}

func TestReduceClear(t *testing.T) {
	state := Reduce(State{}, AddItem{Product: shirt})
	state = Reduce(state, AddItem{Product: shoes})
	state = Reduce(state, Clear{})

	assert.Empty(t, state.Items)
	assert.Zero(t, state.TotalPrice)
}

func TestReduceReplaceRecomputesTotal(t *testing.T) {
	// A stale or tampered stored total must never survive a load: Replace
	// recomputes from the items alone.
	items := []LineItem{
		{ProductID: "p1", Product: shirt, Quantity: 2, UnitPrice: 100},
		{ProductID: "p2", Product: shoes, Quantity: 1, UnitPrice: 50},
	}
	state := Reduce(State{TotalPrice: 9999}, Replace{Items: items})

	assert.Equal(t, 250.0, state.TotalPrice)
}

func TestReduceIsPure(t *testing.T) {
	orig := Reduce(State{}, AddItem{Product: shirt})
	before := orig.Items[0].Quantity

	_ = Reduce(orig, AddItem{Product: shirt})
	_ = Reduce(orig, SetQuantity{ProductID: "p1", Quantity: 9})

	assert.Equal(t, before, orig.Items[0].Quantity)
}
