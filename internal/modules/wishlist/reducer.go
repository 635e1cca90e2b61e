package wishlist

// Action is a tagged wishlist transition.
type Action interface{ wishlistAction() }

// Add inserts the item unless its id is already present (duplicate adds are
// idempotent).
type Add struct{ Item Item }

// Remove drops the item if present.
type Remove struct{ ProductID string }

// Toggle flips membership: present removes, absent inserts.
type Toggle struct{ Item Item }

// Clear empties the wishlist.
type Clear struct{}

// Replace swaps in a loaded collection.
type Replace struct{ Items []Item }

func (Add) wishlistAction()     {}
func (Remove) wishlistAction()  {}
func (Toggle) wishlistAction()  {}
func (Clear) wishlistAction()   {}
func (Replace) wishlistAction() {}

// Reduce applies one action and returns the next state. Pure and total.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case Add:
		if contains(state.Items, a.Item.ID) {
			return state
		}
		items := make([]Item, len(state.Items), len(state.Items)+1)
		copy(items, state.Items)
		return State{Items: append(items, a.Item)}

	case Remove:
		items := make([]Item, 0, len(state.Items))
		for _, item := range state.Items {
			if item.ID != a.ProductID {
				items = append(items, item)
			}
		}
		return State{Items: items}

	case Toggle:
		if contains(state.Items, a.Item.ID) {
			return Reduce(state, Remove{ProductID: a.Item.ID})
		}
		return Reduce(state, Add{Item: a.Item})

	case Clear:
		return State{Items: []Item{}}

	case Replace:
		items := make([]Item, len(a.Items))
		copy(items, a.Items)
		return State{Items: items}

	default:
		return state
	}
}

func contains(items []Item, productID string) bool {
	for _, item := range items {
		if item.ID == productID {
			return true
		}
	}
	return false
}

func actionName(a Action) string {
	switch a.(type) {
	case Add:
		return "add"
	case Remove:
		return "remove"
	case Toggle:
		return "toggle"
	case Clear:
		return "clear"
	case Replace:
		return "replace"
	default:
		return "unknown"
	}
}
