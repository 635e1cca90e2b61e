package cart

// Action is a tagged cart transition. Every mutation the store supports is
// one of the variants below, so each transition can be unit-tested without a
// service, storage, or HTTP layer.
type Action interface{ cartAction() }

// AddItem merges into an existing line item or appends a new one.
type AddItem struct{ Product ProductRef }

// SetQuantity replaces a line item's quantity; zero or less removes the line.
type SetQuantity struct {
	ProductID string
	Quantity  int
}

// RemoveItem drops a line item if present.
type RemoveItem struct{ ProductID string }

// Clear empties the cart.
type Clear struct{}

// Replace swaps in a loaded collection, recomputing the total from scratch.
type Replace struct{ Items []LineItem }

func (AddItem) cartAction()     {}
func (SetQuantity) cartAction() {}
func (RemoveItem) cartAction()  {}
func (Clear) cartAction()       {}
func (Replace) cartAction()     {}

// Reduce applies one action to a state and returns the next state. It is
// pure: the input state is never modified, every transition is total, and
// unknown product ids are no-ops.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case AddItem:
		items := make([]LineItem, 0, len(state.Items)+1)
		merged := false
		for _, item := range state.Items {
			if item.ProductID == a.Product.ID {
				item.Quantity++
				merged = true
			}
			items = append(items, item)
		}
		if !merged {
			items = append(items, LineItem{
				ProductID: a.Product.ID,
				Product:   a.Product,
				Quantity:  1,
				UnitPrice: a.Product.UnitPrice(),
			})
		}
		return State{Items: items, TotalPrice: computeTotal(items)}

	case SetQuantity:
		if a.Quantity <= 0 {
			return Reduce(state, RemoveItem{ProductID: a.ProductID})
		}
		items := make([]LineItem, 0, len(state.Items))
		for _, item := range state.Items {
			if item.ProductID == a.ProductID {
				item.Quantity = a.Quantity
			}
			items = append(items, item)
		}
		return State{Items: items, TotalPrice: computeTotal(items)}

	case RemoveItem:
		items := make([]LineItem, 0, len(state.Items))
		for _, item := range state.Items {
			if item.ProductID != a.ProductID {
				items = append(items, item)
			}
		}
		return State{Items: items, TotalPrice: computeTotal(items)}

	case Clear:
		return State{Items: []LineItem{}, TotalPrice: 0}

	case Replace:
		items := make([]LineItem, len(a.Items))
		copy(items, a.Items)
		return State{Items: items, TotalPrice: computeTotal(items)}

	default:
		return state
	}
}

func computeTotal(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

func actionName(a Action) string {
	switch a.(type) {
	case AddItem:
		return "add_item"
	case SetQuantity:
		return "set_quantity"
	case RemoveItem:
		return "remove_item"
	case Clear:
		return "clear"
	case Replace:
		return "replace"
	default:
		return "unknown"
	}
}
