package order

// Action is a tagged orders transition. Orders are append-only: besides
// loading, the only mutations are prepending a new order and overwriting a
// status.
type Action interface{ orderAction() }

// Append prepends a finalized order, keeping most-recent-first ordering.
type Append struct{ Order Order }

// SetStatus overwrites the status of the matching order; unknown ids are a
// no-op. No transition legality is enforced.
type SetStatus struct {
	OrderID string
	Status  OrderStatus
}

// Replace swaps in a loaded collection.
type Replace struct{ Orders []Order }

func (Append) orderAction()    {}
func (SetStatus) orderAction() {}
func (Replace) orderAction()   {}

// Reduce applies one action and returns the next state. Pure and total.
func Reduce(orders []Order, action Action) []Order {
	switch a := action.(type) {
	case Append:
		next := make([]Order, 0, len(orders)+1)
		next = append(next, a.Order)
		return append(next, orders...)

	case SetStatus:
		next := make([]Order, 0, len(orders))
		for _, o := range orders {
			if o.ID == a.OrderID {
				o.Status = a.Status
			}
			next = append(next, o)
		}
		return next

	case Replace:
		next := make([]Order, len(a.Orders))
		copy(next, a.Orders)
		return next

	default:
		return orders
	}
}

func actionName(a Action) string {
	switch a.(type) {
	case Append:
		return "append"
	case SetStatus:
		return "set_status"
	case Replace:
		return "replace"
	default:
		return "unknown"
	}
}
