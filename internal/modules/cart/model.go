package cart

// ProductRef is the read-only product shape handed in by the catalog layer.
// Once captured into a line item it is a snapshot: later catalog changes do
// not propagate into carts or orders.
type ProductRef struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discountedPrice,omitempty"`
	ImageURL        string  `json:"imageUrl,omitempty"`
}

// UnitPrice is the price locked in when the product first enters a cart:
// the discounted price when one is set, the list price otherwise.
func (p ProductRef) UnitPrice() float64 {
	if p.DiscountedPrice > 0 {
		return p.DiscountedPrice
	}
	return p.Price
}

// LineItem is one row in the cart. At most one line item exists per product
// id; repeated adds increment Quantity instead of appending.
type LineItem struct {
	ProductID string     `json:"productId"`
	Product   ProductRef `json:"product"`
	Quantity  int        `json:"quantity"`
	UnitPrice float64    `json:"unitPrice"`
}

// State is the full cart. TotalPrice is derived and recomputed on every
// transition, never read back from storage.
type State struct {
	Items      []LineItem `json:"items"`
	TotalPrice float64    `json:"totalPrice"`
}
