package wishlist

// Item is a product snapshot saved to the wishlist, keyed by id. Membership
// is a set: at most one entry per product id.
type Item struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discountedPrice,omitempty"`
	ImageURL        string  `json:"imageUrl,omitempty"`
}

// State is the full wishlist.
type State struct {
	Items []Item `json:"items"`
}
