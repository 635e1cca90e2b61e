package address

// SavedAddress is a reusable checkout address. It lives in its own
// persistence slot, independent of the addresses embedded in orders.
type SavedAddress struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
	Details string `json:"details"`
}

// AddAddressRequest is the payload for saving a new address. All fields are
// required.
type AddAddressRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
	Details string `json:"details"`
}
