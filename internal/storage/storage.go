package storage

import "encoding/json"

// Storage slot keys. Each store owns exactly one slot and nothing else
// reads or writes it.
const (
	KeyCart      = "cart"
	KeyWishlist  = "wishlist"
	KeyOrders    = "orders"
	KeyAddresses = "addresses"
)

// Store is a whole-value key-value persistence adapter. Save overwrites the
// previous value; Load returns (nil, nil) when the key has never been written.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// LoadJSON reads a slot and decodes it as a JSON array of T. Missing slots,
// read failures, and corrupt payloads all yield an empty slice: persisted
// state is best-effort and is never allowed to fail a store's Init.
func LoadJSON[T any](s Store, key string) []T {
	raw, err := s.Load(key)
	if err != nil || len(raw) == 0 {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// SaveJSON serializes the full collection and writes it under key.
func SaveJSON[T any](s Store, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.Save(key, data)
}
