package address

import (
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/mfarouk/souqly-backend/internal/storage"
)

// Service owns the saved-addresses collection. Addresses are plain records
// with validated creation and deletion; unlike the cart and wishlist there
// is no derived state, so no reducer is involved.
type Service struct {
	mu        sync.Mutex
	store     storage.Store
	addresses []SavedAddress
}

func NewService(store storage.Store) *Service {
	return &Service{store: store, addresses: []SavedAddress{}}
}

// Init loads previously persisted addresses; missing or corrupt data yields
// an empty collection.
func (s *Service) Init() error {
	s.mu.Lock()
	s.addresses = storage.LoadJSON[SavedAddress](s.store, storage.KeyAddresses)
	s.mu.Unlock()
	return nil
}

// AddAddress validates and saves a new address, returning it with a fresh id.
func (s *Service) AddAddress(req AddAddressRequest) (SavedAddress, error) {
	if req.Name == "" {
		return SavedAddress{}, fmt.Errorf("name is required")
	}
	if req.Phone == "" {
		return SavedAddress{}, fmt.Errorf("phone is required")
	}
	if req.City == "" {
		return SavedAddress{}, fmt.Errorf("city is required")
	}
	if req.Details == "" {
		return SavedAddress{}, fmt.Errorf("address details are required")
	}

	addr := SavedAddress{
		ID:      uuid.New().String(),
		Name:    req.Name,
		Phone:   req.Phone,
		City:    req.City,
		Details: req.Details,
	}

	s.mu.Lock()
	s.addresses = append(s.addresses, addr)
	s.persist()
	s.mu.Unlock()
	return addr, nil
}

// RemoveAddress deletes the matching address; unknown ids are a no-op.
func (s *Service) RemoveAddress(id string) {
	s.mu.Lock()
	next := make([]SavedAddress, 0, len(s.addresses))
	for _, a := range s.addresses {
		if a.ID != id {
			next = append(next, a)
		}
	}
	s.addresses = next
	s.persist()
	s.mu.Unlock()
}

// Addresses returns a copy of the saved addresses.
func (s *Service) Addresses() []SavedAddress {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SavedAddress, len(s.addresses))
	copy(out, s.addresses)
	return out
}

func (s *Service) persist() {
	if err := storage.SaveJSON(s.store, storage.KeyAddresses, s.addresses); err != nil {
		log.Printf("addresses: persist failed: %v", err)
	}
}
