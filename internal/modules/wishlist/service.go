package wishlist

import (
	"log"
	"sync"

	"github.com/mfarouk/souqly-backend/internal/storage"
	"github.com/mfarouk/souqly-backend/pkg/metrics"
)

// Service owns the in-memory wishlist and its persistence slot. Same
// contract as the cart store: synchronous total mutators, persist on every
// mutation, notify subscribers outside the lock.
type Service struct {
	mu     sync.Mutex
	store  storage.Store
	state  State
	subs   map[int]func(State)
	nextID int
}

func NewService(store storage.Store) *Service {
	return &Service{
		store: store,
		state: State{Items: []Item{}},
		subs:  make(map[int]func(State)),
	}
}

// Init loads the persisted collection; missing or corrupt data yields an
// empty wishlist.
func (s *Service) Init() error {
	items := storage.LoadJSON[Item](s.store, storage.KeyWishlist)
	s.mu.Lock()
	s.state = Reduce(s.state, Replace{Items: items})
	s.mu.Unlock()
	return nil
}

// Subscribe registers a state-change callback and returns its unsubscribe
// function.
func (s *Service) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// AddToWishlist inserts the item; duplicate adds are idempotent.
func (s *Service) AddToWishlist(item Item) {
	s.dispatch(Add{Item: item})
}

// RemoveFromWishlist drops the item if present.
func (s *Service) RemoveFromWishlist(productID string) {
	s.dispatch(Remove{ProductID: productID})
}

// ToggleWishlist flips membership for the item's id.
func (s *Service) ToggleWishlist(item Item) {
	s.dispatch(Toggle{Item: item})
}

// ClearWishlist empties the wishlist.
func (s *Service) ClearWishlist() {
	s.dispatch(Clear{})
}

// IsInWishlist reports whether the product id is currently saved.
func (s *Service) IsInWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return contains(s.state.Items, productID)
}

// Get returns the saved item for a product id, if present.
func (s *Service) Get(productID string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.state.Items {
		if item.ID == productID {
			return item, true
		}
	}
	return Item{}, false
}

// Items returns a copy of the current entries.
func (s *Service) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]Item, len(s.state.Items))
	copy(items, s.state.Items)
	return items
}

func (s *Service) dispatch(action Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	if err := storage.SaveJSON(s.store, storage.KeyWishlist, s.state.Items); err != nil {
		log.Printf("wishlist: persist failed: %v", err)
	}
	next := s.state
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	metrics.StoreMutationsTotal.WithLabelValues("wishlist", actionName(action)).Inc()
	for _, fn := range subs {
		fn(next)
	}
}
