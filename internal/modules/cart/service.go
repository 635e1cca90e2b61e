package cart

import (
	"log"
	"sync"

	"github.com/mfarouk/souqly-backend/internal/storage"
	"github.com/mfarouk/souqly-backend/pkg/metrics"
)

// Service owns the in-memory cart state and its persistence slot. All
// mutators are synchronous and total: they dispatch an action through the
// reducer, persist the item collection, and notify subscribers.
type Service struct {
	mu     sync.Mutex
	store  storage.Store
	state  State
	subs   map[int]func(State)
	nextID int
}

// NewService creates a cart backed by the given persistence store. Call
// Init before use to load previously persisted items.
func NewService(store storage.Store) *Service {
	return &Service{
		store: store,
		state: State{Items: []LineItem{}},
		subs:  make(map[int]func(State)),
	}
}

// Init loads the persisted item collection and replays it through the
// reducer, so the total is always recomputed rather than trusted from
// storage. Missing or corrupt data yields an empty cart.
func (s *Service) Init() error {
	items := storage.LoadJSON[LineItem](s.store, storage.KeyCart)
	s.mu.Lock()
	s.state = Reduce(s.state, Replace{Items: items})
	s.mu.Unlock()
	return nil
}

// Subscribe registers a state-change callback and returns its unsubscribe
// function. Callbacks run after the mutation is applied and persisted, and
// outside the store's lock.
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

// AddToCart merges the product into an existing line item or appends a new
// one with quantity 1 and the unit price locked in at this moment.
func (s *Service) AddToCart(product ProductRef) {
	s.dispatch(AddItem{Product: product})
}

// UpdateQuantity sets the line item's quantity; zero or less removes the
// line. Unknown product ids are a no-op.
func (s *Service) UpdateQuantity(productID string, quantity int) {
	s.dispatch(SetQuantity{ProductID: productID, Quantity: quantity})
}

// RemoveFromCart drops the matching line item if present.
func (s *Service) RemoveFromCart(productID string) {
	s.dispatch(RemoveItem{ProductID: productID})
}

// ClearCart empties the cart.
func (s *Service) ClearCart() {
	s.dispatch(Clear{})
}

// Items returns a copy of the current line items.
func (s *Service) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]LineItem, len(s.state.Items))
	copy(items, s.state.Items)
	return items
}

// TotalPrice returns the current derived total.
func (s *Service) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.TotalPrice
}

// Snapshot returns a copy of the full cart state.
func (s *Service) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]LineItem, len(s.state.Items))
	copy(items, s.state.Items)
	return State{Items: items, TotalPrice: s.state.TotalPrice}
}

func (s *Service) dispatch(action Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	if err := storage.SaveJSON(s.store, storage.KeyCart, s.state.Items); err != nil {
		log.Printf("cart: persist failed: %v", err)
	}
	next := s.state
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	metrics.StoreMutationsTotal.WithLabelValues("cart", actionName(action)).Inc()
	for _, fn := range subs {
		fn(next)
	}
}
