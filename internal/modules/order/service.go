package order

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mfarouk/souqly-backend/internal/modules/cart"
	"github.com/mfarouk/souqly-backend/internal/storage"
	"github.com/mfarouk/souqly-backend/pkg/metrics"
)

// ErrNotFound is returned by GetOrder for ids that were never created. The
// caller renders this as a not-found state rather than treating it as a
// failure.
var ErrNotFound = errors.New("order not found")

// Service owns the append-only order log and its persistence slot. It never
// touches the cart: callers that want checkout-clears-cart semantics compose
// the two stores themselves.
type Service struct {
	mu     sync.Mutex
	store  storage.Store
	orders []Order
	subs   map[int]func([]Order)
	nextID int
	now    func() time.Time
}

func NewService(store storage.Store) *Service {
	return &Service{
		store:  store,
		orders: []Order{},
		subs:   make(map[int]func([]Order)),
		now:    time.Now,
	}
}

// Init loads previously persisted orders; missing or corrupt data yields an
// empty log.
func (s *Service) Init() error {
	orders := storage.LoadJSON[Order](s.store, storage.KeyOrders)
	s.mu.Lock()
	s.orders = Reduce(s.orders, Replace{Orders: orders})
	s.mu.Unlock()
	return nil
}

// Subscribe registers a state-change callback and returns its unsubscribe
// function.
func (s *Service) Subscribe(fn func([]Order)) func() {
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

// AddOrder snapshots the request into a new immutable order: fresh id,
// PENDING status, creation timestamp, deep-copied items. The new order is
// prepended so the log stays most-recent-first, and returned to the caller.
func (s *Service) AddOrder(req CreateOrderRequest) Order {
	o := Order{
		ID:              uuid.New().String(),
		Items:           cloneItems(req.Items),
		TotalPrice:      req.TotalPrice,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Status:          StatusPending,
		CreatedAt:       s.now().UTC(),
	}
	s.dispatch(Append{Order: o})
	metrics.OrdersPlacedTotal.Inc()
	return o
}

// UpdateOrderStatus overwrites the status of the matching order. Unknown
// ids are a no-op and no transition legality is checked.
func (s *Service) UpdateOrderStatus(orderID string, status OrderStatus) {
	s.dispatch(SetStatus{OrderID: orderID, Status: status})
}

// GetOrder looks an order up by id.
func (s *Service) GetOrder(orderID string) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == orderID {
			o.Items = cloneItems(o.Items)
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}

// Orders returns a copy of the log, most recent first.
func (s *Service) Orders() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]Order, len(s.orders))
	copy(orders, s.orders)
	for i := range orders {
		orders[i].Items = cloneItems(orders[i].Items)
	}
	return orders
}

func (s *Service) dispatch(action Action) {
	s.mu.Lock()
	s.orders = Reduce(s.orders, action)
	if err := storage.SaveJSON(s.store, storage.KeyOrders, s.orders); err != nil {
		log.Printf("orders: persist failed: %v", err)
	}
	next := make([]Order, len(s.orders))
	copy(next, s.orders)
	subs := make([]func([]Order), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	metrics.StoreMutationsTotal.WithLabelValues("orders", actionName(action)).Inc()
	for _, fn := range subs {
		fn(next)
	}
}

func cloneItems(items []cart.LineItem) []cart.LineItem {
	cp := make([]cart.LineItem, len(items))
	copy(cp, items)
	return cp
}
