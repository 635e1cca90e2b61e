package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mfarouk/souqly-backend/internal/modules/cart"
)

// Cart is the slice of the cart store the checkout composition needs: a
// snapshot to place the order from, and a clear afterwards.
type Cart interface {
	Snapshot() cart.State
	ClearCart()
}

// Handler exposes order HTTP endpoints, including the checkout composition.
type Handler struct {
	service *Service
	cart    Cart
}

func NewHandler(service *Service, cart Cart) *Handler {
	return &Handler{service: service, cart: cart}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/orders", func(r chi.Router) {
		r.Post("/", h.placeOrder)               // POST  /api/v1/orders
		r.Get("/", h.listOrders)                // GET   /api/v1/orders
		r.Get("/{id}", h.getOrder)              // GET   /api/v1/orders/{id}
		r.Patch("/{id}/status", h.updateStatus) // PATCH /api/v1/orders/{id}/status
	})
}

// PlaceOrderRequest is the checkout payload. Items come from the live cart,
// not the request.
type PlaceOrderRequest struct {
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
}

// placeOrder snapshots the live cart into a new order and then clears the
// cart. The order store itself never clears the cart; the composition lives
// here, mirroring the checkout flow.
func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	addr := req.ShippingAddress
	if addr.Name == "" || addr.Phone == "" || addr.City == "" || addr.Details == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "shipping address requires name, phone, city and details"})
		return
	}
	method, ok := ParsePaymentMethod(req.PaymentMethod)
	if !ok {
		respond(w, http.StatusBadRequest, map[string]string{"error": "payment method must be cash or card"})
		return
	}

	snapshot := h.cart.Snapshot()
	if len(snapshot.Items) == 0 {
		respond(w, http.StatusUnprocessableEntity, map[string]string{"error": "cart is empty"})
		return
	}

	o := h.service.AddOrder(CreateOrderRequest{
		Items:           snapshot.Items,
		TotalPrice:      snapshot.TotalPrice,
		ShippingAddress: addr,
		PaymentMethod:   method,
	})
	h.cart.ClearCart()

	respond(w, http.StatusCreated, o)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.Orders())
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.GetOrder(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	status, ok := ParseStatus(req.Status)
	if !ok {
		respond(w, http.StatusBadRequest, map[string]string{"error": "unknown status"})
		return
	}
	h.service.UpdateOrderStatus(id, status)

	o, err := h.service.GetOrder(id)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, o)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
