package cart

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes cart HTTP endpoints.
type Handler struct{ service *Service }

func NewHandler(service *Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", h.getCart)                         // GET    /api/v1/cart
		r.Post("/", h.addToCart)                      // POST   /api/v1/cart
		r.Delete("/", h.clearCart)                    // DELETE /api/v1/cart
		r.Patch("/{product_id}", h.updateQuantity)    // PATCH  /api/v1/cart/{product_id}
		r.Delete("/{product_id}", h.removeFromCart)   // DELETE /api/v1/cart/{product_id}
	})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.Snapshot())
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var product ProductRef
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if product.ID == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "product id is required"})
		return
	}
	h.service.AddToCart(product)
	respond(w, http.StatusOK, h.service.Snapshot())
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	h.service.UpdateQuantity(productID, req.Quantity)
	respond(w, http.StatusOK, h.service.Snapshot())
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	h.service.RemoveFromCart(chi.URLParam(r, "product_id"))
	respond(w, http.StatusOK, h.service.Snapshot())
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.service.ClearCart()
	respond(w, http.StatusOK, h.service.Snapshot())
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
