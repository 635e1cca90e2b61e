package wishlist

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mfarouk/souqly-backend/internal/modules/cart"
)

// CartAdder is the slice of the cart store the move-to-cart composition
// needs.
type CartAdder interface {
	AddToCart(product cart.ProductRef)
}

// Handler exposes wishlist HTTP endpoints.
type Handler struct {
	service *Service
	cart    CartAdder
}

func NewHandler(service *Service, cart CartAdder) *Handler {
	return &Handler{service: service, cart: cart}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/wishlist", func(r chi.Router) {
		r.Get("/", h.getWishlist)                              // GET    /api/v1/wishlist
		r.Post("/", h.addToWishlist)                           // POST   /api/v1/wishlist
		r.Post("/toggle", h.toggleWishlist)                    // POST   /api/v1/wishlist/toggle
		r.Delete("/", h.clearWishlist)                         // DELETE /api/v1/wishlist
		r.Get("/{product_id}", h.membership)                   // GET    /api/v1/wishlist/{product_id}
		r.Delete("/{product_id}", h.removeFromWishlist)        // DELETE /api/v1/wishlist/{product_id}
		r.Post("/{product_id}/move-to-cart", h.moveToCart)     // POST   /api/v1/wishlist/{product_id}/move-to-cart
	})
}

func (h *Handler) getWishlist(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, State{Items: h.service.Items()})
}

func (h *Handler) addToWishlist(w http.ResponseWriter, r *http.Request) {
	item, ok := decodeItem(w, r)
	if !ok {
		return
	}
	h.service.AddToWishlist(item)
	respond(w, http.StatusOK, State{Items: h.service.Items()})
}

func (h *Handler) toggleWishlist(w http.ResponseWriter, r *http.Request) {
	item, ok := decodeItem(w, r)
	if !ok {
		return
	}
	h.service.ToggleWishlist(item)
	respond(w, http.StatusOK, map[string]interface{}{
		"items": h.service.Items(),
		"saved": h.service.IsInWishlist(item.ID),
	})
}

func (h *Handler) membership(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	respond(w, http.StatusOK, map[string]bool{"saved": h.service.IsInWishlist(productID)})
}

func (h *Handler) removeFromWishlist(w http.ResponseWriter, r *http.Request) {
	h.service.RemoveFromWishlist(chi.URLParam(r, "product_id"))
	respond(w, http.StatusOK, State{Items: h.service.Items()})
}

func (h *Handler) clearWishlist(w http.ResponseWriter, r *http.Request) {
	h.service.ClearWishlist()
	respond(w, http.StatusOK, State{Items: h.service.Items()})
}

// moveToCart is a caller-side composition of two independent stores: add to
// cart, then remove from the wishlist. The two steps are not atomic; both
// are total, so the only exposure is process death between them.
func (h *Handler) moveToCart(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	item, ok := h.service.Get(productID)
	if !ok {
		respond(w, http.StatusNotFound, map[string]string{"error": "product not in wishlist"})
		return
	}
	h.cart.AddToCart(cart.ProductRef{
		ID:              item.ID,
		Title:           item.Title,
		Price:           item.Price,
		DiscountedPrice: item.DiscountedPrice,
		ImageURL:        item.ImageURL,
	})
	h.service.RemoveFromWishlist(productID)
	respond(w, http.StatusOK, State{Items: h.service.Items()})
}

func decodeItem(w http.ResponseWriter, r *http.Request) (Item, bool) {
	var item Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return Item{}, false
	}
	if item.ID == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "product id is required"})
		return Item{}, false
	}
	return item, true
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
