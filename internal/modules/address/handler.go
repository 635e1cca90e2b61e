package address

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes saved-address HTTP endpoints.
type Handler struct{ service *Service }

func NewHandler(service *Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/addresses", func(r chi.Router) {
		r.Get("/", h.listAddresses)      // GET    /api/v1/addresses
		r.Post("/", h.addAddress)        // POST   /api/v1/addresses
		r.Delete("/{id}", h.removeAddress) // DELETE /api/v1/addresses/{id}
	})
}

func (h *Handler) listAddresses(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.Addresses())
}

func (h *Handler) addAddress(w http.ResponseWriter, r *http.Request) {
	var req AddAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	addr, err := h.service.AddAddress(req)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, addr)
}

func (h *Handler) removeAddress(w http.ResponseWriter, r *http.Request) {
	h.service.RemoveAddress(chi.URLParam(r, "id"))
	respond(w, http.StatusOK, h.service.Addresses())
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
