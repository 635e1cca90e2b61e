package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler proxies the external catalog API. Read-only: no catalog state is
// held or persisted locally.
type Handler struct{ client *Client }

func NewHandler(client *Client) *Handler { return &Handler{client: client} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/api/v1/products", h.listProducts)                         // GET /api/v1/products?limit=&page=&sort=&keyword=&price_gte=&price_lte=&brand=&category=
	r.Get("/api/v1/products/{id}", h.getProduct)                      // GET /api/v1/products/{id}
	r.Get("/api/v1/categories", h.listCategories)                     // GET /api/v1/categories
	r.Get("/api/v1/categories/{id}", h.getCategory)                   // GET /api/v1/categories/{id}
	r.Get("/api/v1/categories/{id}/subcategories", h.listSubcategories) // GET /api/v1/categories/{id}/subcategories
	r.Get("/api/v1/brands", h.listBrands)                             // GET /api/v1/brands
	r.Get("/api/v1/brands/{id}", h.getBrand)                          // GET /api/v1/brands/{id}
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := ProductQuery{
		Sort:     q.Get("sort"),
		Keyword:  q.Get("keyword"),
		Brand:    q.Get("brand"),
		Category: q.Get("category"),
	}
	query.Limit, _ = strconv.Atoi(q.Get("limit"))
	query.Page, _ = strconv.Atoi(q.Get("page"))
	query.PriceGTE, _ = strconv.ParseFloat(q.Get("price_gte"), 64)
	query.PriceLTE, _ = strconv.ParseFloat(q.Get("price_lte"), 64)

	res, err := h.client.GetProducts(r.Context(), query)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, res)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.client.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	res, err := h.client.GetCategories(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, res)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	c, err := h.client.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, c)
}

func (h *Handler) listSubcategories(w http.ResponseWriter, r *http.Request) {
	res, err := h.client.GetSubcategories(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, res)
}

func (h *Handler) listBrands(w http.ResponseWriter, r *http.Request) {
	res, err := h.client.GetBrands(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, res)
}

func (h *Handler) getBrand(w http.ResponseWriter, r *http.Request) {
	b, err := h.client.GetBrand(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, b)
}

func respondErr(w http.ResponseWriter, err error) {
	code := http.StatusBadGateway
	if errors.Is(err, ErrUpstreamNotFound) {
		code = http.StatusNotFound
	}
	respond(w, code, map[string]string{"error": err.Error()})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
