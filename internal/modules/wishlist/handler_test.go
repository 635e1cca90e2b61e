package wishlist

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfarouk/souqly-backend/internal/modules/cart"
	"github.com/mfarouk/souqly-backend/internal/storage"
)

func newWishlistRouter(t *testing.T) (*chi.Mux, *Service, *cart.Service) {
	t.Helper()
	store := storage.NewMemoryStore()

	cartService := cart.NewService(store)
	require.NoError(t, cartService.Init())
	svc := NewService(store)
	require.NoError(t, svc.Init())

	router := chi.NewRouter()
	NewHandler(svc, cartService).RegisterRoutes(router)
	return router, svc, cartService
}

func TestMoveToCartComposition(t *testing.T) {
	router, svc, cartService := newWishlistRouter(t)
	svc.AddToWishlist(Item{ID: "p1", Title: "Watch", Price: 80, DiscountedPrice: 60})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/wishlist/p1/move-to-cart", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, svc.IsInWishlist("p1"))

	items := cartService.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, 60.0, items[0].UnitPrice)
}

func TestMoveToCartAbsentItem(t *testing.T) {
	router, _, cartService := newWishlistRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/wishlist/ghost/move-to-cart", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, cartService.Items())
}

func TestToggleEndpoint(t *testing.T) {
	router, svc, _ := newWishlistRouter(t)
	body := `{"id":"p1","title":"Watch","price":80}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/wishlist/toggle", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Saved bool `json:"saved"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.True(t, res.Saved)
	assert.True(t, svc.IsInWishlist("p1"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/wishlist/toggle", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.False(t, res.Saved)
	assert.False(t, svc.IsInWishlist("p1"))
}

func TestMembershipEndpoint(t *testing.T) {
	router, svc, _ := newWishlistRouter(t)
	svc.AddToWishlist(Item{ID: "p1", Title: "Watch", Price: 80})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/wishlist/p1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var res map[string]bool
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.True(t, res["saved"])
}
