package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mfarouk/souqly-backend/internal/modules/address"
	"github.com/mfarouk/souqly-backend/internal/modules/cart"
	"github.com/mfarouk/souqly-backend/internal/modules/catalog"
	"github.com/mfarouk/souqly-backend/internal/modules/order"
	"github.com/mfarouk/souqly-backend/internal/modules/wishlist"
	"github.com/mfarouk/souqly-backend/internal/storage"
	"github.com/mfarouk/souqly-backend/pkg/metrics"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	store, err := openStorage()
	if err != nil {
		log.Fatal(err)
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(metrics.Middleware)
	router.Handle("/metrics", promhttp.Handler())

	// ── Local state stores ──────────────────────────────────
	cartService := cart.NewService(store)
	wishlistService := wishlist.NewService(store)
	orderService := order.NewService(store)
	addressService := address.NewService(store)

	for name, initStore := range map[string]func() error{
		"cart":      cartService.Init,
		"wishlist":  wishlistService.Init,
		"orders":    orderService.Init,
		"addresses": addressService.Init,
	} {
		if err := initStore(); err != nil {
			log.Fatalf("init %s store: %v", name, err)
		}
	}

	cart.NewHandler(cartService).RegisterRoutes(router)
	wishlist.NewHandler(wishlistService, cartService).RegisterRoutes(router)
	order.NewHandler(orderService, cartService).RegisterRoutes(router)
	address.NewHandler(addressService).RegisterRoutes(router)

	// ── Catalog proxy ───────────────────────────────────────
	catalogURL := os.Getenv("CATALOG_API_URL")
	if catalogURL == "" {
		catalogURL = "https://ecommerce.routemisr.com"
	}
	catalog.NewHandler(catalog.NewClient(catalogURL)).RegisterRoutes(router)

	// ── Start server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Souqly API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

// openStorage selects the persistence backend: a JSON-file directory by
// default, in-memory for ephemeral runs, or Postgres when a shared slot
// table is wanted.
func openStorage() (storage.Store, error) {
	switch driver := os.Getenv("STORAGE_DRIVER"); driver {
	case "", "file":
		dir := os.Getenv("DATA_DIR")
		if dir == "" {
			dir = "./data"
		}
		return storage.NewFileStore(dir)

	case "memory":
		return storage.NewMemoryStore(), nil

	case "postgres":
		db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
		if err != nil {
			return nil, err
		}
		if err := db.Ping(); err != nil {
			return nil, fmt.Errorf("ping database: %w", err)
		}
		return storage.NewPostgresStore(db)

	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}
}
