package router

import (
	"auctionbase-web/internal/handler"
	"auctionbase-web/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Config holds the configuration for creating a router.
type Config struct {
	TimeHandler   *handler.TimeHandler
	BidHandler    *handler.BidHandler
	SearchHandler *handler.SearchHandler
	ItemHandler   *handler.ItemHandler
	HealthHandler *handler.HealthHandler
}

// New creates and configures the HTTP router. Every (method, path)
// pair maps explicitly to one handler method.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes)
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/currtime", cfg.TimeHandler.CurrTime)
	r.Get("/selecttime", cfg.TimeHandler.SelectTimeForm)
	r.Post("/selecttime", cfg.TimeHandler.SelectTime)

	r.Get("/addbid", cfg.BidHandler.AddBidForm)
	r.Post("/addbid", cfg.BidHandler.AddBid)

	r.Get("/search", cfg.SearchHandler.SearchForm)
	r.Post("/search", cfg.SearchHandler.Search)

	r.Get("/itemdetail", cfg.ItemHandler.ItemDetail)

	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.Health)
	}

	return r
}
