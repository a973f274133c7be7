package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"auctionbase-web/internal/cache"
	"auctionbase-web/internal/config"
	"auctionbase-web/internal/handler"
	"auctionbase-web/internal/render"
	"auctionbase-web/internal/repository"
	"auctionbase-web/internal/router"
	"auctionbase-web/internal/service"

	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.MustLoad()
	setupLogger(cfg)
	log.WithFields(log.Fields{"env": cfg.App.Environment}).Info("starting auctionbase-web")

	// Auction database
	store, err := repository.Open(cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("failed to open auction database")
	}
	defer store.Close()

	// Search-result cache
	var searchCache cache.Cache
	switch cfg.Cache.Type {
	case "off", "none":
		log.Info("search cache disabled")
	case "redis":
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.Cache.RedisAddress(),
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		if err != nil {
			log.WithError(err).Warn("redis unavailable, falling back to memory cache")
			searchCache = cache.NewMemoryCache()
		} else {
			searchCache = redisCache
			log.Info("redis search cache initialized")
		}
	default: // memory
		searchCache = cache.NewMemoryCache()
		log.Info("memory search cache initialized")
	}
	if searchCache != nil {
		defer searchCache.Close()
	}

	// Services
	timeService := service.NewTimeService(store, searchCache)
	bidService := service.NewBidService(store, searchCache)
	searchService := service.NewSearchService(store, searchCache, cfg.Cache.TTL)
	itemService := service.NewItemService(store)

	// Page renderer
	renderer, err := render.New()
	if err != nil {
		log.WithError(err).Fatal("failed to parse templates")
	}

	// Router
	r := router.New(router.Config{
		TimeHandler:   handler.NewTimeHandler(timeService, renderer),
		BidHandler:    handler.NewBidHandler(bidService, renderer),
		SearchHandler: handler.NewSearchHandler(searchService, renderer),
		ItemHandler:   handler.NewItemHandler(itemService, renderer),
		HealthHandler: handler.NewHealthHandler(cfg.App.Version),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.WithFields(log.Fields{"addr": cfg.Server.Address()}).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server shutdown error")
	}

	log.Info("server stopped")
}

func setupLogger(cfg *config.Config) {
	log.SetFormatter(&log.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})
	log.SetOutput(os.Stdout)
	if cfg.App.Debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}
