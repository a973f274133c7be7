package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"auctionbase-web/internal/cache"
	"auctionbase-web/internal/model"
	"auctionbase-web/internal/repository"

	log "github.com/sirupsen/logrus"
)

// SearchService runs ad-hoc item searches with optional result
// caching. Cached entries are flushed whenever auction state mutates,
// so a hit is always consistent with the database.
type SearchService struct {
	repo  repository.AuctionRepository
	cache cache.Cache
	ttl   time.Duration
}

// NewSearchService creates a new search service. cache may be nil to
// disable caching.
func NewSearchService(repo repository.AuctionRepository, c cache.Cache, ttl time.Duration) *SearchService {
	return &SearchService{repo: repo, cache: c, ttl: ttl}
}

// Search returns the items matching the conjunction of the supplied
// filters. Absent filters impose no constraint; no matches is a nil
// slice, not an error.
func (s *SearchService) Search(ctx context.Context, f model.SearchFilter) ([]model.Item, error) {
	var now model.Timestamp
	if f.NeedsClock() {
		var err error
		now, err = s.repo.GetTime(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading current time: %w", err)
		}
	}

	key, ok := s.cacheKey(f)
	if ok {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			var items []model.Item
			if err := json.Unmarshal(cached, &items); err == nil {
				return items, nil
			}
			// Undecodable entry; fall through to the database.
		}
	}

	items, err := s.repo.SearchItems(ctx, f, now)
	if err != nil {
		return nil, err
	}

	if ok {
		if encoded, err := json.Marshal(items); err == nil {
			if err := s.cache.Set(ctx, key, encoded, s.ttl); err != nil {
				log.WithError(err).Warn("failed to cache search result")
			}
		}
	}

	return items, nil
}

// cacheKey derives a stable key from the filter. Returns ok=false
// when caching is disabled.
func (s *SearchService) cacheKey(f model.SearchFilter) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	encoded, err := json.Marshal(f)
	if err != nil {
		return "", false
	}
	return "search:" + string(encoded), true
}
