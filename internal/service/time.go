package service

import (
	"context"
	"errors"
	"fmt"

	"auctionbase-web/internal/auctionerrors"
	"auctionbase-web/internal/cache"
	"auctionbase-web/internal/model"
	"auctionbase-web/internal/repository"

	log "github.com/sirupsen/logrus"
)

// TimeService owns the single-row simulated clock. The stored time
// only ever moves forward; setting the current value again is allowed.
type TimeService struct {
	repo  repository.AuctionRepository
	cache cache.Cache
}

// NewTimeService creates a new time service. cache may be nil.
func NewTimeService(repo repository.AuctionRepository, c cache.Cache) *TimeService {
	return &TimeService{repo: repo, cache: c}
}

// GetTime returns the current simulated time. An absent CurrentTime
// row surfaces as auctionerrors.ErrTimeNotConfigured.
func (s *TimeService) GetTime(ctx context.Context) (model.Timestamp, error) {
	return s.repo.GetTime(ctx)
}

// SetTime advances the simulated clock to t. A value earlier than the
// stored time is rejected with ErrTimeRegression; an equal value is
// accepted. When no row exists yet, any value configures the clock.
func (s *TimeService) SetTime(ctx context.Context, t model.Timestamp) error {
	current, err := s.repo.GetTime(ctx)
	switch {
	case errors.Is(err, auctionerrors.ErrTimeNotConfigured):
		// First configuration; nothing to compare against.
	case err != nil:
		return fmt.Errorf("reading current time: %w", err)
	case t.Before(current.Time):
		return auctionerrors.ErrTimeRegression
	}

	if err := s.repo.SetTime(ctx, t); err != nil {
		return err
	}

	s.flushCache(ctx)
	log.WithFields(log.Fields{"time": t.String()}).Info("current time updated")
	return nil
}

func (s *TimeService) flushCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Clear(ctx); err != nil {
		log.WithError(err).Warn("failed to flush search cache")
	}
}
