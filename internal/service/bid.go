package service

import (
	"context"
	"fmt"

	"auctionbase-web/internal/auctionerrors"
	"auctionbase-web/internal/cache"
	"auctionbase-web/internal/model"
	"auctionbase-web/internal/repository"

	log "github.com/sirupsen/logrus"
)

// BidService validates and records bids.
type BidService struct {
	repo  repository.AuctionRepository
	cache cache.Cache
}

// NewBidService creates a new bid service. cache may be nil.
func NewBidService(repo repository.AuctionRepository, c cache.Cache) *BidService {
	return &BidService{repo: repo, cache: c}
}

// PlaceBid validates a bid against the item's state at the current
// simulated time and records it. Rejections return a typed error from
// auctionerrors and perform no mutation.
//
// Two concurrent submissions on the same item can both read the same
// latest bid and both pass validation; the sqlite engine serializes
// the writes through its single-writer pool, other engines keep their
// default isolation.
func (s *BidService) PlaceBid(ctx context.Context, itemID, userID string, amount float64) error {
	item, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return err
	}
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if item.SellerUserID == user.UserID {
		return auctionerrors.ErrSellerBid
	}

	now, err := s.repo.GetTime(ctx)
	if err != nil {
		return fmt.Errorf("reading current time: %w", err)
	}

	latest, err := s.repo.GetLatestBid(ctx, itemID)
	if err != nil {
		return err
	}
	if latest != nil {
		// Only one bid may land per clock tick, even from distinct
		// bidders.
		if latest.Time.Equal(now.Time) {
			return auctionerrors.ErrSameTick
		}
		if amount <= latest.Amount {
			return auctionerrors.ErrBidTooLow
		}
	}

	if now.Before(item.Started.Time) || now.After(item.Ends.Time) {
		return auctionerrors.ErrAuctionNotRunning
	}

	bid := model.Bid{
		ItemID: itemID,
		UserID: userID,
		Amount: amount,
		Time:   now,
	}

	if item.BuyPrice != nil && amount >= *item.BuyPrice {
		// Buy-now: store the clamped amount and close the auction at
		// the current time.
		bid.Amount = *item.BuyPrice
		if err := s.repo.InsertBuyNowBid(ctx, bid, now); err != nil {
			return err
		}
	} else {
		if err := s.repo.InsertBid(ctx, bid); err != nil {
			return err
		}
	}

	s.flushCache(ctx)
	log.WithFields(log.Fields{
		"item_id": itemID,
		"user_id": userID,
		"amount":  bid.Amount,
		"time":    now.String(),
	}).Info("bid placed")
	return nil
}

func (s *BidService) flushCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Clear(ctx); err != nil {
		log.WithError(err).Warn("failed to flush search cache")
	}
}
