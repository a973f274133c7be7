package service

import (
	"context"
	"fmt"

	"auctionbase-web/internal/model"
	"auctionbase-web/internal/repository"
)

// ItemService assembles the item detail view.
type ItemService struct {
	repo repository.AuctionRepository
}

// NewItemService creates a new item service.
func NewItemService(repo repository.AuctionRepository) *ItemService {
	return &ItemService{repo: repo}
}

// ItemDetail fetches an item with its derived auction state, full bid
// history (time ascending) and distinct categories. An item with no
// Buy_Price only closes by its end time passing.
func (s *ItemService) ItemDetail(ctx context.Context, itemID string) (*model.ItemDetail, error) {
	item, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	now, err := s.repo.GetTime(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading current time: %w", err)
	}

	detail := &model.ItemDetail{Item: *item}

	detail.IsAuctionClosed = now.After(item.Ends.Time) ||
		(item.BuyPrice != nil && item.Currently >= *item.BuyPrice)

	if detail.IsAuctionClosed {
		latest, err := s.repo.GetLatestBid(ctx, itemID)
		if err != nil {
			return nil, err
		}
		detail.LatestBid = latest
	}

	detail.Bids, err = s.repo.GetBidsByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	detail.Categories, err = s.repo.GetCategoriesByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	return detail, nil
}
