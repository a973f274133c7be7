package repository

import (
	"context"

	"auctionbase-web/internal/model"
)

// AuctionRepository defines auction data access methods. All SQL
// construction lives behind this interface; filter values are always
// passed as bound parameters, never interpolated into query text.
type AuctionRepository interface {
	// GetTime returns the single CurrentTime row. Returns
	// auctionerrors.ErrTimeNotConfigured when the row is absent.
	GetTime(ctx context.Context) (model.Timestamp, error)

	// SetTime replaces the CurrentTime row (DELETE + INSERT) inside
	// one transaction. Monotonicity is the caller's concern.
	SetTime(ctx context.Context, t model.Timestamp) error

	// GetItemByID fetches an item. Returns
	// auctionerrors.ErrItemNotFound when absent.
	GetItemByID(ctx context.Context, itemID string) (*model.Item, error)

	// GetUserByID fetches a user. Returns
	// auctionerrors.ErrUserNotFound when absent.
	GetUserByID(ctx context.Context, userID string) (*model.User, error)

	// GetLatestBid returns the most recent bid on an item, or
	// (nil, nil) when the item has no bids.
	GetLatestBid(ctx context.Context, itemID string) (*model.Bid, error)

	// GetBidsByItem returns the full bid history ordered by time
	// ascending. Empty history is a nil slice, not an error.
	GetBidsByItem(ctx context.Context, itemID string) ([]model.Bid, error)

	// GetCategoriesByItem returns the distinct categories of an item.
	GetCategoriesByItem(ctx context.Context, itemID string) ([]string, error)

	// InsertBid appends one bid inside its own transaction.
	InsertBid(ctx context.Context, bid model.Bid) error

	// InsertBuyNowBid appends the clamped bid and moves the item's
	// Ends to endsAt inside one transaction.
	InsertBuyNowBid(ctx context.Context, bid model.Bid, endsAt model.Timestamp) error

	// SearchItems runs an ad-hoc conjunctive filter query. now is
	// consulted only when the filter carries a status constraint.
	// No matches is a nil slice, not an error.
	SearchItems(ctx context.Context, f model.SearchFilter, now model.Timestamp) ([]model.Item, error)

	// Close closes the underlying connection.
	Close() error
}
