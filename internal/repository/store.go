package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"auctionbase-web/internal/auctionerrors"
	"auctionbase-web/internal/model"

	"github.com/jmoiron/sqlx"
)

// SQLStore implements AuctionRepository over sqlx. One query text
// serves every engine: statements are written ?-style and rebound to
// the driver's placeholder form.
type SQLStore struct {
	db *sqlx.DB
}

// NewSQLStore returns a store over an open connection.
func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

// DB exposes the underlying connection for schema bootstrap in tests.
func (s *SQLStore) DB() *sqlx.DB {
	return s.db
}

// GetTime returns the single CurrentTime row.
func (s *SQLStore) GetTime(ctx context.Context) (model.Timestamp, error) {
	var t model.Timestamp
	err := s.db.GetContext(ctx, &t, `SELECT Time FROM CurrentTime`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Timestamp{}, auctionerrors.ErrTimeNotConfigured
		}
		return model.Timestamp{}, fmt.Errorf("getting current time: %w", err)
	}
	return t, nil
}

// SetTime replaces the CurrentTime row inside one transaction.
func (s *SQLStore) SetTime(ctx context.Context, t model.Timestamp) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning time update: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM CurrentTime`); err != nil {
		return fmt.Errorf("clearing current time: %w", err)
	}
	if _, err := tx.ExecContext(ctx, s.db.Rebind(`INSERT INTO CurrentTime (Time) VALUES (?)`), t); err != nil {
		return fmt.Errorf("inserting current time: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing time update: %w", err)
	}
	return nil
}

// GetItemByID fetches an item by its ID.
func (s *SQLStore) GetItemByID(ctx context.Context, itemID string) (*model.Item, error) {
	var item model.Item
	err := s.db.GetContext(ctx, &item, s.db.Rebind(`SELECT * FROM Items WHERE ItemID = ?`), itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("item %s: %w", itemID, auctionerrors.ErrItemNotFound)
		}
		return nil, fmt.Errorf("getting item %s: %w", itemID, err)
	}
	return &item, nil
}

// GetUserByID fetches a user by their ID.
func (s *SQLStore) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := s.db.GetContext(ctx, &user, s.db.Rebind(`SELECT * FROM Users WHERE UserID = ?`), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", userID, auctionerrors.ErrUserNotFound)
		}
		return nil, fmt.Errorf("getting user %s: %w", userID, err)
	}
	return &user, nil
}

// GetLatestBid returns the most recent bid on an item, nil when none.
func (s *SQLStore) GetLatestBid(ctx context.Context, itemID string) (*model.Bid, error) {
	var bid model.Bid
	query := s.db.Rebind(`SELECT * FROM Bids WHERE ItemID = ? ORDER BY Time DESC LIMIT 1`)
	err := s.db.GetContext(ctx, &bid, query, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting latest bid for item %s: %w", itemID, err)
	}
	return &bid, nil
}

// GetBidsByItem returns the full bid history ordered by time ascending.
func (s *SQLStore) GetBidsByItem(ctx context.Context, itemID string) ([]model.Bid, error) {
	var bids []model.Bid
	query := s.db.Rebind(`SELECT * FROM Bids WHERE ItemID = ? ORDER BY Time ASC`)
	if err := s.db.SelectContext(ctx, &bids, query, itemID); err != nil {
		return nil, fmt.Errorf("getting bids for item %s: %w", itemID, err)
	}
	return bids, nil
}

// GetCategoriesByItem returns the distinct categories of an item.
func (s *SQLStore) GetCategoriesByItem(ctx context.Context, itemID string) ([]string, error) {
	var categories []string
	query := s.db.Rebind(`SELECT DISTINCT Category FROM Categories WHERE ItemID = ? ORDER BY Category`)
	if err := s.db.SelectContext(ctx, &categories, query, itemID); err != nil {
		return nil, fmt.Errorf("getting categories for item %s: %w", itemID, err)
	}
	return categories, nil
}

// InsertBid appends one bid inside its own transaction.
func (s *SQLStore) InsertBid(ctx context.Context, bid model.Bid) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning bid insert: %w", err)
	}
	defer tx.Rollback()

	if err := insertBid(ctx, tx, bid); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing bid insert: %w", err)
	}
	return nil
}

// InsertBuyNowBid appends the clamped bid and closes the auction by
// moving Ends to endsAt. Both writes share one transaction.
func (s *SQLStore) InsertBuyNowBid(ctx context.Context, bid model.Bid, endsAt model.Timestamp) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning buy-now insert: %w", err)
	}
	defer tx.Rollback()

	if err := insertBid(ctx, tx, bid); err != nil {
		return err
	}

	query := s.db.Rebind(`UPDATE Items SET Ends = ? WHERE ItemID = ?`)
	if _, err := tx.ExecContext(ctx, query, endsAt, bid.ItemID); err != nil {
		return fmt.Errorf("closing item %s: %w", bid.ItemID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing buy-now insert: %w", err)
	}
	return nil
}

func insertBid(ctx context.Context, tx *sqlx.Tx, bid model.Bid) error {
	query := tx.Rebind(`INSERT INTO Bids (ItemID, UserID, Amount, Time) VALUES (?, ?, ?, ?)`)
	if _, err := tx.ExecContext(ctx, query, bid.ItemID, bid.UserID, bid.Amount, bid.Time); err != nil {
		return fmt.Errorf("inserting bid on item %s: %w", bid.ItemID, err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Ensure SQLStore implements AuctionRepository
var _ AuctionRepository = (*SQLStore)(nil)
