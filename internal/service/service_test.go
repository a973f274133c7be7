package service

import (
	"testing"

	"auctionbase-web/internal/config"
	"auctionbase-web/internal/model"
	"auctionbase-web/internal/repository"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *repository.SQLStore {
	t.Helper()

	store, err := repository.Open(config.DatabaseConfig{Type: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func ts(t *testing.T, s string) model.Timestamp {
	t.Helper()
	parsed, err := model.ParseTimestamp(s)
	require.NoError(t, err)
	return parsed
}

func seedUser(t *testing.T, store *repository.SQLStore, userID string) {
	t.Helper()
	_, err := store.DB().Exec(`INSERT INTO Users (UserID, Rating) VALUES (?, ?)`, userID, 0)
	require.NoError(t, err)
}

func seedItem(t *testing.T, store *repository.SQLStore, item model.Item) {
	t.Helper()
	_, err := store.DB().Exec(
		`INSERT INTO Items (ItemID, Name, Currently, Buy_Price, First_Bid, Number_of_Bids, Started, Ends, Seller_UserID, Description)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ItemID, item.Name, item.Currently, item.BuyPrice, item.FirstBid,
		item.NumberOfBids, item.Started, item.Ends, item.SellerUserID, item.Description)
	require.NoError(t, err)
}

func seedCategory(t *testing.T, store *repository.SQLStore, itemID, category string) {
	t.Helper()
	_, err := store.DB().Exec(`INSERT INTO Categories (ItemID, Category) VALUES (?, ?)`, itemID, category)
	require.NoError(t, err)
}

func floatPtr(v float64) *float64 { return &v }
