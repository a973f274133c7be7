package service

import (
	"context"
	"testing"

	"auctionbase-web/internal/auctionerrors"
	"auctionbase-web/internal/model"
	"auctionbase-web/internal/repository"

	"github.com/stretchr/testify/require"
)

// bidFixture stands up item I1 (seller S1, buy price 100, running all
// of 2014) with users U2 and U3 and the clock at mid-year.
func bidFixture(t *testing.T) (*repository.SQLStore, *BidService) {
	t.Helper()

	store := newTestStore(t)
	seedUser(t, store, "S1")
	seedUser(t, store, "U2")
	seedUser(t, store, "U3")
	seedItem(t, store, model.Item{
		ItemID: "I1", Name: "Vintage radio", Currently: 5, BuyPrice: floatPtr(100), FirstBid: 5,
		Started: ts(t, "2014-01-01 00:00:00"), Ends: ts(t, "2014-12-31 00:00:00"),
		SellerUserID: "S1",
	})
	require.NoError(t, store.SetTime(context.Background(), ts(t, "2014-06-01 00:00:00")))

	return store, NewBidService(store, nil)
}

func TestPlaceBidRejections(t *testing.T) {
	tests := []struct {
		name    string
		itemID  string
		userID  string
		amount  float64
		prepare func(t *testing.T, store *repository.SQLStore)
		wantErr error
	}{
		{
			name:    "unknown_item",
			itemID:  "ghost",
			userID:  "U2",
			amount:  10,
			wantErr: auctionerrors.ErrItemNotFound,
		},
		{
			name:    "unknown_user",
			itemID:  "I1",
			userID:  "ghost",
			amount:  10,
			wantErr: auctionerrors.ErrUserNotFound,
		},
		{
			name:    "seller_bids_own_item",
			itemID:  "I1",
			userID:  "S1",
			amount:  10,
			wantErr: auctionerrors.ErrSellerBid,
		},
		{
			name:   "same_tick_duplicate",
			itemID: "I1",
			userID: "U3",
			amount: 60,
			prepare: func(t *testing.T, store *repository.SQLStore) {
				require.NoError(t, store.InsertBid(context.Background(), model.Bid{
					ItemID: "I1", UserID: "U2", Amount: 50, Time: ts(t, "2014-06-01 00:00:00"),
				}))
			},
			wantErr: auctionerrors.ErrSameTick,
		},
		{
			name:   "amount_not_above_latest",
			itemID: "I1",
			userID: "U3",
			amount: 50,
			prepare: func(t *testing.T, store *repository.SQLStore) {
				require.NoError(t, store.InsertBid(context.Background(), model.Bid{
					ItemID: "I1", UserID: "U2", Amount: 50, Time: ts(t, "2014-05-01 00:00:00"),
				}))
			},
			wantErr: auctionerrors.ErrBidTooLow,
		},
		{
			name:   "before_start",
			itemID: "I1",
			userID: "U2",
			amount: 10,
			prepare: func(t *testing.T, store *repository.SQLStore) {
				// Clock earlier than the item's start.
				_, err := store.DB().Exec(`UPDATE Items SET Started = ? WHERE ItemID = ?`,
					ts(t, "2014-07-01 00:00:00"), "I1")
				require.NoError(t, err)
			},
			wantErr: auctionerrors.ErrAuctionNotRunning,
		},
		{
			name:   "after_end",
			itemID: "I1",
			userID: "U2",
			amount: 10,
			prepare: func(t *testing.T, store *repository.SQLStore) {
				_, err := store.DB().Exec(`UPDATE Items SET Ends = ? WHERE ItemID = ?`,
					ts(t, "2014-05-01 00:00:00"), "I1")
				require.NoError(t, err)
			},
			wantErr: auctionerrors.ErrAuctionNotRunning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, svc := bidFixture(t)
			ctx := context.Background()

			bidsBefore, err := store.GetBidsByItem(ctx, "I1")
			require.NoError(t, err)
			if tt.prepare != nil {
				tt.prepare(t, store)
				bidsBefore, err = store.GetBidsByItem(ctx, "I1")
				require.NoError(t, err)
			}

			err = svc.PlaceBid(ctx, tt.itemID, tt.userID, tt.amount)
			require.ErrorIs(t, err, tt.wantErr)

			bidsAfter, err := store.GetBidsByItem(ctx, "I1")
			require.NoError(t, err)
			require.Len(t, bidsAfter, len(bidsBefore), "a rejected bid performs no insert")
		})
	}
}

func TestPlaceBidAcceptance(t *testing.T) {
	store, svc := bidFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.PlaceBid(ctx, "I1", "U2", 50))

	bids, err := store.GetBidsByItem(ctx, "I1")
	require.NoError(t, err)
	require.Len(t, bids, 1)
	require.Equal(t, "U2", bids[0].UserID)
	require.Equal(t, 50.0, bids[0].Amount)
	require.Equal(t, "2014-06-01 00:00:00", bids[0].Time.String(),
		"bid time is the simulated clock, not wall clock")
}

// Submitting at or above the buy price stores the clamped amount and
// closes the auction at the current time.
func TestPlaceBidBuyNowClamp(t *testing.T) {
	store, svc := bidFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.PlaceBid(ctx, "I1", "U2", 50))

	// Next tick, another bidder goes past the buy price.
	require.NoError(t, store.SetTime(ctx, ts(t, "2014-06-02 00:00:00")))
	require.NoError(t, svc.PlaceBid(ctx, "I1", "U3", 150))

	latest, err := store.GetLatestBid(ctx, "I1")
	require.NoError(t, err)
	require.NotNil(t, latest)
	require.Equal(t, 100.0, latest.Amount, "stored amount is clamped to the buy price")
	require.Equal(t, "U3", latest.UserID)

	item, err := store.GetItemByID(ctx, "I1")
	require.NoError(t, err)
	require.Equal(t, "2014-06-02 00:00:00", item.Ends.String(), "auction closes immediately")

	// The item no longer accepts bids.
	require.NoError(t, store.SetTime(ctx, ts(t, "2014-06-03 00:00:00")))
	err = svc.PlaceBid(ctx, "I1", "U2", 200)
	require.ErrorIs(t, err, auctionerrors.ErrAuctionNotRunning)
}

func TestPlaceBidAmountsNonDecreasing(t *testing.T) {
	store, svc := bidFixture(t)
	ctx := context.Background()

	amounts := []float64{10, 20, 15, 20, 30}
	times := []string{
		"2014-06-01 00:00:00",
		"2014-06-02 00:00:00",
		"2014-06-03 00:00:00",
		"2014-06-04 00:00:00",
		"2014-06-05 00:00:00",
	}

	for i, amount := range amounts {
		require.NoError(t, store.SetTime(ctx, ts(t, times[i])))
		_ = svc.PlaceBid(ctx, "I1", "U2", amount)
	}

	bids, err := store.GetBidsByItem(ctx, "I1")
	require.NoError(t, err)
	require.NotEmpty(t, bids)
	for i := 1; i < len(bids); i++ {
		require.GreaterOrEqual(t, bids[i].Amount, bids[i-1].Amount)
	}
}

func TestPlaceBidUnconfiguredClock(t *testing.T) {
	store := newTestStore(t)
	seedUser(t, store, "S1")
	seedUser(t, store, "U2")
	seedItem(t, store, model.Item{
		ItemID: "I1", Name: "x", Currently: 5, FirstBid: 5,
		Started: ts(t, "2014-01-01 00:00:00"), Ends: ts(t, "2014-12-31 00:00:00"),
		SellerUserID: "S1",
	})

	svc := NewBidService(store, nil)
	err := svc.PlaceBid(context.Background(), "I1", "U2", 10)
	require.ErrorIs(t, err, auctionerrors.ErrTimeNotConfigured)
}
