package service

import (
	"context"
	"testing"

	"auctionbase-web/internal/auctionerrors"
	"auctionbase-web/internal/model"

	"github.com/stretchr/testify/require"
)

func TestItemDetailNotFound(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SetTime(context.Background(), ts(t, "2014-06-01 00:00:00")))

	svc := NewItemService(store)
	_, err := svc.ItemDetail(context.Background(), "ghost")
	require.ErrorIs(t, err, auctionerrors.ErrItemNotFound)
}

func TestItemDetailOpenAuction(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seedUser(t, store, "seller")
	seedUser(t, store, "U2")
	seedItem(t, store, model.Item{
		ItemID: "I1", Name: "Vintage radio", Currently: 25, BuyPrice: floatPtr(100), FirstBid: 5,
		Started: ts(t, "2014-01-01 00:00:00"), Ends: ts(t, "2014-12-31 00:00:00"),
		SellerUserID: "seller",
	})
	seedCategory(t, store, "I1", "Collectibles")
	seedCategory(t, store, "I1", "Electronics")
	require.NoError(t, store.SetTime(ctx, ts(t, "2014-06-01 00:00:00")))
	require.NoError(t, store.InsertBid(ctx, model.Bid{
		ItemID: "I1", UserID: "U2", Amount: 25, Time: ts(t, "2014-05-01 00:00:00"),
	}))

	detail, err := NewItemService(store).ItemDetail(ctx, "I1")
	require.NoError(t, err)
	require.False(t, detail.IsAuctionClosed)
	require.Nil(t, detail.LatestBid, "winning bid only shown once closed")
	require.Len(t, detail.Bids, 1)
	require.Equal(t, []string{"Collectibles", "Electronics"}, detail.Categories)
}

func TestItemDetailClosedStates(t *testing.T) {
	tests := []struct {
		name      string
		currently float64
		buyPrice  *float64
		ends      string
		closed    bool
	}{
		{
			name:      "ended_by_time",
			currently: 25,
			buyPrice:  floatPtr(100),
			ends:      "2014-05-01 00:00:00",
			closed:    true,
		},
		{
			name:      "price_reached_buy_price",
			currently: 100,
			buyPrice:  floatPtr(100),
			ends:      "2014-12-31 00:00:00",
			closed:    true,
		},
		{
			name:      "running_below_buy_price",
			currently: 25,
			buyPrice:  floatPtr(100),
			ends:      "2014-12-31 00:00:00",
			closed:    false,
		},
		{
			name:      "running_no_buy_price",
			currently: 1000,
			buyPrice:  nil,
			ends:      "2014-12-31 00:00:00",
			closed:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			ctx := context.Background()

			seedUser(t, store, "seller")
			seedUser(t, store, "U2")
			seedItem(t, store, model.Item{
				ItemID: "I1", Name: "x", Currently: tt.currently, BuyPrice: tt.buyPrice, FirstBid: 1,
				Started: ts(t, "2014-01-01 00:00:00"), Ends: ts(t, tt.ends),
				SellerUserID: "seller",
			})
			require.NoError(t, store.SetTime(ctx, ts(t, "2014-06-01 00:00:00")))
			require.NoError(t, store.InsertBid(ctx, model.Bid{
				ItemID: "I1", UserID: "U2", Amount: tt.currently, Time: ts(t, "2014-04-01 00:00:00"),
			}))

			detail, err := NewItemService(store).ItemDetail(ctx, "I1")
			require.NoError(t, err)
			require.Equal(t, tt.closed, detail.IsAuctionClosed)

			if tt.closed {
				require.NotNil(t, detail.LatestBid)
				require.Equal(t, tt.currently, detail.LatestBid.Amount)
			} else {
				require.Nil(t, detail.LatestBid)
			}
		})
	}
}
