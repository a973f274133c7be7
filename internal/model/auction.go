package model

// Item represents an auction listing.
type Item struct {
	ItemID       string    `db:"ItemID" json:"item_id"`
	Name         string    `db:"Name" json:"name"`
	Currently    float64   `db:"Currently" json:"currently"`
	BuyPrice     *float64  `db:"Buy_Price" json:"buy_price,omitempty"`
	FirstBid     float64   `db:"First_Bid" json:"first_bid"`
	NumberOfBids int       `db:"Number_of_Bids" json:"number_of_bids"`
	Started      Timestamp `db:"Started" json:"started"`
	Ends         Timestamp `db:"Ends" json:"ends"`
	SellerUserID string    `db:"Seller_UserID" json:"seller_user_id"`
	Description  string    `db:"Description" json:"description"`
}

// Bid represents one bid on an item. Bids are append-only; Time is the
// simulated clock value at insertion, never wall-clock time.
type Bid struct {
	ItemID string    `db:"ItemID" json:"item_id"`
	UserID string    `db:"UserID" json:"user_id"`
	Amount float64   `db:"Amount" json:"amount"`
	Time   Timestamp `db:"Time" json:"time"`
}

// User represents an auction participant. Read-only in this system.
type User struct {
	UserID   string  `db:"UserID" json:"user_id"`
	Rating   int     `db:"Rating" json:"rating"`
	Location *string `db:"Location" json:"location,omitempty"`
	Country  *string `db:"Country" json:"country,omitempty"`
}

// ItemDetail is the item page view: the item, its derived open/closed
// state, the winning bid when closed, and the full history.
type ItemDetail struct {
	Item            Item     `json:"item"`
	IsAuctionClosed bool     `json:"is_auction_closed"`
	LatestBid       *Bid     `json:"latest_bid,omitempty"`
	Bids            []Bid    `json:"bids"`
	Categories      []string `json:"categories"`
}
