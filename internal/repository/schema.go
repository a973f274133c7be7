package repository

import "github.com/jmoiron/sqlx"

// schema is the sqlite DDL for the five auction tables. Timestamps
// are TEXT in model.TimeLayout so lexicographic comparison matches
// chronological order.
const schema = `
CREATE TABLE IF NOT EXISTS Users (
	UserID   TEXT PRIMARY KEY,
	Rating   INTEGER NOT NULL DEFAULT 0,
	Location TEXT,
	Country  TEXT
);

CREATE TABLE IF NOT EXISTS Items (
	ItemID         TEXT PRIMARY KEY,
	Name           TEXT NOT NULL,
	Currently      REAL NOT NULL,
	Buy_Price      REAL,
	First_Bid      REAL NOT NULL,
	Number_of_Bids INTEGER NOT NULL DEFAULT 0,
	Started        TEXT NOT NULL,
	Ends           TEXT NOT NULL,
	Seller_UserID  TEXT NOT NULL REFERENCES Users(UserID),
	Description    TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS Categories (
	ItemID   TEXT NOT NULL REFERENCES Items(ItemID),
	Category TEXT NOT NULL,
	PRIMARY KEY (ItemID, Category)
);

CREATE TABLE IF NOT EXISTS Bids (
	ItemID TEXT NOT NULL REFERENCES Items(ItemID),
	UserID TEXT NOT NULL REFERENCES Users(UserID),
	Amount REAL NOT NULL,
	Time   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS CurrentTime (
	Time TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bids_item_time ON Bids(ItemID, Time);
CREATE INDEX IF NOT EXISTS idx_categories_category ON Categories(Category);
`

// EnsureSchema creates the auction tables if they do not exist.
// It never seeds the CurrentTime row; an unconfigured clock is
// reported explicitly by GetTime.
func EnsureSchema(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	return err
}
