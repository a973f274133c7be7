package auctionerrors

import "errors"

// Lookup errors
var (
	ErrItemNotFound      = errors.New("item not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrTimeNotConfigured = errors.New("current time is not configured")
)

// Business rule errors
var (
	ErrTimeRegression    = errors.New("time must not move backwards")
	ErrSellerBid         = errors.New("seller cannot bid on their own item")
	ErrSameTick          = errors.New("a bid already exists at the current time")
	ErrBidTooLow         = errors.New("bid must exceed the current highest bid")
	ErrAuctionNotRunning = errors.New("auction is not running at the current time")
)

// IsBidRejection reports whether err is one of the bid validation
// failures. These are recovered locally and rendered as a page
// message, never as a server error.
func IsBidRejection(err error) bool {
	return errors.Is(err, ErrSellerBid) ||
		errors.Is(err, ErrSameTick) ||
		errors.Is(err, ErrBidTooLow) ||
		errors.Is(err, ErrAuctionNotRunning) ||
		errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrUserNotFound)
}
