package medication

import "time"

// Stock classification boundaries, in units on hand. A count equal to a
// threshold falls into the lower band.
const (
	LowStockThreshold    = 10
	MediumStockThreshold = 50
)

// ExpirySoonMonths is the whole-month window inside which a medication
// is flagged as expiring soon.
const ExpirySoonMonths = 3

// Stock level values.
const (
	StockLow    = "low"
	StockMedium = "medium"
	StockGood   = "good"
)

// Expiry status values.
const (
	ExpiryExpired = "expired"
	ExpirySoon    = "expires_soon"
	ExpiryValid   = "valid"
)

// StockLevel classifies a stock snapshot.
func StockLevel(stock int) string {
	switch {
	case stock <= LowStockThreshold:
		return StockLow
	case stock <= MediumStockThreshold:
		return StockMedium
	default:
		return StockGood
	}
}

// ExpiryStatusAt classifies an expiry date relative to today. The window
// check counts calendar months only and ignores day-of-month, so a date
// early in the boundary month can classify differently from one late in
// it. This mirrors the dashboard the API was built for.
func ExpiryStatusAt(expiry, today time.Time) string {
	if expiry.Before(today) {
		return ExpiryExpired
	}
	months := (expiry.Year()-today.Year())*12 + int(expiry.Month()) - int(today.Month())
	if months <= ExpirySoonMonths {
		return ExpirySoon
	}
	return ExpiryValid
}
