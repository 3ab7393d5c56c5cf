package entity

import (
	"time"
)

// Bid status transitions: Active -> Outbid | Won | Lost | Cancelled.
// All four right-hand states are terminal; a re-bid after Outbid updates
// the bidder's own record back through the placement path, never this one.
const (
	BidStatusActive    = "Active"
	BidStatusOutbid    = "Outbid"
	BidStatusWon       = "Won"
	BidStatusLost      = "Lost"
	BidStatusCancelled = "Cancelled"
)

type Bid struct {
	ID               string    `json:"id" firestore:"id"`
	ContentID        string    `json:"content_id" firestore:"contentId"`
	BidderID         string    `json:"bidder_id" firestore:"bidderId"`
	Amount           float64   `json:"amount" firestore:"amount"`
	Status           string    `json:"status" firestore:"status"`
	IsAutoBid        bool      `json:"is_auto_bid" firestore:"isAutoBid"`
	MaxAutoBidAmount float64   `json:"max_auto_bid_amount,omitempty" firestore:"maxAutoBidAmount,omitempty"`
	CreatedAt        time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt        time.Time `json:"updated_at" firestore:"updatedAt"`
}
