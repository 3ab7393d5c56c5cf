package repository

import (
	"context"

	"playvault/internal/domain/entity"
)

// PlaceBidInput carries everything the placement transaction needs. The
// increment floor is re-checked against the highest Active bid inside the
// transaction so that two concurrent placements cannot both pass it.
type PlaceBidInput struct {
	ContentID        string
	BidderID         string
	Amount           float64
	IsAutoBid        bool
	MaxAutoBidAmount float64
	MinIncrement     float64
}

type BidRepository interface {
	// PlaceBid atomically reads the highest Active bid for the content,
	// validates the increment floor, upserts the bidder's Active bid, and
	// transitions any previously highest rival bid to Outbid. The displaced
	// bid, when there is one, is returned alongside the placed bid.
	PlaceBid(ctx context.Context, input PlaceBidInput) (placed *entity.Bid, outbid *entity.Bid, err error)
	GetByID(ctx context.Context, id string) (*entity.Bid, error)
	Update(ctx context.Context, bid *entity.Bid) error
	ListActiveByContent(ctx context.Context, contentID string) ([]*entity.Bid, error)
	ListByContent(ctx context.Context, contentID string) ([]*entity.Bid, error)
	ListByBidder(ctx context.Context, bidderID string, limit, offset int) ([]*entity.Bid, int64, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Bid, int64, error)
}
