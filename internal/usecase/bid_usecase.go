package usecase

import (
	"context"
	"fmt"
	"time"

	"playvault/internal/domain/entity"
	"playvault/internal/domain/repository"
	"playvault/pkg/errors"
)

type BidUseCase struct {
	bidRepo     repository.BidRepository
	contentRepo repository.ContentRepository
	notifier    *NotificationUseCase
}

func NewBidUseCase(bidRepo repository.BidRepository, contentRepo repository.ContentRepository, notifier *NotificationUseCase) *BidUseCase {
	return &BidUseCase{
		bidRepo:     bidRepo,
		contentRepo: contentRepo,
		notifier:    notifier,
	}
}

type PlaceBidInput struct {
	ContentID        string
	Amount           float64
	IsAutoBid        bool
	MaxAutoBidAmount float64
}

// PlaceBid validates the listing and the bid floor, then delegates the
// read-modify-write of bid records to the repository transaction. A bidder
// who already holds the Active bid gets it updated in place; a displaced
// rival bid moves to Outbid and its owner is notified.
func (uc *BidUseCase) PlaceBid(ctx context.Context, bidderID string, input PlaceBidInput) (*entity.Bid, error) {
	content, err := uc.contentRepo.GetByID(ctx, input.ContentID)
	if err != nil {
		return nil, err
	}

	if content.SellerID == bidderID {
		return nil, errors.Forbidden("You cannot bid on your own content", nil)
	}
	if content.Status != entity.ContentStatusPublished {
		return nil, errors.InvalidState("Content is not published", nil)
	}
	if !content.Auctionable() {
		return nil, errors.InvalidState("Content is not open for bidding", nil)
	}
	if content.AuctionEnded(time.Now()) {
		return nil, errors.InvalidState("The auction has already ended", nil)
	}
	if input.Amount < content.AuctionDetails.StartingBid {
		return nil, errors.InvalidState("Bid amount is below the starting bid", nil)
	}
	if input.IsAutoBid && input.MaxAutoBidAmount > 0 && input.MaxAutoBidAmount < input.Amount {
		return nil, errors.BadRequest("Maximum auto-bid amount cannot be below the bid amount", nil)
	}

	placed, outbid, err := uc.bidRepo.PlaceBid(ctx, repository.PlaceBidInput{
		ContentID:        input.ContentID,
		BidderID:         bidderID,
		Amount:           input.Amount,
		IsAutoBid:        input.IsAutoBid,
		MaxAutoBidAmount: input.MaxAutoBidAmount,
		MinIncrement:     content.AuctionDetails.MinIncrement,
	})
	if err != nil {
		return nil, err
	}

	if outbid != nil {
		uc.notifier.Notify(ctx, outbid.BidderID, "You have been outbid",
			fmt.Sprintf("Your bid of $%.2f on %q was outbid by a bid of $%.2f.", outbid.Amount, content.Title, placed.Amount),
			entity.NotificationTypeBid, placed.ContentID, "Content")
	}

	return placed, nil
}

func (uc *BidUseCase) GetBid(ctx context.Context, callerID string, isAdmin bool, bidID string) (*entity.Bid, error) {
	bid, err := uc.bidRepo.GetByID(ctx, bidID)
	if err != nil {
		return nil, err
	}

	if bid.BidderID == callerID || isAdmin {
		return bid, nil
	}

	content, err := uc.contentRepo.GetByID(ctx, bid.ContentID)
	if err != nil {
		return nil, err
	}
	if content.SellerID != callerID {
		return nil, errors.Forbidden("You cannot view this bid", nil)
	}

	return bid, nil
}

// CancelBid is only valid on an Active bid, by the bidder or an admin.
// Cancelled is terminal.
func (uc *BidUseCase) CancelBid(ctx context.Context, callerID string, isAdmin bool, bidID string) (*entity.Bid, error) {
	bid, err := uc.bidRepo.GetByID(ctx, bidID)
	if err != nil {
		return nil, err
	}

	if bid.BidderID != callerID && !isAdmin {
		return nil, errors.Forbidden("You can only cancel your own bids", nil)
	}
	if bid.Status != entity.BidStatusActive {
		return nil, errors.InvalidState("Only active bids can be cancelled", nil)
	}

	bid.Status = entity.BidStatusCancelled
	if err := uc.bidRepo.Update(ctx, bid); err != nil {
		return nil, err
	}

	return bid, nil
}

// EndAuctionResult reports how the close settled.
type EndAuctionResult struct {
	ReserveMet  bool        `json:"reserve_met"`
	WinningBid  *entity.Bid `json:"winning_bid,omitempty"`
	LosingCount int         `json:"losing_count"`
}

// EndAuction is the terminal auction transition. With a reserve price set
// and unmet, every Active bid becomes Lost and nothing wins. Otherwise the
// highest becomes Won and the rest Lost. A second call finds no Active
// bids and fails, so the close never re-announces a winner.
func (uc *BidUseCase) EndAuction(ctx context.Context, callerID string, isAdmin bool, contentID string) (*EndAuctionResult, error) {
	content, err := uc.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		return nil, err
	}

	if content.SellerID != callerID && !isAdmin {
		return nil, errors.Forbidden("Only the seller can end this auction", nil)
	}
	if !content.Auctionable() {
		return nil, errors.InvalidState("Content is not an auction listing", nil)
	}

	active, err := uc.bidRepo.ListActiveByContent(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if len(active) == 0 {
		return nil, errors.InvalidState("There are no active bids to settle", nil)
	}

	// ListActiveByContent orders by amount descending.
	highest := active[0]

	reserve := content.AuctionDetails.ReservePrice
	reserveMet := reserve == 0 || highest.Amount >= reserve

	result := &EndAuctionResult{ReserveMet: reserveMet}

	if reserveMet {
		highest.Status = entity.BidStatusWon
		if err := uc.bidRepo.Update(ctx, highest); err != nil {
			return nil, err
		}
		result.WinningBid = highest

		for _, bid := range active[1:] {
			bid.Status = entity.BidStatusLost
			if err := uc.bidRepo.Update(ctx, bid); err != nil {
				return nil, err
			}
			result.LosingCount++
		}

		uc.notifier.Notify(ctx, highest.BidderID, "You won the auction",
			fmt.Sprintf("Your bid of $%.2f on %q won the auction. Complete your order to receive the content.", highest.Amount, content.Title),
			entity.NotificationTypeBid, highest.ID, "Bid")
	} else {
		for _, bid := range active {
			bid.Status = entity.BidStatusLost
			if err := uc.bidRepo.Update(ctx, bid); err != nil {
				return nil, err
			}
			result.LosingCount++
		}

		uc.notifier.Notify(ctx, content.SellerID, "Auction ended below reserve",
			fmt.Sprintf("The auction for %q ended with a highest bid of $%.2f, below your reserve price.", content.Title, highest.Amount),
			entity.NotificationTypeBid, content.ID, "Content")
	}

	now := time.Now()
	content.AuctionDetails.EndTime = &now
	if err := uc.contentRepo.Update(ctx, content); err != nil {
		return nil, err
	}

	return result, nil
}

// ListBidsByContent is the public bid board, amount descending.
func (uc *BidUseCase) ListBidsByContent(ctx context.Context, contentID string) ([]*entity.Bid, error) {
	if _, err := uc.contentRepo.GetByID(ctx, contentID); err != nil {
		return nil, err
	}
	return uc.bidRepo.ListByContent(ctx, contentID)
}

func (uc *BidUseCase) ListMyBids(ctx context.Context, bidderID string, limit, offset int) ([]*entity.Bid, int64, error) {
	return uc.bidRepo.ListByBidder(ctx, bidderID, limit, offset)
}

func (uc *BidUseCase) ListAllBids(ctx context.Context, limit, offset int) ([]*entity.Bid, int64, error) {
	return uc.bidRepo.List(ctx, limit, offset)
}
