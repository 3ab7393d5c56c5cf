package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playvault/internal/domain/entity"
	"playvault/pkg/errors"
)

func newBidFixture(t *testing.T) (*BidUseCase, *fakeBidRepo, *fakeContentRepo, *fakeNotificationRepo) {
	t.Helper()
	bidRepo := newFakeBidRepo()
	contentRepo := newFakeContentRepo()
	notifier, notifRepo := newTestNotifier()
	return NewBidUseCase(bidRepo, contentRepo, notifier), bidRepo, contentRepo, notifRepo
}

func auctionContent(t *testing.T, repo *fakeContentRepo, startingBid, minIncrement, reserve float64) *entity.Content {
	t.Helper()
	content := &entity.Content{
		SellerID: "seller-1",
		Title:    "Advanced Footwork Drills",
		SaleType: entity.SaleTypeAuction,
		Status:   entity.ContentStatusPublished,
		AuctionDetails: &entity.AuctionDetails{
			StartingBid:  startingBid,
			MinIncrement: minIncrement,
			ReservePrice: reserve,
		},
	}
	require.NoError(t, repo.Create(context.Background(), content))
	return content
}

func TestPlaceBidOutbidScenario(t *testing.T) {
	uc, _, contentRepo, notifRepo := newBidFixture(t)
	ctx := context.Background()
	content := auctionContent(t, contentRepo, 40, 5, 0)

	bidA, err := uc.PlaceBid(ctx, "buyer-a", PlaceBidInput{ContentID: content.ID, Amount: 50})
	require.NoError(t, err)
	assert.Equal(t, entity.BidStatusActive, bidA.Status)

	// $54 is below $50 + $5.
	_, err = uc.PlaceBid(ctx, "buyer-b", PlaceBidInput{ContentID: content.ID, Amount: 54})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INVALID_STATE"))

	bidB, err := uc.PlaceBid(ctx, "buyer-b", PlaceBidInput{ContentID: content.ID, Amount: 55})
	require.NoError(t, err)
	assert.Equal(t, entity.BidStatusActive, bidB.Status)

	refreshed, err := uc.bidRepo.GetByID(ctx, bidA.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BidStatusOutbid, refreshed.Status)

	// The displaced bidder is told about it.
	notifications, _, err := notifRepo.ListByUser(ctx, "buyer-a", false, 0, 0)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, entity.NotificationTypeBid, notifications[0].Type)
}

func TestPlaceBidUpdatesOwnActiveBidInPlace(t *testing.T) {
	uc, bidRepo, contentRepo, _ := newBidFixture(t)
	ctx := context.Background()
	content := auctionContent(t, contentRepo, 40, 5, 0)

	first, err := uc.PlaceBid(ctx, "buyer-a", PlaceBidInput{ContentID: content.ID, Amount: 50})
	require.NoError(t, err)

	second, err := uc.PlaceBid(ctx, "buyer-a", PlaceBidInput{ContentID: content.ID, Amount: 60})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 60.0, second.Amount)

	active, err := bidRepo.ListActiveByContent(ctx, content.ID)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestPlaceBidPreconditions(t *testing.T) {
	uc, _, contentRepo, _ := newBidFixture(t)
	ctx := context.Background()

	t.Run("below starting bid", func(t *testing.T) {
		content := auctionContent(t, contentRepo, 40, 5, 0)
		_, err := uc.PlaceBid(ctx, "buyer-a", PlaceBidInput{ContentID: content.ID, Amount: 39})
		assert.True(t, errors.Is(err, "INVALID_STATE"))
	})

	t.Run("own content", func(t *testing.T) {
		content := auctionContent(t, contentRepo, 40, 5, 0)
		_, err := uc.PlaceBid(ctx, "seller-1", PlaceBidInput{ContentID: content.ID, Amount: 50})
		assert.True(t, errors.Is(err, "FORBIDDEN"))
	})

	t.Run("unpublished content", func(t *testing.T) {
		content := auctionContent(t, contentRepo, 40, 5, 0)
		content.Status = entity.ContentStatusDraft
		require.NoError(t, contentRepo.Update(ctx, content))
		_, err := uc.PlaceBid(ctx, "buyer-a", PlaceBidInput{ContentID: content.ID, Amount: 50})
		assert.True(t, errors.Is(err, "INVALID_STATE"))
	})

	t.Run("not auctionable", func(t *testing.T) {
		content := &entity.Content{
			SellerID: "seller-1",
			SaleType: entity.SaleTypeFixed,
			Status:   entity.ContentStatusPublished,
			Price:    25,
		}
		require.NoError(t, contentRepo.Create(ctx, content))
		_, err := uc.PlaceBid(ctx, "buyer-a", PlaceBidInput{ContentID: content.ID, Amount: 50})
		assert.True(t, errors.Is(err, "INVALID_STATE"))
	})

	t.Run("ended auction", func(t *testing.T) {
		content := auctionContent(t, contentRepo, 40, 5, 0)
		past := time.Now().Add(-time.Hour)
		content.AuctionDetails.EndTime = &past
		require.NoError(t, contentRepo.Update(ctx, content))
		_, err := uc.PlaceBid(ctx, "buyer-a", PlaceBidInput{ContentID: content.ID, Amount: 50})
		assert.True(t, errors.Is(err, "INVALID_STATE"))
	})

	t.Run("missing content", func(t *testing.T) {
		_, err := uc.PlaceBid(ctx, "buyer-a", PlaceBidInput{ContentID: "nope", Amount: 50})
		assert.True(t, errors.Is(err, "NOT_FOUND"))
	})
}

func TestCancelBid(t *testing.T) {
	uc, _, contentRepo, _ := newBidFixture(t)
	ctx := context.Background()
	content := auctionContent(t, contentRepo, 40, 5, 0)

	bid, err := uc.PlaceBid(ctx, "buyer-a", PlaceBidInput{ContentID: content.ID, Amount: 50})
	require.NoError(t, err)

	_, err = uc.CancelBid(ctx, "buyer-b", false, bid.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	cancelled, err := uc.CancelBid(ctx, "buyer-a", false, bid.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BidStatusCancelled, cancelled.Status)

	// Cancelled is terminal.
	_, err = uc.CancelBid(ctx, "buyer-a", false, bid.ID)
	assert.True(t, errors.Is(err, "INVALID_STATE"))
}

func TestEndAuctionReserveMet(t *testing.T) {
	uc, bidRepo, contentRepo, _ := newBidFixture(t)
	ctx := context.Background()
	content := auctionContent(t, contentRepo, 40, 5, 60)

	bidA, err := uc.PlaceBid(ctx, "buyer-a", PlaceBidInput{ContentID: content.ID, Amount: 50})
	require.NoError(t, err)
	bidB, err := uc.PlaceBid(ctx, "buyer-b", PlaceBidInput{ContentID: content.ID, Amount: 70})
	require.NoError(t, err)
	bidC, err := uc.PlaceBid(ctx, "buyer-c", PlaceBidInput{ContentID: content.ID, Amount: 80})
	require.NoError(t, err)

	result, err := uc.EndAuction(ctx, "seller-1", false, content.ID)
	require.NoError(t, err)
	assert.True(t, result.ReserveMet)
	require.NotNil(t, result.WinningBid)
	assert.Equal(t, bidC.ID, result.WinningBid.ID)

	won, _ := bidRepo.GetByID(ctx, bidC.ID)
	assert.Equal(t, entity.BidStatusWon, won.Status)

	// Displaced bids were already Outbid when they were overtaken; the
	// close only settles the single remaining Active bid.
	assert.Equal(t, 0, result.LosingCount)
	outbidA, _ := bidRepo.GetByID(ctx, bidA.ID)
	assert.Equal(t, entity.BidStatusOutbid, outbidA.Status)
	outbidB, _ := bidRepo.GetByID(ctx, bidB.ID)
	assert.Equal(t, entity.BidStatusOutbid, outbidB.Status)

	refreshed, _ := contentRepo.GetByID(ctx, content.ID)
	assert.NotNil(t, refreshed.AuctionDetails.EndTime)

	// The close is terminal: a second call finds nothing to settle.
	_, err = uc.EndAuction(ctx, "seller-1", false, content.ID)
	assert.True(t, errors.Is(err, "INVALID_STATE"))
}

func TestEndAuctionReserveUnmet(t *testing.T) {
	uc, bidRepo, contentRepo, _ := newBidFixture(t)
	ctx := context.Background()
	content := auctionContent(t, contentRepo, 40, 5, 100)

	bid, err := uc.PlaceBid(ctx, "buyer-a", PlaceBidInput{ContentID: content.ID, Amount: 80})
	require.NoError(t, err)

	result, err := uc.EndAuction(ctx, "seller-1", false, content.ID)
	require.NoError(t, err)
	assert.False(t, result.ReserveMet)
	assert.Nil(t, result.WinningBid)

	refreshed, _ := bidRepo.GetByID(ctx, bid.ID)
	assert.Equal(t, entity.BidStatusLost, refreshed.Status)

	all, err := bidRepo.ListByContent(ctx, content.ID)
	require.NoError(t, err)
	for _, b := range all {
		assert.NotEqual(t, entity.BidStatusWon, b.Status)
	}
}

func TestEndAuctionAccessAndState(t *testing.T) {
	uc, _, contentRepo, _ := newBidFixture(t)
	ctx := context.Background()
	content := auctionContent(t, contentRepo, 40, 5, 0)

	_, err := uc.EndAuction(ctx, "someone-else", false, content.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	// No bids yet.
	_, err = uc.EndAuction(ctx, "seller-1", false, content.ID)
	assert.True(t, errors.Is(err, "INVALID_STATE"))

	// Admin may close another seller's auction once a bid exists.
	_, err = uc.PlaceBid(ctx, "buyer-a", PlaceBidInput{ContentID: content.ID, Amount: 45})
	require.NoError(t, err)
	result, err := uc.EndAuction(ctx, "admin-1", true, content.ID)
	require.NoError(t, err)
	assert.True(t, result.ReserveMet)
}
