package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playvault/internal/domain/entity"
	"playvault/pkg/errors"
)

type reviewFixture struct {
	uc          *ReviewUseCase
	reviewRepo  *fakeReviewRepo
	orderRepo   *fakeOrderRepo
	contentRepo *fakeContentRepo
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()
	f := &reviewFixture{
		reviewRepo:  newFakeReviewRepo(),
		orderRepo:   newFakeOrderRepo(),
		contentRepo: newFakeContentRepo(),
	}
	notifier, _ := newTestNotifier()
	f.uc = NewReviewUseCase(f.reviewRepo, f.orderRepo, f.contentRepo, notifier)
	return f
}

func (f *reviewFixture) contentWithPurchase(t *testing.T, buyerID string) *entity.Content {
	t.Helper()
	ctx := context.Background()
	content := &entity.Content{
		SellerID: "seller-1",
		Title:    "Sprint Mechanics Masterclass",
		SaleType: entity.SaleTypeFixed,
		Price:    40,
		Status:   entity.ContentStatusPublished,
	}
	require.NoError(t, f.contentRepo.Create(ctx, content))
	require.NoError(t, f.orderRepo.Create(ctx, &entity.Order{
		BuyerID:       buyerID,
		SellerID:      "seller-1",
		ContentID:     content.ID,
		OrderType:     entity.OrderTypeFixed,
		Amount:        40,
		Status:        entity.OrderStatusCompleted,
		PaymentStatus: entity.PaymentStatusCompleted,
	}))
	return content
}

func TestCreateReviewRequiresCompletedOrder(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()
	content := &entity.Content{
		SellerID: "seller-1",
		SaleType: entity.SaleTypeFixed,
		Status:   entity.ContentStatusPublished,
	}
	require.NoError(t, f.contentRepo.Create(ctx, content))

	_, err := f.uc.CreateReview(ctx, "buyer-1", CreateReviewInput{
		ContentID: content.ID,
		Rating:    5,
		Text:      "Great drills",
	})
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	// A pending order is not enough.
	require.NoError(t, f.orderRepo.Create(ctx, &entity.Order{
		BuyerID:   "buyer-1",
		ContentID: content.ID,
		Status:    entity.OrderStatusPending,
	}))
	_, err = f.uc.CreateReview(ctx, "buyer-1", CreateReviewInput{
		ContentID: content.ID,
		Rating:    5,
		Text:      "Great drills",
	})
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestCreateReviewVerifiedAndUnique(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()
	content := f.contentWithPurchase(t, "buyer-1")

	review, err := f.uc.CreateReview(ctx, "buyer-1", CreateReviewInput{
		ContentID: content.ID,
		Rating:    4,
		Title:     "Solid",
		Text:      "Improved my first step noticeably.",
	})
	require.NoError(t, err)
	assert.True(t, review.IsVerifiedPurchase)
	assert.NotEmpty(t, review.OrderID)

	_, err = f.uc.CreateReview(ctx, "buyer-1", CreateReviewInput{
		ContentID: content.ID,
		Rating:    5,
		Text:      "Second thoughts",
	})
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestCreateReviewRejectsInvalidRating(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()
	content := f.contentWithPurchase(t, "buyer-1")

	for _, rating := range []int{0, 6, -1} {
		_, err := f.uc.CreateReview(ctx, "buyer-1", CreateReviewInput{
			ContentID: content.ID,
			Rating:    rating,
			Text:      "x",
		})
		assert.True(t, errors.Is(err, "BAD_REQUEST"), "rating %d", rating)
	}
}

func TestAverageRatingRecompute(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()
	content := f.contentWithPurchase(t, "buyer-1")
	require.NoError(t, f.orderRepo.Create(ctx, &entity.Order{
		BuyerID:   "buyer-2",
		SellerID:  "seller-1",
		ContentID: content.ID,
		Status:    entity.OrderStatusCompleted,
	}))

	_, err := f.uc.CreateReview(ctx, "buyer-1", CreateReviewInput{ContentID: content.ID, Rating: 5, Text: "a"})
	require.NoError(t, err)
	refreshed, _ := f.contentRepo.GetByID(ctx, content.ID)
	assert.Equal(t, 5.0, refreshed.AverageRating)

	_, err = f.uc.CreateReview(ctx, "buyer-2", CreateReviewInput{ContentID: content.ID, Rating: 2, Text: "b"})
	require.NoError(t, err)
	refreshed, _ = f.contentRepo.GetByID(ctx, content.ID)
	assert.Equal(t, 3.5, refreshed.AverageRating)
}

func TestDeleteOnlyReviewResetsRatingToZero(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()
	content := f.contentWithPurchase(t, "buyer-1")

	review, err := f.uc.CreateReview(ctx, "buyer-1", CreateReviewInput{ContentID: content.ID, Rating: 4, Text: "a"})
	require.NoError(t, err)

	require.NoError(t, f.uc.DeleteReview(ctx, "buyer-1", false, review.ID))

	refreshed, _ := f.contentRepo.GetByID(ctx, content.ID)
	assert.Equal(t, 0.0, refreshed.AverageRating)
}

func TestDeleteReviewOwnership(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()
	content := f.contentWithPurchase(t, "buyer-1")

	review, err := f.uc.CreateReview(ctx, "buyer-1", CreateReviewInput{ContentID: content.ID, Rating: 4, Text: "a"})
	require.NoError(t, err)

	err = f.uc.DeleteReview(ctx, "buyer-2", false, review.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	// Admin override is allowed.
	require.NoError(t, f.uc.DeleteReview(ctx, "admin-1", true, review.ID))
}

func TestUpdateReviewRecomputesRating(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()
	content := f.contentWithPurchase(t, "buyer-1")

	review, err := f.uc.CreateReview(ctx, "buyer-1", CreateReviewInput{ContentID: content.ID, Rating: 2, Text: "meh"})
	require.NoError(t, err)

	_, err = f.uc.UpdateReview(ctx, "buyer-1", review.ID, UpdateReviewInput{Rating: 5, Text: "grew on me"})
	require.NoError(t, err)

	refreshed, _ := f.contentRepo.GetByID(ctx, content.ID)
	assert.Equal(t, 5.0, refreshed.AverageRating)
}
