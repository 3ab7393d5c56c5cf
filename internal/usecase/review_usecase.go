package usecase

import (
	"context"
	"fmt"

	"playvault/internal/domain/entity"
	"playvault/internal/domain/repository"
	"playvault/pkg/errors"
	"playvault/pkg/logger"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	orderRepo   repository.OrderRepository
	contentRepo repository.ContentRepository
	notifier    *NotificationUseCase
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	orderRepo repository.OrderRepository,
	contentRepo repository.ContentRepository,
	notifier *NotificationUseCase,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		orderRepo:   orderRepo,
		contentRepo: contentRepo,
		notifier:    notifier,
	}
}

type CreateReviewInput struct {
	ContentID string
	Rating    int
	Title     string
	Text      string
}

// CreateReview requires a completed order for the (buyer, content) pair and
// allows at most one review per pair. The content's average rating is
// recomputed after the write.
func (uc *ReviewUseCase) CreateReview(ctx context.Context, userID string, input CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	content, err := uc.contentRepo.GetByID(ctx, input.ContentID)
	if err != nil {
		return nil, err
	}

	order, err := uc.orderRepo.FindCompletedByBuyerAndContent(ctx, userID, input.ContentID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.Forbidden("Reviews require a completed purchase of this content", nil)
		}
		return nil, err
	}

	if existing, err := uc.reviewRepo.GetByContentAndUser(ctx, input.ContentID, userID); err == nil && existing != nil {
		return nil, errors.Conflict("You have already reviewed this content")
	}

	review := &entity.Review{
		ContentID:          input.ContentID,
		UserID:             userID,
		Rating:             input.Rating,
		Title:              input.Title,
		Text:               input.Text,
		IsVerifiedPurchase: true,
		OrderID:            order.ID,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	uc.recomputeRating(ctx, content.ID)

	uc.notifier.Notify(ctx, content.SellerID, "New review",
		fmt.Sprintf("%q received a %d-star review.", content.Title, review.Rating),
		entity.NotificationTypeSystem, review.ID, "Review")

	return review, nil
}

type UpdateReviewInput struct {
	Rating int
	Title  string
	Text   string
}

func (uc *ReviewUseCase) UpdateReview(ctx context.Context, userID, reviewID string, input UpdateReviewInput) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if review.UserID != userID {
		return nil, errors.Forbidden("You can only update your own reviews", nil)
	}

	if input.Rating != 0 {
		if input.Rating < 1 || input.Rating > 5 {
			return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
		}
		review.Rating = input.Rating
	}
	if input.Title != "" {
		review.Title = input.Title
	}
	if input.Text != "" {
		review.Text = input.Text
	}

	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	uc.recomputeRating(ctx, review.ContentID)

	return review, nil
}

func (uc *ReviewUseCase) DeleteReview(ctx context.Context, callerID string, isAdmin bool, reviewID string) error {
	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}

	if review.UserID != callerID && !isAdmin {
		return errors.Forbidden("You can only delete your own reviews", nil)
	}

	if err := uc.reviewRepo.Delete(ctx, reviewID); err != nil {
		return err
	}

	uc.recomputeRating(ctx, review.ContentID)

	return nil
}

// recomputeRating refreshes the derived averageRating cache. The mean is
// advisory display data, so a failed recompute is logged, not surfaced.
func (uc *ReviewUseCase) recomputeRating(ctx context.Context, contentID string) {
	reviews, err := uc.reviewRepo.ListByContent(ctx, contentID)
	if err != nil {
		logger.Error("Failed to list reviews for rating recompute on %s: %v", contentID, err)
		return
	}

	var average float64
	if len(reviews) > 0 {
		var sum int
		for _, r := range reviews {
			sum += r.Rating
		}
		average = float64(sum) / float64(len(reviews))
	}

	content, err := uc.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		logger.Error("Failed to load content for rating recompute on %s: %v", contentID, err)
		return
	}

	content.AverageRating = average
	if err := uc.contentRepo.Update(ctx, content); err != nil {
		logger.Error("Failed to store recomputed rating on %s: %v", contentID, err)
	}
}

func (uc *ReviewUseCase) ListByContent(ctx context.Context, contentID string) ([]*entity.Review, error) {
	if _, err := uc.contentRepo.GetByID(ctx, contentID); err != nil {
		return nil, err
	}
	return uc.reviewRepo.ListByContent(ctx, contentID)
}

// ListBySeller aggregates reviews across all of one seller's listings.
func (uc *ReviewUseCase) ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Review, int64, error) {
	contents, _, err := uc.contentRepo.ListBySellerID(ctx, sellerID, "", 0, 0)
	if err != nil {
		return nil, 0, err
	}
	if len(contents) == 0 {
		return nil, 0, nil
	}

	ids := make([]string, 0, len(contents))
	for _, c := range contents {
		ids = append(ids, c.ID)
	}

	return uc.reviewRepo.ListByContents(ctx, ids, limit, offset)
}

func (uc *ReviewUseCase) ListAllReviews(ctx context.Context, limit, offset int) ([]*entity.Review, int64, error) {
	return uc.reviewRepo.List(ctx, limit, offset)
}
