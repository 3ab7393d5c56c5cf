package usecase

import (
	"context"

	"playvault/internal/domain/entity"
	"playvault/internal/domain/repository"
	"playvault/pkg/errors"
)

type WishlistUseCase struct {
	wishlistRepo repository.WishlistRepository
	contentRepo  repository.ContentRepository
}

func NewWishlistUseCase(wishlistRepo repository.WishlistRepository, contentRepo repository.ContentRepository) *WishlistUseCase {
	return &WishlistUseCase{
		wishlistRepo: wishlistRepo,
		contentRepo:  contentRepo,
	}
}

func (uc *WishlistUseCase) AddItem(ctx context.Context, userID, contentID, notes string) (*entity.WishlistItem, error) {
	content, err := uc.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		return nil, err
	}

	if content.SellerID == userID {
		return nil, errors.BadRequest("You cannot wishlist your own content", nil)
	}

	if existing, err := uc.wishlistRepo.GetByUserAndContent(ctx, userID, contentID); err == nil && existing != nil {
		return nil, errors.Conflict("Content is already on your wishlist")
	}

	item := &entity.WishlistItem{
		UserID:    userID,
		ContentID: contentID,
		Notes:     notes,
	}

	if err := uc.wishlistRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (uc *WishlistUseCase) RemoveItem(ctx context.Context, userID, contentID string) error {
	item, err := uc.wishlistRepo.GetByUserAndContent(ctx, userID, contentID)
	if err != nil {
		return err
	}

	return uc.wishlistRepo.Delete(ctx, item.ID)
}

func (uc *WishlistUseCase) ListItems(ctx context.Context, userID string, limit, offset int) ([]*entity.WishlistItem, int64, error) {
	return uc.wishlistRepo.ListByUser(ctx, userID, limit, offset)
}
