package repository

import (
	"context"

	"playvault/internal/domain/entity"
)

type WishlistRepository interface {
	Create(ctx context.Context, item *entity.WishlistItem) error
	GetByUserAndContent(ctx context.Context, userID, contentID string) (*entity.WishlistItem, error)
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.WishlistItem, int64, error)
}
