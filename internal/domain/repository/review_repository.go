package repository

import (
	"context"

	"playvault/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	GetByContentAndUser(ctx context.Context, contentID, userID string) (*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id string) error
	ListByContent(ctx context.Context, contentID string) ([]*entity.Review, error)
	ListByContents(ctx context.Context, contentIDs []string, limit, offset int) ([]*entity.Review, int64, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Review, int64, error)
}
