package repository

import (
	"context"

	"playvault/internal/domain/entity"
)

type CustomRequestRepository interface {
	Create(ctx context.Context, request *entity.CustomRequest) error
	GetByID(ctx context.Context, id string) (*entity.CustomRequest, error)
	Update(ctx context.Context, request *entity.CustomRequest) error
	ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.CustomRequest, int64, error)
	ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*entity.CustomRequest, int64, error)
	List(ctx context.Context, limit, offset int) ([]*entity.CustomRequest, int64, error)
}
