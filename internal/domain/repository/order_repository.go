package repository

import (
	"context"

	"playvault/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Order, int64, error)
	ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Order, int64, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Order, int64, error)
	// FindCompletedByBuyerAndContent returns a completed order for the pair,
	// used to gate review creation.
	FindCompletedByBuyerAndContent(ctx context.Context, buyerID, contentID string) (*entity.Order, error)
	Count(ctx context.Context) (int64, error)
	// RevenueTotals sums amount and platform fee across completed orders.
	RevenueTotals(ctx context.Context) (gross float64, fees float64, err error)
}
