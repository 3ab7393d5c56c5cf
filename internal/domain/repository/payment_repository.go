package repository

import (
	"context"

	"playvault/internal/domain/entity"
)

type PaymentRepository interface {
	// CreateIfAbsent inserts the payment keyed by its payment intent ID
	// unless a record for that intent already exists. The check and the
	// insert run in one transaction, so duplicate webhook deliveries cannot
	// produce two records. Returns the stored payment and whether this call
	// created it.
	CreateIfAbsent(ctx context.Context, payment *entity.Payment) (*entity.Payment, bool, error)
	GetByID(ctx context.Context, id string) (*entity.Payment, error)
	GetByIntentID(ctx context.Context, paymentIntentID string) (*entity.Payment, error)
	Update(ctx context.Context, payment *entity.Payment) error
	ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Payment, int64, error)
	ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Payment, int64, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Payment, int64, error)
}
