package repository

import (
	"context"

	"playvault/internal/domain/entity"
)

// ContentFilter enumerates every filterable field. Client input is bound
// onto this struct and never forwarded into a query as free-form keys.
type ContentFilter struct {
	Sport       string
	ContentType string
	Difficulty  string
	SaleType    string
	Status      string
	Visibility  string
	SellerID    string
	MinPrice    float64
	MaxPrice    float64
}

type ContentRepository interface {
	Create(ctx context.Context, content *entity.Content) error
	GetByID(ctx context.Context, id string) (*entity.Content, error)
	Update(ctx context.Context, content *entity.Content) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ContentFilter, sort string, limit, offset int) ([]*entity.Content, int64, error)
	ListBySellerID(ctx context.Context, sellerID string, status string, limit, offset int) ([]*entity.Content, int64, error)
	Count(ctx context.Context) (int64, error)
}
