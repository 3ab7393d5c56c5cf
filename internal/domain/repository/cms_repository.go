package repository

import (
	"context"

	"playvault/internal/domain/entity"
)

type CmsRepository interface {
	Create(ctx context.Context, page *entity.CmsPage) error
	GetByID(ctx context.Context, id string) (*entity.CmsPage, error)
	GetBySlug(ctx context.Context, slug string) (*entity.CmsPage, error)
	Update(ctx context.Context, page *entity.CmsPage) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, status string, limit, offset int) ([]*entity.CmsPage, int64, error)
}
