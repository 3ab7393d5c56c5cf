package repository

import (
	"context"

	"playvault/internal/domain/entity"
)

type SettingRepository interface {
	Create(ctx context.Context, setting *entity.Setting) error
	GetByKey(ctx context.Context, key string) (*entity.Setting, error)
	Update(ctx context.Context, setting *entity.Setting) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, group string, publicOnly bool) ([]*entity.Setting, error)
}
