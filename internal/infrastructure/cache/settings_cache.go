package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"playvault/internal/domain/entity"
	"playvault/internal/domain/repository"
)

const settingTTL = 5 * time.Minute

// SettingsCache is a read-through cache in front of the settings repository.
// Writes go to the repository first, then invalidate the cached key. A nil
// or unreachable redis client degrades to plain repository reads.
type SettingsCache struct {
	client *redis.Client
	repo   repository.SettingRepository
}

func NewSettingsCache(client *redis.Client, repo repository.SettingRepository) *SettingsCache {
	return &SettingsCache{client: client, repo: repo}
}

func NewRedisClient(addr, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
}

func cacheKey(key string) string {
	return "setting:" + key
}

func (c *SettingsCache) Create(ctx context.Context, setting *entity.Setting) error {
	if err := c.repo.Create(ctx, setting); err != nil {
		return err
	}
	c.invalidate(ctx, setting.Key)
	return nil
}

func (c *SettingsCache) GetByKey(ctx context.Context, key string) (*entity.Setting, error) {
	if c.client != nil {
		if data, err := c.client.Get(ctx, cacheKey(key)).Bytes(); err == nil {
			var setting entity.Setting
			if jsonErr := json.Unmarshal(data, &setting); jsonErr == nil {
				return &setting, nil
			}
		}
	}

	setting, err := c.repo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	if c.client != nil {
		if data, jsonErr := json.Marshal(setting); jsonErr == nil {
			c.client.Set(ctx, cacheKey(key), data, settingTTL)
		}
	}

	return setting, nil
}

func (c *SettingsCache) Update(ctx context.Context, setting *entity.Setting) error {
	if err := c.repo.Update(ctx, setting); err != nil {
		return err
	}
	c.invalidate(ctx, setting.Key)
	return nil
}

func (c *SettingsCache) Delete(ctx context.Context, key string) error {
	if err := c.repo.Delete(ctx, key); err != nil {
		return err
	}
	c.invalidate(ctx, key)
	return nil
}

func (c *SettingsCache) List(ctx context.Context, group string, publicOnly bool) ([]*entity.Setting, error) {
	return c.repo.List(ctx, group, publicOnly)
}

func (c *SettingsCache) invalidate(ctx context.Context, key string) {
	if c.client != nil {
		c.client.Del(ctx, cacheKey(key))
	}
}
