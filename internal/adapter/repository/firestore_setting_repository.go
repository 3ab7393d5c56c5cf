package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"playvault/internal/domain/entity"
	"playvault/internal/domain/repository"
	"playvault/pkg/errors"
)

type firestoreSettingRepository struct {
	client *firestore.Client
}

func NewFirestoreSettingRepository(client *firestore.Client) repository.SettingRepository {
	return &firestoreSettingRepository{
		client: client,
	}
}

// Settings are keyed by their setting key, which keeps keys unique without
// a separate index.
func (r *firestoreSettingRepository) Create(ctx context.Context, setting *entity.Setting) error {
	setting.ID = setting.Key

	now := time.Now()
	if setting.CreatedAt.IsZero() {
		setting.CreatedAt = now
	}
	setting.UpdatedAt = now

	_, err := r.client.Collection("settings").Doc(setting.ID).Set(ctx, setting)
	if err != nil {
		return errors.Internal("Failed to create setting", err)
	}

	return nil
}

func (r *firestoreSettingRepository) GetByKey(ctx context.Context, key string) (*entity.Setting, error) {
	doc, err := r.client.Collection("settings").Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Setting", err)
		}
		return nil, errors.Internal("Failed to get setting", err)
	}

	var setting entity.Setting
	if err := doc.DataTo(&setting); err != nil {
		return nil, errors.Internal("Failed to parse setting data", err)
	}

	return &setting, nil
}

func (r *firestoreSettingRepository) Update(ctx context.Context, setting *entity.Setting) error {
	setting.UpdatedAt = time.Now()

	_, err := r.client.Collection("settings").Doc(setting.Key).Set(ctx, setting)
	if err != nil {
		return errors.Internal("Failed to update setting", err)
	}

	return nil
}

func (r *firestoreSettingRepository) Delete(ctx context.Context, key string) error {
	_, err := r.client.Collection("settings").Doc(key).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete setting", err)
	}

	return nil
}

func (r *firestoreSettingRepository) List(ctx context.Context, group string, publicOnly bool) ([]*entity.Setting, error) {
	query := r.client.Collection("settings").Query
	if group != "" {
		query = query.Where("group", "==", group)
	}
	if publicOnly {
		query = query.Where("isPublic", "==", true)
	}

	iter := query.Documents(ctx)
	var settings []*entity.Setting

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate settings", err)
		}

		var setting entity.Setting
		if err := doc.DataTo(&setting); err != nil {
			return nil, errors.Internal("Failed to parse setting data", err)
		}
		settings = append(settings, &setting)
	}

	return settings, nil
}
