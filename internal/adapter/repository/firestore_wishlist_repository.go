package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"playvault/internal/domain/entity"
	"playvault/internal/domain/repository"
	"playvault/pkg/errors"
)

type firestoreWishlistRepository struct {
	client *firestore.Client
}

func NewFirestoreWishlistRepository(client *firestore.Client) repository.WishlistRepository {
	return &firestoreWishlistRepository{
		client: client,
	}
}

func (r *firestoreWishlistRepository) Create(ctx context.Context, item *entity.WishlistItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now()
	}

	_, err := r.client.Collection("wishlists").Doc(item.ID).Set(ctx, item)
	if err != nil {
		return errors.Internal("Failed to add wishlist item", err)
	}

	return nil
}

func (r *firestoreWishlistRepository) GetByUserAndContent(ctx context.Context, userID, contentID string) (*entity.WishlistItem, error) {
	query := r.client.Collection("wishlists").
		Where("userId", "==", userID).
		Where("contentId", "==", contentID).
		Limit(1)

	doc, err := query.Documents(ctx).Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Wishlist item", nil)
		}
		return nil, errors.Internal("Failed to query wishlist", err)
	}

	var item entity.WishlistItem
	if err := doc.DataTo(&item); err != nil {
		return nil, errors.Internal("Failed to parse wishlist data", err)
	}

	return &item, nil
}

func (r *firestoreWishlistRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("wishlists").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to remove wishlist item", err)
	}

	return nil
}

func (r *firestoreWishlistRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.WishlistItem, int64, error) {
	query := r.client.Collection("wishlists").
		Where("userId", "==", userID).
		OrderBy("addedAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count wishlist items", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var items []*entity.WishlistItem

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate wishlist items", err)
		}

		var item entity.WishlistItem
		if err := doc.DataTo(&item); err != nil {
			return nil, 0, errors.Internal("Failed to parse wishlist data", err)
		}
		items = append(items, &item)
	}

	return items, total, nil
}
