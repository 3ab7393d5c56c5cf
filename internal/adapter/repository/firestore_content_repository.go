package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"playvault/internal/domain/entity"
	"playvault/internal/domain/repository"
	"playvault/pkg/errors"
)

type firestoreContentRepository struct {
	client *firestore.Client
}

func NewFirestoreContentRepository(client *firestore.Client) repository.ContentRepository {
	return &firestoreContentRepository{
		client: client,
	}
}

func (r *firestoreContentRepository) Create(ctx context.Context, content *entity.Content) error {
	if content.ID == "" {
		doc := r.client.Collection("contents").NewDoc()
		content.ID = doc.ID
	}

	now := time.Now()
	if content.CreatedAt.IsZero() {
		content.CreatedAt = now
	}
	content.UpdatedAt = now

	_, err := r.client.Collection("contents").Doc(content.ID).Set(ctx, content)
	if err != nil {
		return errors.Internal("Failed to create content", err)
	}

	return nil
}

func (r *firestoreContentRepository) GetByID(ctx context.Context, id string) (*entity.Content, error) {
	doc, err := r.client.Collection("contents").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Content", err)
		}
		return nil, errors.Internal("Failed to get content", err)
	}

	var content entity.Content
	if err := doc.DataTo(&content); err != nil {
		return nil, errors.Internal("Failed to parse content data", err)
	}

	return &content, nil
}

func (r *firestoreContentRepository) Update(ctx context.Context, content *entity.Content) error {
	content.UpdatedAt = time.Now()

	_, err := r.client.Collection("contents").Doc(content.ID).Set(ctx, content)
	if err != nil {
		return errors.Internal("Failed to update content", err)
	}

	return nil
}

func (r *firestoreContentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("contents").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete content", err)
	}

	return nil
}

func (r *firestoreContentRepository) List(ctx context.Context, filter repository.ContentFilter, sort string, limit, offset int) ([]*entity.Content, int64, error) {
	query := r.client.Collection("contents").Query

	if filter.Sport != "" {
		query = query.Where("sport", "==", filter.Sport)
	}
	if filter.ContentType != "" {
		query = query.Where("contentType", "==", filter.ContentType)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty", "==", filter.Difficulty)
	}
	if filter.SaleType != "" {
		query = query.Where("saleType", "==", filter.SaleType)
	}
	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status)
	}
	if filter.Visibility != "" {
		query = query.Where("visibility", "==", filter.Visibility)
	}
	if filter.SellerID != "" {
		query = query.Where("sellerId", "==", filter.SellerID)
	}
	if filter.MinPrice > 0 {
		query = query.Where("price", ">=", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price", "<=", filter.MaxPrice)
	}

	if sort != "" {
		parts := strings.Split(sort, "_")
		field := parts[0]
		order := firestore.Asc
		if len(parts) > 1 && parts[1] == "desc" {
			order = firestore.Desc
		}
		query = query.OrderBy(field, order)
	} else {
		query = query.OrderBy("createdAt", firestore.Desc)
	}

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count contents", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var contents []*entity.Content

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate contents", err)
		}

		var content entity.Content
		if err := doc.DataTo(&content); err != nil {
			return nil, 0, errors.Internal("Failed to parse content data", err)
		}
		contents = append(contents, &content)
	}

	return contents, total, nil
}

func (r *firestoreContentRepository) ListBySellerID(ctx context.Context, sellerID string, status string, limit, offset int) ([]*entity.Content, int64, error) {
	filter := repository.ContentFilter{SellerID: sellerID, Status: status}
	return r.List(ctx, filter, "", limit, offset)
}

func (r *firestoreContentRepository) Count(ctx context.Context) (int64, error) {
	docs, err := r.client.Collection("contents").Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count contents", err)
	}
	return int64(len(docs)), nil
}
