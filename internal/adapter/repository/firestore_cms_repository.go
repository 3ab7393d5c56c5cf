package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"playvault/internal/domain/entity"
	"playvault/internal/domain/repository"
	"playvault/pkg/errors"
)

type firestoreCmsRepository struct {
	client *firestore.Client
}

func NewFirestoreCmsRepository(client *firestore.Client) repository.CmsRepository {
	return &firestoreCmsRepository{
		client: client,
	}
}

func (r *firestoreCmsRepository) Create(ctx context.Context, page *entity.CmsPage) error {
	if page.ID == "" {
		page.ID = uuid.New().String()
	}

	now := time.Now()
	if page.CreatedAt.IsZero() {
		page.CreatedAt = now
	}
	page.UpdatedAt = now

	_, err := r.client.Collection("cms_pages").Doc(page.ID).Set(ctx, page)
	if err != nil {
		return errors.Internal("Failed to create page", err)
	}

	return nil
}

func (r *firestoreCmsRepository) GetByID(ctx context.Context, id string) (*entity.CmsPage, error) {
	doc, err := r.client.Collection("cms_pages").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Page", err)
		}
		return nil, errors.Internal("Failed to get page", err)
	}

	var page entity.CmsPage
	if err := doc.DataTo(&page); err != nil {
		return nil, errors.Internal("Failed to parse page data", err)
	}

	return &page, nil
}

func (r *firestoreCmsRepository) GetBySlug(ctx context.Context, slug string) (*entity.CmsPage, error) {
	query := r.client.Collection("cms_pages").Where("slug", "==", slug).Limit(1)

	doc, err := query.Documents(ctx).Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Page", nil)
		}
		return nil, errors.Internal("Failed to query page", err)
	}

	var page entity.CmsPage
	if err := doc.DataTo(&page); err != nil {
		return nil, errors.Internal("Failed to parse page data", err)
	}

	return &page, nil
}

func (r *firestoreCmsRepository) Update(ctx context.Context, page *entity.CmsPage) error {
	page.UpdatedAt = time.Now()

	_, err := r.client.Collection("cms_pages").Doc(page.ID).Set(ctx, page)
	if err != nil {
		return errors.Internal("Failed to update page", err)
	}

	return nil
}

func (r *firestoreCmsRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("cms_pages").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete page", err)
	}

	return nil
}

func (r *firestoreCmsRepository) List(ctx context.Context, status string, limit, offset int) ([]*entity.CmsPage, int64, error) {
	query := r.client.Collection("cms_pages").Query
	if status != "" {
		query = query.Where("status", "==", status)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count pages", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var pages []*entity.CmsPage

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate pages", err)
		}

		var page entity.CmsPage
		if err := doc.DataTo(&page); err != nil {
			return nil, 0, errors.Internal("Failed to parse page data", err)
		}
		pages = append(pages, &page)
	}

	return pages, total, nil
}
