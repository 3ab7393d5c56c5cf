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

type firestoreCustomRequestRepository struct {
	client *firestore.Client
}

func NewFirestoreCustomRequestRepository(client *firestore.Client) repository.CustomRequestRepository {
	return &firestoreCustomRequestRepository{
		client: client,
	}
}

func (r *firestoreCustomRequestRepository) Create(ctx context.Context, request *entity.CustomRequest) error {
	if request.ID == "" {
		doc := r.client.Collection("custom_requests").NewDoc()
		request.ID = doc.ID
	}

	now := time.Now()
	if request.CreatedAt.IsZero() {
		request.CreatedAt = now
	}
	request.UpdatedAt = now

	_, err := r.client.Collection("custom_requests").Doc(request.ID).Set(ctx, request)
	if err != nil {
		return errors.Internal("Failed to create custom request", err)
	}

	return nil
}

func (r *firestoreCustomRequestRepository) GetByID(ctx context.Context, id string) (*entity.CustomRequest, error) {
	doc, err := r.client.Collection("custom_requests").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Custom request", err)
		}
		return nil, errors.Internal("Failed to get custom request", err)
	}

	var request entity.CustomRequest
	if err := doc.DataTo(&request); err != nil {
		return nil, errors.Internal("Failed to parse custom request data", err)
	}

	return &request, nil
}

func (r *firestoreCustomRequestRepository) Update(ctx context.Context, request *entity.CustomRequest) error {
	request.UpdatedAt = time.Now()

	_, err := r.client.Collection("custom_requests").Doc(request.ID).Set(ctx, request)
	if err != nil {
		return errors.Internal("Failed to update custom request", err)
	}

	return nil
}

func (r *firestoreCustomRequestRepository) ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.CustomRequest, int64, error) {
	query := r.client.Collection("custom_requests").
		Where("buyerId", "==", buyerID).
		OrderBy("createdAt", firestore.Desc)

	return r.collectPaged(ctx, query, limit, offset)
}

func (r *firestoreCustomRequestRepository) ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*entity.CustomRequest, int64, error) {
	query := r.client.Collection("custom_requests").
		Where("sellerId", "==", sellerID).
		OrderBy("createdAt", firestore.Desc)

	return r.collectPaged(ctx, query, limit, offset)
}

func (r *firestoreCustomRequestRepository) List(ctx context.Context, limit, offset int) ([]*entity.CustomRequest, int64, error) {
	query := r.client.Collection("custom_requests").Query.OrderBy("createdAt", firestore.Desc)
	return r.collectPaged(ctx, query, limit, offset)
}

func (r *firestoreCustomRequestRepository) collectPaged(ctx context.Context, query firestore.Query, limit, offset int) ([]*entity.CustomRequest, int64, error) {
	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count custom requests", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var requests []*entity.CustomRequest

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate custom requests", err)
		}

		var request entity.CustomRequest
		if err := doc.DataTo(&request); err != nil {
			return nil, 0, errors.Internal("Failed to parse custom request data", err)
		}
		requests = append(requests, &request)
	}

	return requests, total, nil
}
