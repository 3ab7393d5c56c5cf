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

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		doc := r.client.Collection("orders").NewDoc()
		order.ID = doc.ID
	}

	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	_, err := r.client.Collection("orders").Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Internal("Failed to create order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.client.Collection("orders").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to get order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}

	return &order, nil
}

func (r *firestoreOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	order.UpdatedAt = time.Now()

	_, err := r.client.Collection("orders").Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Internal("Failed to update order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Order, int64, error) {
	query := r.client.Collection("orders").
		Where("buyerId", "==", buyerID).
		OrderBy("createdAt", firestore.Desc)

	return r.collectPaged(ctx, query, limit, offset)
}

func (r *firestoreOrderRepository) ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Order, int64, error) {
	query := r.client.Collection("orders").
		Where("sellerId", "==", sellerID).
		OrderBy("createdAt", firestore.Desc)

	return r.collectPaged(ctx, query, limit, offset)
}

func (r *firestoreOrderRepository) List(ctx context.Context, limit, offset int) ([]*entity.Order, int64, error) {
	query := r.client.Collection("orders").Query.OrderBy("createdAt", firestore.Desc)
	return r.collectPaged(ctx, query, limit, offset)
}

func (r *firestoreOrderRepository) FindCompletedByBuyerAndContent(ctx context.Context, buyerID, contentID string) (*entity.Order, error) {
	query := r.client.Collection("orders").
		Where("buyerId", "==", buyerID).
		Where("contentId", "==", contentID).
		Where("status", "==", entity.OrderStatusCompleted).
		Limit(1)

	doc, err := query.Documents(ctx).Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Completed order for content", nil)
		}
		return nil, errors.Internal("Failed to query orders", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}

	return &order, nil
}

func (r *firestoreOrderRepository) Count(ctx context.Context) (int64, error) {
	docs, err := r.client.Collection("orders").Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count orders", err)
	}
	return int64(len(docs)), nil
}

func (r *firestoreOrderRepository) RevenueTotals(ctx context.Context) (float64, float64, error) {
	query := r.client.Collection("orders").
		Where("paymentStatus", "==", entity.PaymentStatusCompleted)

	iter := query.Documents(ctx)
	var gross, fees float64

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, 0, errors.Internal("Failed to iterate orders", err)
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return 0, 0, errors.Internal("Failed to parse order data", err)
		}
		gross += order.Amount
		fees += order.PlatformFee
	}

	return gross, fees, nil
}

func (r *firestoreOrderRepository) collectPaged(ctx context.Context, query firestore.Query, limit, offset int) ([]*entity.Order, int64, error) {
	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count orders", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var orders []*entity.Order

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate orders", err)
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, 0, errors.Internal("Failed to parse order data", err)
		}
		orders = append(orders, &order)
	}

	return orders, total, nil
}
