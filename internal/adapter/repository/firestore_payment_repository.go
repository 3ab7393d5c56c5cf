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

type firestorePaymentRepository struct {
	client *firestore.Client
}

func NewFirestorePaymentRepository(client *firestore.Client) repository.PaymentRepository {
	return &firestorePaymentRepository{
		client: client,
	}
}

// CreateIfAbsent keys the document by the payment intent ID and performs the
// existence check and the insert in one transaction. At-least-once webhook
// delivery therefore settles an intent exactly once.
func (r *firestorePaymentRepository) CreateIfAbsent(ctx context.Context, payment *entity.Payment) (*entity.Payment, bool, error) {
	if payment.PaymentIntentID == "" {
		return nil, false, errors.BadRequest("Payment intent ID is required", nil)
	}

	payment.ID = payment.PaymentIntentID
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now()
	}

	ref := r.client.Collection("payments").Doc(payment.ID)
	created := false
	var stored entity.Payment

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return errors.Internal("Failed to check payment existence", err)
		}

		if err == nil {
			if err := doc.DataTo(&stored); err != nil {
				return errors.Internal("Failed to parse payment data", err)
			}
			created = false
			return nil
		}

		if err := tx.Set(ref, payment); err != nil {
			return errors.Internal("Failed to create payment", err)
		}
		stored = *payment
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return &stored, created, nil
}

func (r *firestorePaymentRepository) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	doc, err := r.client.Collection("payments").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Payment", err)
		}
		return nil, errors.Internal("Failed to get payment", err)
	}

	var payment entity.Payment
	if err := doc.DataTo(&payment); err != nil {
		return nil, errors.Internal("Failed to parse payment data", err)
	}

	return &payment, nil
}

func (r *firestorePaymentRepository) GetByIntentID(ctx context.Context, paymentIntentID string) (*entity.Payment, error) {
	// Document IDs equal intent IDs, so this is a point read.
	return r.GetByID(ctx, paymentIntentID)
}

func (r *firestorePaymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	_, err := r.client.Collection("payments").Doc(payment.ID).Set(ctx, payment)
	if err != nil {
		return errors.Internal("Failed to update payment", err)
	}

	return nil
}

func (r *firestorePaymentRepository) ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Payment, int64, error) {
	query := r.client.Collection("payments").
		Where("buyerId", "==", buyerID).
		OrderBy("createdAt", firestore.Desc)

	return r.collectPaged(ctx, query, limit, offset)
}

func (r *firestorePaymentRepository) ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Payment, int64, error) {
	query := r.client.Collection("payments").
		Where("sellerId", "==", sellerID).
		OrderBy("createdAt", firestore.Desc)

	return r.collectPaged(ctx, query, limit, offset)
}

func (r *firestorePaymentRepository) List(ctx context.Context, limit, offset int) ([]*entity.Payment, int64, error) {
	query := r.client.Collection("payments").Query.OrderBy("createdAt", firestore.Desc)
	return r.collectPaged(ctx, query, limit, offset)
}

func (r *firestorePaymentRepository) collectPaged(ctx context.Context, query firestore.Query, limit, offset int) ([]*entity.Payment, int64, error) {
	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count payments", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var payments []*entity.Payment

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate payments", err)
		}

		var payment entity.Payment
		if err := doc.DataTo(&payment); err != nil {
			return nil, 0, errors.Internal("Failed to parse payment data", err)
		}
		payments = append(payments, &payment)
	}

	return payments, total, nil
}
