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

type firestoreBidRepository struct {
	client *firestore.Client
}

func NewFirestoreBidRepository(client *firestore.Client) repository.BidRepository {
	return &firestoreBidRepository{
		client: client,
	}
}

// PlaceBid runs the read-modify-write of the highest Active bid inside a
// Firestore transaction. Two concurrent placements on the same content are
// serialized by the store, so both cannot pass the increment floor against
// the same prior highest bid.
func (r *firestoreBidRepository) PlaceBid(ctx context.Context, input repository.PlaceBidInput) (*entity.Bid, *entity.Bid, error) {
	bids := r.client.Collection("bids")
	var placed, outbid *entity.Bid

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		highestQuery := bids.
			Where("contentId", "==", input.ContentID).
			Where("status", "==", entity.BidStatusActive).
			OrderBy("amount", firestore.Desc).
			Limit(1)

		var highest *entity.Bid
		var highestRef *firestore.DocumentRef
		doc, err := tx.Documents(highestQuery).Next()
		if err != nil && err != iterator.Done {
			return errors.Internal("Failed to query highest bid", err)
		}
		if err == nil {
			var b entity.Bid
			if err := doc.DataTo(&b); err != nil {
				return errors.Internal("Failed to parse bid data", err)
			}
			highest = &b
			highestRef = doc.Ref
		}

		if highest != nil && input.Amount < highest.Amount+input.MinIncrement {
			return errors.InvalidState("Bid amount is below the current highest bid plus the minimum increment", nil)
		}

		existingQuery := bids.
			Where("contentId", "==", input.ContentID).
			Where("bidderId", "==", input.BidderID).
			Where("status", "==", entity.BidStatusActive).
			Limit(1)

		var existing *entity.Bid
		var existingRef *firestore.DocumentRef
		doc, err = tx.Documents(existingQuery).Next()
		if err != nil && err != iterator.Done {
			return errors.Internal("Failed to query existing bid", err)
		}
		if err == nil {
			var b entity.Bid
			if err := doc.DataTo(&b); err != nil {
				return errors.Internal("Failed to parse bid data", err)
			}
			existing = &b
			existingRef = doc.Ref
		}

		now := time.Now()
		maxAuto := input.MaxAutoBidAmount
		if maxAuto == 0 {
			maxAuto = input.Amount
		}

		if existing != nil {
			// The bidder already holds the Active bid on this content:
			// update it in place instead of creating a duplicate.
			existing.Amount = input.Amount
			existing.IsAutoBid = input.IsAutoBid
			existing.MaxAutoBidAmount = maxAuto
			existing.UpdatedAt = now
			if err := tx.Set(existingRef, existing); err != nil {
				return errors.Internal("Failed to update bid", err)
			}
			placed = existing
		} else {
			ref := bids.NewDoc()
			bid := &entity.Bid{
				ID:               ref.ID,
				ContentID:        input.ContentID,
				BidderID:         input.BidderID,
				Amount:           input.Amount,
				Status:           entity.BidStatusActive,
				IsAutoBid:        input.IsAutoBid,
				MaxAutoBidAmount: maxAuto,
				CreatedAt:        now,
				UpdatedAt:        now,
			}
			if err := tx.Set(ref, bid); err != nil {
				return errors.Internal("Failed to create bid", err)
			}
			placed = bid
		}

		if highest != nil && highest.ID != placed.ID {
			if err := tx.Update(highestRef, []firestore.Update{
				{Path: "status", Value: entity.BidStatusOutbid},
				{Path: "updatedAt", Value: now},
			}); err != nil {
				return errors.Internal("Failed to mark previous bid as outbid", err)
			}
			highest.Status = entity.BidStatusOutbid
			highest.UpdatedAt = now
			outbid = highest
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return placed, outbid, nil
}

func (r *firestoreBidRepository) GetByID(ctx context.Context, id string) (*entity.Bid, error) {
	doc, err := r.client.Collection("bids").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Bid", err)
		}
		return nil, errors.Internal("Failed to get bid", err)
	}

	var bid entity.Bid
	if err := doc.DataTo(&bid); err != nil {
		return nil, errors.Internal("Failed to parse bid data", err)
	}

	return &bid, nil
}

func (r *firestoreBidRepository) Update(ctx context.Context, bid *entity.Bid) error {
	bid.UpdatedAt = time.Now()

	_, err := r.client.Collection("bids").Doc(bid.ID).Set(ctx, bid)
	if err != nil {
		return errors.Internal("Failed to update bid", err)
	}

	return nil
}

func (r *firestoreBidRepository) ListActiveByContent(ctx context.Context, contentID string) ([]*entity.Bid, error) {
	query := r.client.Collection("bids").
		Where("contentId", "==", contentID).
		Where("status", "==", entity.BidStatusActive).
		OrderBy("amount", firestore.Desc)

	return r.collect(ctx, query)
}

func (r *firestoreBidRepository) ListByContent(ctx context.Context, contentID string) ([]*entity.Bid, error) {
	query := r.client.Collection("bids").
		Where("contentId", "==", contentID).
		OrderBy("amount", firestore.Desc)

	return r.collect(ctx, query)
}

func (r *firestoreBidRepository) ListByBidder(ctx context.Context, bidderID string, limit, offset int) ([]*entity.Bid, int64, error) {
	query := r.client.Collection("bids").
		Where("bidderId", "==", bidderID).
		OrderBy("createdAt", firestore.Desc)

	return r.collectPaged(ctx, query, limit, offset)
}

func (r *firestoreBidRepository) List(ctx context.Context, limit, offset int) ([]*entity.Bid, int64, error) {
	query := r.client.Collection("bids").Query.OrderBy("createdAt", firestore.Desc)
	return r.collectPaged(ctx, query, limit, offset)
}

func (r *firestoreBidRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Bid, error) {
	iter := query.Documents(ctx)
	var bids []*entity.Bid

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate bids", err)
		}

		var bid entity.Bid
		if err := doc.DataTo(&bid); err != nil {
			return nil, errors.Internal("Failed to parse bid data", err)
		}
		bids = append(bids, &bid)
	}

	return bids, nil
}

func (r *firestoreBidRepository) collectPaged(ctx context.Context, query firestore.Query, limit, offset int) ([]*entity.Bid, int64, error) {
	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count bids", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	bids, err := r.collect(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	return bids, total, nil
}
