package entity

import (
	"time"
)

const (
	PayoutStatusPending    = "Pending"
	PayoutStatusProcessing = "Processing"
	PayoutStatusCompleted  = "Completed"
	PayoutStatusFailed     = "Failed"
)

// Payment records a settled charge for an order. The document ID equals the
// provider payment intent ID, which makes repeated webhook deliveries for
// the same intent collapse onto one record.
type Payment struct {
	ID              string     `json:"id" firestore:"id"`
	OrderID         string     `json:"order_id" firestore:"orderId"`
	BuyerID         string     `json:"buyer_id" firestore:"buyerId"`
	SellerID        string     `json:"seller_id" firestore:"sellerId"`
	Amount          float64    `json:"amount" firestore:"amount"`
	PlatformFee     float64    `json:"platform_fee" firestore:"platformFee"`
	SellerEarnings  float64    `json:"seller_earnings" firestore:"sellerEarnings"`
	PaymentMethod   string     `json:"payment_method" firestore:"paymentMethod"`
	PaymentIntentID string     `json:"payment_intent_id" firestore:"paymentIntentId"`
	Status          string     `json:"status" firestore:"status"`
	PayoutStatus    string     `json:"payout_status" firestore:"payoutStatus"`
	PayoutID        string     `json:"payout_id,omitempty" firestore:"payoutId,omitempty"`
	PayoutDate      *time.Time `json:"payout_date,omitempty" firestore:"payoutDate,omitempty"`
	RefundID        string     `json:"refund_id,omitempty" firestore:"refundId,omitempty"`
	RefundDate      *time.Time `json:"refund_date,omitempty" firestore:"refundDate,omitempty"`
	RefundAmount    float64    `json:"refund_amount,omitempty" firestore:"refundAmount,omitempty"`
	CreatedAt       time.Time  `json:"created_at" firestore:"createdAt"`
}
