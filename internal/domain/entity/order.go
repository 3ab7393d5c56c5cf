package entity

import (
	"time"
)

const (
	OrderTypeFixed   = "Fixed"
	OrderTypeAuction = "Auction"
	OrderTypeCustom  = "Custom"

	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusCompleted  = "Completed"
	OrderStatusCancelled  = "Cancelled"
	OrderStatusRefunded   = "Refunded"

	PaymentStatusPending   = "Pending"
	PaymentStatusCompleted = "Completed"
	PaymentStatusFailed    = "Failed"
	PaymentStatusRefunded  = "Refunded"
)

type Order struct {
	ID              string     `json:"id" firestore:"id"`
	BuyerID         string     `json:"buyer_id" firestore:"buyerId"`
	SellerID        string     `json:"seller_id" firestore:"sellerId"`
	ContentID       string     `json:"content_id" firestore:"contentId"`
	OrderType       string     `json:"order_type" firestore:"orderType"`
	Amount          float64    `json:"amount" firestore:"amount"`
	PlatformFee     float64    `json:"platform_fee" firestore:"platformFee"`
	SellerEarnings  float64    `json:"seller_earnings" firestore:"sellerEarnings"`
	PaymentStatus   string     `json:"payment_status" firestore:"paymentStatus"`
	PaymentIntentID string     `json:"payment_intent_id,omitempty" firestore:"paymentIntentId,omitempty"`
	PaymentMethod   string     `json:"payment_method,omitempty" firestore:"paymentMethod,omitempty"`
	InvoiceURL      string     `json:"invoice_url,omitempty" firestore:"invoiceUrl,omitempty"`
	BidID           string     `json:"bid_id,omitempty" firestore:"bidId,omitempty"`
	CustomRequestID string     `json:"custom_request_id,omitempty" firestore:"customRequestId,omitempty"`
	Status          string     `json:"status" firestore:"status"`
	DownloadCount   int        `json:"download_count" firestore:"downloadCount"`
	LastDownloaded  *time.Time `json:"last_downloaded,omitempty" firestore:"lastDownloaded,omitempty"`
	CreatedAt       time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt       time.Time  `json:"updated_at" firestore:"updatedAt"`
}
