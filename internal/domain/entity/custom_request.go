package entity

import (
	"time"
)

const (
	RequestStatusPending   = "Pending"
	RequestStatusAccepted  = "Accepted"
	RequestStatusRejected  = "Rejected"
	RequestStatusCompleted = "Completed"
	RequestStatusCancelled = "Cancelled"
)

type SellerResponse struct {
	Accepted              bool       `json:"accepted" firestore:"accepted"`
	Price                 float64    `json:"price" firestore:"price"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date,omitempty" firestore:"estimatedDeliveryDate,omitempty"`
	Message               string     `json:"message,omitempty" firestore:"message,omitempty"`
	ResponseDate          time.Time  `json:"response_date" firestore:"responseDate"`
}

type CustomRequest struct {
	ID                    string          `json:"id" firestore:"id"`
	BuyerID               string          `json:"buyer_id" firestore:"buyerId"`
	SellerID              string          `json:"seller_id" firestore:"sellerId"`
	Title                 string          `json:"title" firestore:"title"`
	Description           string          `json:"description" firestore:"description"`
	Sport                 string          `json:"sport" firestore:"sport"`
	ContentType           string          `json:"content_type" firestore:"contentType"`
	RequestedDeliveryDate *time.Time      `json:"requested_delivery_date,omitempty" firestore:"requestedDeliveryDate,omitempty"`
	Budget                float64         `json:"budget" firestore:"budget"`
	Status                string          `json:"status" firestore:"status"`
	SellerResponse        *SellerResponse `json:"seller_response,omitempty" firestore:"sellerResponse,omitempty"`
	ContentID             string          `json:"content_id,omitempty" firestore:"contentId,omitempty"`
	OrderID               string          `json:"order_id,omitempty" firestore:"orderId,omitempty"`
	CreatedAt             time.Time       `json:"created_at" firestore:"createdAt"`
	UpdatedAt             time.Time       `json:"updated_at" firestore:"updatedAt"`
}
