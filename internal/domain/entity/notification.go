package entity

import (
	"time"
)

const (
	NotificationTypeOrder         = "order"
	NotificationTypeBid           = "bid"
	NotificationTypeCustomRequest = "custom_request"
	NotificationTypePayment       = "payment"
	NotificationTypeAccount       = "account"
	NotificationTypeSystem        = "system"
)

type Notification struct {
	ID           string    `json:"id" firestore:"id"`
	UserID       string    `json:"user_id" firestore:"userId"`
	Title        string    `json:"title" firestore:"title"`
	Message      string    `json:"message" firestore:"message"`
	Type         string    `json:"type" firestore:"type"`
	IsRead       bool      `json:"is_read" firestore:"isRead"`
	RelatedID    string    `json:"related_id,omitempty" firestore:"relatedId,omitempty"`
	RelatedModel string    `json:"related_model,omitempty" firestore:"relatedModel,omitempty"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
}
