package entity

import (
	"time"
)

// Review is unique per (content, user) and requires a completed order for
// that pair. The qualifying order is kept as a backreference.
type Review struct {
	ID                 string    `json:"id" firestore:"id"`
	ContentID          string    `json:"content_id" firestore:"contentId"`
	UserID             string    `json:"user_id" firestore:"userId"`
	Rating             int       `json:"rating" firestore:"rating"` // 1-5
	Title              string    `json:"title,omitempty" firestore:"title,omitempty"`
	Text               string    `json:"text" firestore:"text"`
	IsVerifiedPurchase bool      `json:"is_verified_purchase" firestore:"isVerifiedPurchase"`
	OrderID            string    `json:"order_id,omitempty" firestore:"orderId,omitempty"`
	CreatedAt          time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt          time.Time `json:"updated_at" firestore:"updatedAt"`
}
