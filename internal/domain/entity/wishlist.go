package entity

import (
	"time"
)

type WishlistItem struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	ContentID string    `json:"content_id" firestore:"contentId"`
	Notes     string    `json:"notes,omitempty" firestore:"notes,omitempty"`
	AddedAt   time.Time `json:"added_at" firestore:"addedAt"`
}
