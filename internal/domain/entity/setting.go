package entity

import (
	"time"
)

// Well-known setting keys.
const (
	SettingCommissionPct = "payment.commission_percentage"
)

type Setting struct {
	ID          string      `json:"id" firestore:"id"`
	Key         string      `json:"key" firestore:"key"`
	Value       interface{} `json:"value" firestore:"value"`
	Group       string      `json:"group" firestore:"group"`
	IsPublic    bool        `json:"is_public" firestore:"isPublic"`
	Description string      `json:"description,omitempty" firestore:"description,omitempty"`
	UpdatedBy   string      `json:"updated_by,omitempty" firestore:"updatedBy,omitempty"`
	CreatedAt   time.Time   `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time   `json:"updated_at" firestore:"updatedAt"`
}
