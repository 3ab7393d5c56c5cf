package entity

import (
	"time"
)

const (
	PageStatusDraft     = "Draft"
	PageStatusPublished = "Published"
)

type CmsPage struct {
	ID              string    `json:"id" firestore:"id"`
	Title           string    `json:"title" firestore:"title"`
	Slug            string    `json:"slug" firestore:"slug"`
	Content         string    `json:"content" firestore:"content"`
	MetaTitle       string    `json:"meta_title,omitempty" firestore:"metaTitle,omitempty"`
	MetaDescription string    `json:"meta_description,omitempty" firestore:"metaDescription,omitempty"`
	Status          string    `json:"status" firestore:"status"`
	CreatedBy       string    `json:"created_by" firestore:"createdBy"`
	UpdatedBy       string    `json:"updated_by,omitempty" firestore:"updatedBy,omitempty"`
	CreatedAt       time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt       time.Time `json:"updated_at" firestore:"updatedAt"`
}
