package entity

import (
	"time"
)

type Conversation struct {
	ID             string    `json:"id" firestore:"id"`
	Participants   []string  `json:"participants" firestore:"participants"`
	Subject        string    `json:"subject,omitempty" firestore:"subject,omitempty"`
	RelatedContent string    `json:"related_content,omitempty" firestore:"relatedContent,omitempty"`
	RelatedRequest string    `json:"related_request,omitempty" firestore:"relatedRequest,omitempty"`
	LastMessageID  string    `json:"last_message_id,omitempty" firestore:"lastMessageId,omitempty"`
	IsArchived     bool      `json:"is_archived" firestore:"isArchived"`
	CreatedAt      time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt      time.Time `json:"updated_at" firestore:"updatedAt"`
}

type Attachment struct {
	FileName string `json:"file_name" firestore:"fileName"`
	FileURL  string `json:"file_url" firestore:"fileUrl"`
	FileType string `json:"file_type" firestore:"fileType"`
	FileSize int64  `json:"file_size" firestore:"fileSize"`
}

type ReadReceipt struct {
	UserID string    `json:"user_id" firestore:"userId"`
	ReadAt time.Time `json:"read_at" firestore:"readAt"`
}

type Message struct {
	ID             string        `json:"id" firestore:"id"`
	ConversationID string        `json:"conversation_id" firestore:"conversationId"`
	SenderID       string        `json:"sender_id" firestore:"senderId"`
	Body           string        `json:"body" firestore:"body"`
	Attachments    []Attachment  `json:"attachments,omitempty" firestore:"attachments,omitempty"`
	ReadBy         []ReadReceipt `json:"read_by,omitempty" firestore:"readBy,omitempty"`
	CreatedAt      time.Time     `json:"created_at" firestore:"createdAt"`
}
