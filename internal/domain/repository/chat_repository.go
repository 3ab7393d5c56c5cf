package repository

import (
	"context"

	"playvault/internal/domain/entity"
)

type ChatRepository interface {
	CreateConversation(ctx context.Context, conversation *entity.Conversation) error
	GetConversationByID(ctx context.Context, id string) (*entity.Conversation, error)
	UpdateConversation(ctx context.Context, conversation *entity.Conversation) error
	ListConversationsByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Conversation, int64, error)

	CreateMessage(ctx context.Context, message *entity.Message) error
	ListMessages(ctx context.Context, conversationID string, limit, offset int) ([]*entity.Message, int64, error)
	MarkMessagesRead(ctx context.Context, conversationID, userID string) error
}
