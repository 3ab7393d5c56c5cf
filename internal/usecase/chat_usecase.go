package usecase

import (
	"context"
	"time"

	"playvault/internal/domain/entity"
	"playvault/internal/domain/repository"
	"playvault/pkg/errors"
)

type ChatUseCase struct {
	chatRepo repository.ChatRepository
	userRepo repository.UserRepository
	pusher   Pusher
}

func NewChatUseCase(chatRepo repository.ChatRepository, userRepo repository.UserRepository, pusher Pusher) *ChatUseCase {
	return &ChatUseCase{
		chatRepo: chatRepo,
		userRepo: userRepo,
		pusher:   pusher,
	}
}

type StartConversationInput struct {
	RecipientID    string
	Subject        string
	RelatedContent string
	RelatedRequest string
	Body           string
}

func (uc *ChatUseCase) StartConversation(ctx context.Context, senderID string, input StartConversationInput) (*entity.Conversation, error) {
	if input.RecipientID == senderID {
		return nil, errors.BadRequest("You cannot message yourself", nil)
	}

	if _, err := uc.userRepo.GetByID(ctx, input.RecipientID); err != nil {
		return nil, err
	}

	conversation := &entity.Conversation{
		Participants:   []string{senderID, input.RecipientID},
		Subject:        input.Subject,
		RelatedContent: input.RelatedContent,
		RelatedRequest: input.RelatedRequest,
	}

	if err := uc.chatRepo.CreateConversation(ctx, conversation); err != nil {
		return nil, err
	}

	if input.Body != "" {
		if _, err := uc.SendMessage(ctx, senderID, conversation.ID, input.Body, nil); err != nil {
			return nil, err
		}
	}

	return conversation, nil
}

func (uc *ChatUseCase) SendMessage(ctx context.Context, senderID, conversationID, body string, attachments []entity.Attachment) (*entity.Message, error) {
	conversation, err := uc.chatRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	if !isParticipant(conversation, senderID) {
		return nil, errors.Forbidden("You are not part of this conversation", nil)
	}

	message := &entity.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Body:           body,
		Attachments:    attachments,
		ReadBy: []entity.ReadReceipt{
			{UserID: senderID, ReadAt: time.Now()},
		},
	}

	if err := uc.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	conversation.LastMessageID = message.ID
	if err := uc.chatRepo.UpdateConversation(ctx, conversation); err != nil {
		return nil, err
	}

	if uc.pusher != nil {
		for _, participant := range conversation.Participants {
			if participant != senderID {
				uc.pusher.PushEvent(participant, "message", message)
			}
		}
	}

	return message, nil
}

func (uc *ChatUseCase) GetConversation(ctx context.Context, callerID, conversationID string) (*entity.Conversation, error) {
	conversation, err := uc.chatRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	if !isParticipant(conversation, callerID) {
		return nil, errors.Forbidden("You are not part of this conversation", nil)
	}

	return conversation, nil
}

func (uc *ChatUseCase) ListConversations(ctx context.Context, userID string, limit, offset int) ([]*entity.Conversation, int64, error) {
	return uc.chatRepo.ListConversationsByUser(ctx, userID, limit, offset)
}

func (uc *ChatUseCase) ListMessages(ctx context.Context, callerID, conversationID string, limit, offset int) ([]*entity.Message, int64, error) {
	conversation, err := uc.chatRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, 0, err
	}

	if !isParticipant(conversation, callerID) {
		return nil, 0, errors.Forbidden("You are not part of this conversation", nil)
	}

	return uc.chatRepo.ListMessages(ctx, conversationID, limit, offset)
}

func (uc *ChatUseCase) MarkRead(ctx context.Context, callerID, conversationID string) error {
	conversation, err := uc.chatRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return err
	}

	if !isParticipant(conversation, callerID) {
		return errors.Forbidden("You are not part of this conversation", nil)
	}

	return uc.chatRepo.MarkMessagesRead(ctx, conversationID, callerID)
}

func isParticipant(conversation *entity.Conversation, userID string) bool {
	for _, p := range conversation.Participants {
		if p == userID {
			return true
		}
	}
	return false
}
