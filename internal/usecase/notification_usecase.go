package usecase

import (
	"context"

	"playvault/internal/domain/entity"
	"playvault/internal/domain/repository"
	"playvault/pkg/errors"
	"playvault/pkg/logger"
)

// Pusher delivers real-time events to connected users. The WebSocket
// manager satisfies it; a nil pusher disables push.
type Pusher interface {
	PushEvent(userID, eventType string, payload interface{})
}

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
	pusher           Pusher
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository, pusher Pusher) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
		pusher:           pusher,
	}
}

// Notify stores a notification and pushes it to the user when connected.
// It is best effort: callers treat notification failure as non-fatal, so
// errors are logged and swallowed here.
func (uc *NotificationUseCase) Notify(ctx context.Context, userID, title, message, notifType, relatedID, relatedModel string) {
	notification := &entity.Notification{
		UserID:       userID,
		Title:        title,
		Message:      message,
		Type:         notifType,
		RelatedID:    relatedID,
		RelatedModel: relatedModel,
	}

	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		logger.Error("Failed to create notification for user %s: %v", userID, err)
		return
	}

	if uc.pusher != nil {
		uc.pusher.PushEvent(userID, "notification", notification)
	}
}

func (uc *NotificationUseCase) ListNotifications(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]*entity.Notification, int64, error) {
	return uc.notificationRepo.ListByUser(ctx, userID, unreadOnly, limit, offset)
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, userID, notificationID string) (*entity.Notification, error) {
	notification, err := uc.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}

	if notification.UserID != userID {
		return nil, errors.Forbidden("You can only update your own notifications", nil)
	}

	if notification.IsRead {
		return notification, nil
	}

	notification.IsRead = true
	if err := uc.notificationRepo.Update(ctx, notification); err != nil {
		return nil, err
	}

	return notification, nil
}

func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) error {
	return uc.notificationRepo.MarkAllRead(ctx, userID)
}
