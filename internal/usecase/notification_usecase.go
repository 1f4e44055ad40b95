package usecase

import (
	"context"

	"github.com/placementhub/placement-portal/internal/domain/placement"
	"github.com/placementhub/placement-portal/internal/repository"

	"github.com/google/uuid"
)

type NotificationUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, message string) (uuid.UUID, error)
	List(ctx context.Context, f repository.NotificationFilter) ([]placement.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) (placement.Notification, error)
}

type Notification struct {
	notifications repository.NotificationRepository
}

func NewNotificationUsecase(notifications repository.NotificationRepository) *Notification {
	return &Notification{notifications: notifications}
}

func (u *Notification) Create(ctx context.Context, userID uuid.UUID, message string) (uuid.UUID, error) {
	id, err := u.notifications.Insert(ctx, placement.Notification{
		UserID:  userID,
		Message: message,
		Read:    false,
	})
	if err != nil {
		return uuid.Nil, ErrInternal
	}
	return id, nil
}

func (u *Notification) List(ctx context.Context, f repository.NotificationFilter) ([]placement.Notification, error) {
	out, err := u.notifications.List(ctx, f)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Notification) MarkRead(ctx context.Context, id uuid.UUID) (placement.Notification, error) {
	matched, err := u.notifications.MarkRead(ctx, id)
	if err != nil {
		return placement.Notification{}, ErrInternal
	}
	if matched == 0 {
		return placement.Notification{}, ErrNotificationNotFound
	}

	n, found, err := u.notifications.FindByID(ctx, id)
	if err != nil {
		return placement.Notification{}, ErrInternal
	}
	if !found {
		return placement.Notification{}, ErrNotificationNotFound
	}
	return n, nil
}
