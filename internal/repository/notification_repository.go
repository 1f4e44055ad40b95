package repository

import (
	"context"
	"encoding/json"

	"github.com/placementhub/placement-portal/internal/database"
	"github.com/placementhub/placement-portal/internal/domain/placement"

	"github.com/google/uuid"
)

type NotificationFilter struct {
	UserID     uuid.UUID
	UnreadOnly bool
}

type NotificationRepository interface {
	Insert(ctx context.Context, n placement.Notification) (uuid.UUID, error)
	List(ctx context.Context, f NotificationFilter) ([]placement.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (placement.Notification, bool, error)
}

type DocumentNotificationRepository struct {
	store database.DocumentStore
}

func NewDocumentNotificationRepository(store database.DocumentStore) *DocumentNotificationRepository {
	return &DocumentNotificationRepository{store: store}
}

func (r *DocumentNotificationRepository) Insert(ctx context.Context, n placement.Notification) (uuid.UUID, error) {
	return r.store.Insert(ctx, database.CollectionNotifications, n)
}

func (r *DocumentNotificationRepository) List(ctx context.Context, f NotificationFilter) ([]placement.Notification, error) {
	filter := database.Filter{"user_id": f.UserID.String()}
	if f.UnreadOnly {
		filter["read"] = false
	}

	raws, err := r.store.FindMany(ctx, database.CollectionNotifications, filter)
	if err != nil {
		return nil, err
	}

	out := make([]placement.Notification, 0, len(raws))
	for _, raw := range raws {
		var n placement.Notification
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func (r *DocumentNotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.store.UpdateOne(ctx, database.CollectionNotifications, id, database.Fields{"read": true})
}

func (r *DocumentNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (placement.Notification, bool, error) {
	raw, found, err := r.store.FindOne(ctx, database.CollectionNotifications, database.Filter{"id": id.String()})
	if err != nil || !found {
		return placement.Notification{}, false, err
	}
	var n placement.Notification
	if err := json.Unmarshal(raw, &n); err != nil {
		return placement.Notification{}, false, err
	}
	return n, true, nil
}
