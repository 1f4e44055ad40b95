package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/placementhub/placement-portal/internal/database/memory"
	"github.com/placementhub/placement-portal/internal/repository"

	"github.com/google/uuid"
)

func newNotificationFixture(t *testing.T) *Notification {
	t.Helper()
	return NewNotificationUsecase(repository.NewDocumentNotificationRepository(memory.NewStore()))
}

func TestNotificationLifecycle(t *testing.T) {
	uc := newNotificationFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	first, err := uc.Create(ctx, userID, "application approved")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := uc.Create(ctx, userID, "interview scheduled"); err != nil {
		t.Fatalf("create second: %v", err)
	}
	if _, err := uc.Create(ctx, uuid.New(), "unrelated"); err != nil {
		t.Fatalf("create for other user: %v", err)
	}

	unread, err := uc.List(ctx, repository.NotificationFilter{UserID: userID, UnreadOnly: true})
	if err != nil {
		t.Fatalf("list unread: %v", err)
	}
	if len(unread) != 2 {
		t.Fatalf("expected 2 unread for user, got %d", len(unread))
	}

	read, err := uc.MarkRead(ctx, first)
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if !read.Read {
		t.Fatalf("expected read flag set")
	}
	if read.Message != "application approved" {
		t.Fatalf("unexpected message %q", read.Message)
	}

	unread, err = uc.List(ctx, repository.NotificationFilter{UserID: userID, UnreadOnly: true})
	if err != nil {
		t.Fatalf("list unread: %v", err)
	}
	if len(unread) != 1 {
		t.Fatalf("expected 1 unread after mark, got %d", len(unread))
	}

	all, err := uc.List(ctx, repository.NotificationFilter{UserID: userID})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 total for user, got %d", len(all))
	}
}

func TestMarkRead_NotFound(t *testing.T) {
	uc := newNotificationFixture(t)

	if _, err := uc.MarkRead(context.Background(), uuid.New()); !errors.Is(err, ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound, got %v", err)
	}
}
