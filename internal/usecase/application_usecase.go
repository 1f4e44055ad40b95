package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/placementhub/placement-portal/internal/database"
	"github.com/placementhub/placement-portal/internal/domain/placement"
	"github.com/placementhub/placement-portal/internal/repository"

	"github.com/google/uuid"
)

// ApplicationPatch carries a partial update. Nil fields are left unchanged;
// there is no way to clear a field, matching the write-only merge the
// storage layer performs.
type ApplicationPatch struct {
	Status            *string
	MentorID          *uuid.UUID
	InterviewDatetime *time.Time
	InterviewLocation *string
	Feedback          *string
}

type ApplicationUsecase interface {
	Create(ctx context.Context, studentID, openingID uuid.UUID) (placement.Application, error)
	List(ctx context.Context, f repository.ApplicationFilter) ([]placement.Application, error)
	Transition(ctx context.Context, id uuid.UUID, patch ApplicationPatch) (placement.Application, error)
}

type Application struct {
	apps        repository.ApplicationRepository
	certBaseURL string
	now         func() time.Time
}

func NewApplicationUsecase(apps repository.ApplicationRepository, certBaseURL string) *Application {
	return &Application{apps: apps, certBaseURL: certBaseURL, now: time.Now}
}

// Create inserts a new application in the applied state. The duplicate
// check runs first; a concurrent create racing past it is caught by the
// storage uniqueness constraint and surfaces as the same conflict.
func (u *Application) Create(ctx context.Context, studentID, openingID uuid.UUID) (placement.Application, error) {
	if studentID == uuid.Nil || openingID == uuid.Nil {
		return placement.Application{}, fmt.Errorf("%w: student and opening are required", ErrValidation)
	}

	_, exists, err := u.apps.FindByStudentAndOpening(ctx, studentID, openingID)
	if err != nil {
		return placement.Application{}, ErrInternal
	}
	if exists {
		return placement.Application{}, ErrDuplicateApplication
	}

	now := u.now().UTC()
	app := placement.Application{
		StudentID: studentID,
		OpeningID: openingID,
		Status:    placement.StatusApplied,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := u.apps.Insert(ctx, app)
	if err != nil {
		if errors.Is(err, database.ErrConflict) {
			return placement.Application{}, ErrDuplicateApplication
		}
		return placement.Application{}, ErrInternal
	}

	app.ID = id
	return app, nil
}

func (u *Application) List(ctx context.Context, f repository.ApplicationFilter) ([]placement.Application, error) {
	out, err := u.apps.List(ctx, f)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// Transition applies a validated patch. A status change must follow the
// transition table; entering completed derives the certificate reference
// from the application identity in the same write as the updated_at stamp.
// The returned application is a fresh read, so callers always see the
// server-computed fields.
func (u *Application) Transition(ctx context.Context, id uuid.UUID, patch ApplicationPatch) (placement.Application, error) {
	if id == uuid.Nil {
		return placement.Application{}, ErrApplicationNotFound
	}

	current, found, err := u.apps.FindByID(ctx, id)
	if err != nil {
		return placement.Application{}, ErrInternal
	}
	if !found {
		return placement.Application{}, ErrApplicationNotFound
	}

	fields := database.Fields{}

	if patch.Status != nil {
		next, ok := placement.ParseStatus(*patch.Status)
		if !ok {
			return placement.Application{}, fmt.Errorf("%w: unknown status %q", ErrValidation, *patch.Status)
		}
		if !current.Status.CanTransitionTo(next) {
			return placement.Application{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, next)
		}
		fields["status"] = next
		if next == placement.StatusCompleted {
			fields["certificate_url"] = placement.CertificateURL(u.certBaseURL, current.ID)
		}
	}
	if patch.MentorID != nil {
		fields["mentor_id"] = patch.MentorID.String()
	}
	if patch.InterviewDatetime != nil {
		fields["interview_datetime"] = patch.InterviewDatetime.UTC()
	}
	if patch.InterviewLocation != nil {
		fields["interview_location"] = *patch.InterviewLocation
	}
	if patch.Feedback != nil {
		fields["feedback"] = *patch.Feedback
	}

	// Even an otherwise empty patch bumps the timestamp, like every other
	// mutation of the record.
	fields["updated_at"] = u.now().UTC()

	matched, err := u.apps.UpdateOne(ctx, id, fields)
	if err != nil {
		return placement.Application{}, ErrInternal
	}
	if matched == 0 {
		return placement.Application{}, ErrApplicationNotFound
	}

	updated, found, err := u.apps.FindByID(ctx, id)
	if err != nil {
		return placement.Application{}, ErrInternal
	}
	if !found {
		return placement.Application{}, ErrApplicationNotFound
	}
	return updated, nil
}
