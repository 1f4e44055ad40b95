package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/placementhub/placement-portal/internal/database/memory"
	"github.com/placementhub/placement-portal/internal/domain/placement"
	"github.com/placementhub/placement-portal/internal/repository"

	"github.com/google/uuid"
)

const testCertBaseURL = "https://certs.example.com"

func newApplicationFixture(t *testing.T) *Application {
	t.Helper()
	store := memory.NewStore().WithUniqueIndex("applications", "student_id", "opening_id")
	uc := NewApplicationUsecase(repository.NewDocumentApplicationRepository(store), testCertBaseURL)

	// Deterministic, strictly increasing clock so timestamp assertions
	// do not depend on wall-clock resolution.
	tick := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	return uc
}

func strPtr(s string) *string { return &s }

func TestCreateApplication(t *testing.T) {
	uc := newApplicationFixture(t)
	ctx := context.Background()

	studentID, openingID := uuid.New(), uuid.New()
	app, err := uc.Create(ctx, studentID, openingID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if app.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}
	if app.Status != placement.StatusApplied {
		t.Fatalf("expected applied, got %s", app.Status)
	}
	if !app.UpdatedAt.Equal(app.CreatedAt) {
		t.Fatalf("expected created_at == updated_at on create, got %s / %s", app.CreatedAt, app.UpdatedAt)
	}
	if app.CertificateURL != "" {
		t.Fatalf("unexpected certificate on fresh application: %q", app.CertificateURL)
	}
}

func TestCreateApplication_MissingIDs(t *testing.T) {
	uc := newApplicationFixture(t)
	ctx := context.Background()

	if _, err := uc.Create(ctx, uuid.Nil, uuid.New()); !errors.Is(err, ErrValidation) {
		t.Fatalf("nil student: expected ErrValidation, got %v", err)
	}
	if _, err := uc.Create(ctx, uuid.New(), uuid.Nil); !errors.Is(err, ErrValidation) {
		t.Fatalf("nil opening: expected ErrValidation, got %v", err)
	}
}

func TestCreateApplication_Duplicate(t *testing.T) {
	uc := newApplicationFixture(t)
	ctx := context.Background()

	studentID, openingID := uuid.New(), uuid.New()
	if _, err := uc.Create(ctx, studentID, openingID); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := uc.Create(ctx, studentID, openingID); !errors.Is(err, ErrDuplicateApplication) {
		t.Fatalf("second create: expected ErrDuplicateApplication, got %v", err)
	}

	apps, err := uc.List(ctx, repository.ApplicationFilter{StudentID: &studentID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("expected exactly one stored application, got %d", len(apps))
	}

	// The same student may apply elsewhere, and another student here.
	if _, err := uc.Create(ctx, studentID, uuid.New()); err != nil {
		t.Fatalf("different opening: %v", err)
	}
	if _, err := uc.Create(ctx, uuid.New(), openingID); err != nil {
		t.Fatalf("different student: %v", err)
	}
}

func TestListApplications_Filtered(t *testing.T) {
	uc := newApplicationFixture(t)
	ctx := context.Background()

	s1, s2 := uuid.New(), uuid.New()
	o1, o2 := uuid.New(), uuid.New()
	for _, pair := range [][2]uuid.UUID{{s1, o1}, {s1, o2}, {s2, o1}} {
		if _, err := uc.Create(ctx, pair[0], pair[1]); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	byStudent, err := uc.List(ctx, repository.ApplicationFilter{StudentID: &s1})
	if err != nil {
		t.Fatalf("list by student: %v", err)
	}
	if len(byStudent) != 2 {
		t.Fatalf("student filter: expected 2, got %d", len(byStudent))
	}

	byBoth, err := uc.List(ctx, repository.ApplicationFilter{StudentID: &s1, OpeningID: &o2})
	if err != nil {
		t.Fatalf("list by pair: %v", err)
	}
	if len(byBoth) != 1 {
		t.Fatalf("pair filter: expected 1, got %d", len(byBoth))
	}

	all, err := uc.List(ctx, repository.ApplicationFilter{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("empty filter: expected 3, got %d", len(all))
	}
}

func TestTransition_NotFound(t *testing.T) {
	uc := newApplicationFixture(t)
	ctx := context.Background()

	if _, err := uc.Transition(ctx, uuid.New(), ApplicationPatch{Status: strPtr("under_review")}); !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("absent id: expected ErrApplicationNotFound, got %v", err)
	}
	if _, err := uc.Transition(ctx, uuid.Nil, ApplicationPatch{}); !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("nil id: expected ErrApplicationNotFound, got %v", err)
	}
}

func TestTransition_UnknownStatus(t *testing.T) {
	uc := newApplicationFixture(t)
	ctx := context.Background()

	app, err := uc.Create(ctx, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := uc.Transition(ctx, app.ID, ApplicationPatch{Status: strPtr("promoted")}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestTransition_Disallowed(t *testing.T) {
	uc := newApplicationFixture(t)
	ctx := context.Background()

	app, err := uc.Create(ctx, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := uc.Transition(ctx, app.ID, ApplicationPatch{Status: strPtr("completed")}); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("applied -> completed: expected ErrInvalidTransition, got %v", err)
	}

	got, _, err := repositoryFindByID(t, uc, app.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != placement.StatusApplied {
		t.Fatalf("rejected transition must not mutate status, got %s", got.Status)
	}
}

// repositoryFindByID reloads an application through the usecase's own
// repository so assertions see exactly what storage holds.
func repositoryFindByID(t *testing.T, uc *Application, id uuid.UUID) (placement.Application, bool, error) {
	t.Helper()
	return uc.apps.FindByID(context.Background(), id)
}

func TestTransition_FullPathToCertificate(t *testing.T) {
	uc := newApplicationFixture(t)
	ctx := context.Background()

	app, err := uc.Create(ctx, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	path := []string{"under_review", "approved", "offered", "accepted", "completed"}
	prev := app.UpdatedAt
	var final placement.Application
	for _, next := range path {
		final, err = uc.Transition(ctx, app.ID, ApplicationPatch{Status: strPtr(next)})
		if err != nil {
			t.Fatalf("transition to %s: %v", next, err)
		}
		if string(final.Status) != next {
			t.Fatalf("expected status %s, got %s", next, final.Status)
		}
		if final.UpdatedAt.Before(prev) {
			t.Fatalf("updated_at went backwards: %s -> %s", prev, final.UpdatedAt)
		}
		prev = final.UpdatedAt
	}

	want := placement.CertificateURL(testCertBaseURL, app.ID)
	if final.CertificateURL != want {
		t.Fatalf("certificate: got %q, want %q", final.CertificateURL, want)
	}
	if final.UpdatedAt.Before(final.CreatedAt) {
		t.Fatalf("updated_at %s precedes created_at %s", final.UpdatedAt, final.CreatedAt)
	}

	// Re-completing is a self-transition and must yield the same URL.
	again, err := uc.Transition(ctx, app.ID, ApplicationPatch{Status: strPtr("completed")})
	if err != nil {
		t.Fatalf("re-complete: %v", err)
	}
	if again.CertificateURL != want {
		t.Fatalf("certificate changed on repeat: %q vs %q", again.CertificateURL, want)
	}
}

func TestTransition_PatchWithoutStatus(t *testing.T) {
	uc := newApplicationFixture(t)
	ctx := context.Background()

	app, err := uc.Create(ctx, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	mentorID := uuid.New()
	when := time.Date(2026, 4, 2, 14, 30, 0, 0, time.UTC)
	updated, err := uc.Transition(ctx, app.ID, ApplicationPatch{
		MentorID:          &mentorID,
		InterviewDatetime: &when,
		InterviewLocation: strPtr("Room 12"),
		Feedback:          strPtr("strong fundamentals"),
	})
	if err != nil {
		t.Fatalf("transition: %v", err)
	}

	if updated.Status != placement.StatusApplied {
		t.Fatalf("status must be untouched, got %s", updated.Status)
	}
	if updated.MentorID == nil || *updated.MentorID != mentorID {
		t.Fatalf("mentor not applied: %v", updated.MentorID)
	}
	if updated.InterviewDatetime == nil || !updated.InterviewDatetime.Equal(when) {
		t.Fatalf("interview datetime not applied: %v", updated.InterviewDatetime)
	}
	if updated.InterviewLocation != "Room 12" {
		t.Fatalf("interview location not applied: %q", updated.InterviewLocation)
	}
	if updated.Feedback != "strong fundamentals" {
		t.Fatalf("feedback not applied: %q", updated.Feedback)
	}
	if !updated.UpdatedAt.After(app.UpdatedAt) {
		t.Fatalf("expected updated_at bump, got %s <= %s", updated.UpdatedAt, app.UpdatedAt)
	}
}
