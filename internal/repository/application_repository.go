package repository

import (
	"context"
	"encoding/json"

	"github.com/placementhub/placement-portal/internal/database"
	"github.com/placementhub/placement-portal/internal/domain/placement"

	"github.com/google/uuid"
)

type ApplicationFilter struct {
	StudentID *uuid.UUID
	OpeningID *uuid.UUID
	MentorID  *uuid.UUID
}

type ApplicationRepository interface {
	Insert(ctx context.Context, a placement.Application) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (placement.Application, bool, error)
	FindByStudentAndOpening(ctx context.Context, studentID, openingID uuid.UUID) (placement.Application, bool, error)
	List(ctx context.Context, f ApplicationFilter) ([]placement.Application, error)
	UpdateOne(ctx context.Context, id uuid.UUID, fields database.Fields) (int64, error)
}

type DocumentApplicationRepository struct {
	store database.DocumentStore
}

func NewDocumentApplicationRepository(store database.DocumentStore) *DocumentApplicationRepository {
	return &DocumentApplicationRepository{store: store}
}

func (r *DocumentApplicationRepository) Insert(ctx context.Context, a placement.Application) (uuid.UUID, error) {
	return r.store.Insert(ctx, database.CollectionApplications, a)
}

func (r *DocumentApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (placement.Application, bool, error) {
	return r.findOne(ctx, database.Filter{"id": id.String()})
}

func (r *DocumentApplicationRepository) FindByStudentAndOpening(ctx context.Context, studentID, openingID uuid.UUID) (placement.Application, bool, error) {
	return r.findOne(ctx, database.Filter{
		"student_id": studentID.String(),
		"opening_id": openingID.String(),
	})
}

func (r *DocumentApplicationRepository) findOne(ctx context.Context, filter database.Filter) (placement.Application, bool, error) {
	raw, found, err := r.store.FindOne(ctx, database.CollectionApplications, filter)
	if err != nil || !found {
		return placement.Application{}, false, err
	}
	var a placement.Application
	if err := json.Unmarshal(raw, &a); err != nil {
		return placement.Application{}, false, err
	}
	return a, true, nil
}

func (r *DocumentApplicationRepository) List(ctx context.Context, f ApplicationFilter) ([]placement.Application, error) {
	filter := database.Filter{}
	if f.StudentID != nil {
		filter["student_id"] = f.StudentID.String()
	}
	if f.OpeningID != nil {
		filter["opening_id"] = f.OpeningID.String()
	}
	if f.MentorID != nil {
		filter["mentor_id"] = f.MentorID.String()
	}

	raws, err := r.store.FindMany(ctx, database.CollectionApplications, filter)
	if err != nil {
		return nil, err
	}

	out := make([]placement.Application, 0, len(raws))
	for _, raw := range raws {
		var a placement.Application
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *DocumentApplicationRepository) UpdateOne(ctx context.Context, id uuid.UUID, fields database.Fields) (int64, error) {
	return r.store.UpdateOne(ctx, database.CollectionApplications, id, fields)
}
