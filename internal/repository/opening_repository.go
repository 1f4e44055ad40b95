package repository

import (
	"context"
	"encoding/json"

	"github.com/placementhub/placement-portal/internal/database"
	"github.com/placementhub/placement-portal/internal/domain/placement"

	"github.com/google/uuid"
)

type OpeningFilter struct {
	Department string
	// Skill restricts to openings whose required-skill set contains the tag.
	Skill string
}

type OpeningRepository interface {
	Insert(ctx context.Context, o placement.Opening) (uuid.UUID, error)
	List(ctx context.Context, f OpeningFilter) ([]placement.Opening, error)
}

type DocumentOpeningRepository struct {
	store database.DocumentStore
}

func NewDocumentOpeningRepository(store database.DocumentStore) *DocumentOpeningRepository {
	return &DocumentOpeningRepository{store: store}
}

func (r *DocumentOpeningRepository) Insert(ctx context.Context, o placement.Opening) (uuid.UUID, error) {
	return r.store.Insert(ctx, database.CollectionOpenings, o)
}

func (r *DocumentOpeningRepository) List(ctx context.Context, f OpeningFilter) ([]placement.Opening, error) {
	filter := database.Filter{}
	if f.Department != "" {
		filter["department"] = f.Department
	}
	if f.Skill != "" {
		filter["skills_required"] = []string{f.Skill}
	}

	raws, err := r.store.FindMany(ctx, database.CollectionOpenings, filter)
	if err != nil {
		return nil, err
	}

	out := make([]placement.Opening, 0, len(raws))
	for _, raw := range raws {
		var o placement.Opening
		if err := json.Unmarshal(raw, &o); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}
