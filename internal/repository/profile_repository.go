package repository

import (
	"context"
	"encoding/json"

	"github.com/placementhub/placement-portal/internal/database"
	"github.com/placementhub/placement-portal/internal/domain/placement"

	"github.com/google/uuid"
)

type ProfileFilter struct {
	Role  string
	Email string
}

type ProfileRepository interface {
	Insert(ctx context.Context, p placement.Profile) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (placement.Profile, bool, error)
	List(ctx context.Context, f ProfileFilter) ([]placement.Profile, error)
}

type DocumentProfileRepository struct {
	store database.DocumentStore
}

func NewDocumentProfileRepository(store database.DocumentStore) *DocumentProfileRepository {
	return &DocumentProfileRepository{store: store}
}

func (r *DocumentProfileRepository) Insert(ctx context.Context, p placement.Profile) (uuid.UUID, error) {
	return r.store.Insert(ctx, database.CollectionProfiles, p)
}

func (r *DocumentProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (placement.Profile, bool, error) {
	raw, found, err := r.store.FindOne(ctx, database.CollectionProfiles, database.Filter{"id": id.String()})
	if err != nil || !found {
		return placement.Profile{}, false, err
	}
	var p placement.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return placement.Profile{}, false, err
	}
	return p, true, nil
}

func (r *DocumentProfileRepository) List(ctx context.Context, f ProfileFilter) ([]placement.Profile, error) {
	filter := database.Filter{}
	if f.Role != "" {
		filter["role"] = f.Role
	}
	if f.Email != "" {
		filter["email"] = f.Email
	}

	raws, err := r.store.FindMany(ctx, database.CollectionProfiles, filter)
	if err != nil {
		return nil, err
	}

	out := make([]placement.Profile, 0, len(raws))
	for _, raw := range raws {
		var p placement.Profile
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
