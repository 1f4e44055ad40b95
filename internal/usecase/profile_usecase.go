package usecase

import (
	"context"
	"fmt"

	"github.com/placementhub/placement-portal/internal/domain/placement"
	"github.com/placementhub/placement-portal/internal/repository"

	"github.com/google/uuid"
)

type ProfileUsecase interface {
	Create(ctx context.Context, p placement.Profile) (uuid.UUID, error)
	List(ctx context.Context, f repository.ProfileFilter) ([]placement.Profile, error)
}

type Profile struct {
	profiles repository.ProfileRepository
}

func NewProfileUsecase(profiles repository.ProfileRepository) *Profile {
	return &Profile{profiles: profiles}
}

func (u *Profile) Create(ctx context.Context, p placement.Profile) (uuid.UUID, error) {
	if _, ok := placement.ParseRole(string(p.Role)); !ok {
		return uuid.Nil, fmt.Errorf("%w: unknown role %q", ErrValidation, p.Role)
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}

	id, err := u.profiles.Insert(ctx, p)
	if err != nil {
		return uuid.Nil, ErrInternal
	}
	return id, nil
}

func (u *Profile) List(ctx context.Context, f repository.ProfileFilter) ([]placement.Profile, error) {
	out, err := u.profiles.List(ctx, f)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}
