package usecase

import (
	"context"
	"fmt"

	"github.com/placementhub/placement-portal/internal/domain/placement"
	"github.com/placementhub/placement-portal/internal/repository"

	"github.com/google/uuid"
)

type OpeningCacheInvalidator interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}

type OpeningUsecase interface {
	Create(ctx context.Context, o placement.Opening) (uuid.UUID, error)
	List(ctx context.Context, f repository.OpeningFilter) ([]placement.Opening, error)
}

type Opening struct {
	openings repository.OpeningRepository
	cache    OpeningCacheInvalidator
}

func NewOpeningUsecase(openings repository.OpeningRepository, cache OpeningCacheInvalidator) *Opening {
	return &Opening{openings: openings, cache: cache}
}

func (u *Opening) Create(ctx context.Context, o placement.Opening) (uuid.UUID, error) {
	if err := validateOpening(o); err != nil {
		return uuid.Nil, err
	}
	if o.SkillsRequired == nil {
		o.SkillsRequired = []string{}
	}

	id, err := u.openings.Insert(ctx, o)
	if err != nil {
		return uuid.Nil, ErrInternal
	}

	// A new opening changes every student's ranking.
	if u.cache != nil {
		_ = u.cache.DeleteByPattern(ctx, "recommendations:*")
	}

	return id, nil
}

func (u *Opening) List(ctx context.Context, f repository.OpeningFilter) ([]placement.Opening, error) {
	out, err := u.openings.List(ctx, f)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func validateOpening(o placement.Opening) error {
	if o.StipendMin != nil && *o.StipendMin < 0 {
		return fmt.Errorf("%w: stipend_min must be non-negative", ErrValidation)
	}
	if o.StipendMax != nil && *o.StipendMax < 0 {
		return fmt.Errorf("%w: stipend_max must be non-negative", ErrValidation)
	}
	if o.StipendMin != nil && o.StipendMax != nil && *o.StipendMin > *o.StipendMax {
		return fmt.Errorf("%w: stipend_min must not exceed stipend_max", ErrValidation)
	}
	if o.ConversionProb != nil && (*o.ConversionProb < 0 || *o.ConversionProb > 100) {
		return fmt.Errorf("%w: placement_conversion_prob must be within 0-100", ErrValidation)
	}
	return nil
}
