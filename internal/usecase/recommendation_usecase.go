package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/placementhub/placement-portal/internal/domain/matching"
	"github.com/placementhub/placement-portal/internal/domain/placement"
	"github.com/placementhub/placement-portal/internal/repository"

	"github.com/google/uuid"
)

// DefaultRecommendationLimit applies when the caller does not ask for a
// specific result count.
const DefaultRecommendationLimit = 10

const recommendationCacheTTL = 2 * time.Minute

type RecommendationItem struct {
	Opening    placement.Opening `json:"opening"`
	MatchScore int               `json:"match_score"`
}

type RecommendationUsecase interface {
	Recommend(ctx context.Context, studentID uuid.UUID, limit int) ([]RecommendationItem, error)
}

// RecommendationCache is the slice of the redis cache this usecase needs.
type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type Recommendation struct {
	profiles repository.ProfileRepository
	openings repository.OpeningRepository
	cache    RecommendationCache
}

func NewRecommendationUsecase(profiles repository.ProfileRepository, openings repository.OpeningRepository, cache RecommendationCache) *Recommendation {
	return &Recommendation{profiles: profiles, openings: openings, cache: cache}
}

// Recommend ranks all open positions for the student. Zero-score openings
// are kept, ties preserve storage order, and a non-positive limit yields an
// empty list rather than an error.
func (u *Recommendation) Recommend(ctx context.Context, studentID uuid.UUID, limit int) ([]RecommendationItem, error) {
	if studentID == uuid.Nil {
		return nil, ErrProfileNotFound
	}

	student, found, err := u.profiles.FindByID(ctx, studentID)
	if err != nil {
		return nil, ErrInternal
	}
	if !found {
		return nil, ErrProfileNotFound
	}
	if student.Role != placement.RoleStudent {
		return nil, fmt.Errorf("%w: profile is not a student", ErrValidation)
	}

	if limit <= 0 {
		return []RecommendationItem{}, nil
	}

	cacheKey := recommendationCacheKey(studentID, limit)
	if u.cache != nil {
		var cached []RecommendationItem
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	openings, err := u.openings.List(ctx, repository.OpeningFilter{})
	if err != nil {
		return nil, ErrInternal
	}

	candidates := make([]matching.Candidate, 0, len(openings))
	for _, o := range openings {
		candidates = append(candidates, matching.Candidate{
			Department:     o.Department,
			RequiredSkills: o.SkillsRequired,
		})
	}

	ranked := matching.Rank(matching.StudentProfile{
		Department: student.Department,
		Skills:     student.Skills,
	}, candidates, limit)

	out := make([]RecommendationItem, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, RecommendationItem{
			Opening:    openings[r.Index],
			MatchScore: r.Score,
		})
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, out, recommendationCacheTTL)
	}

	return out, nil
}

func recommendationCacheKey(studentID uuid.UUID, limit int) string {
	return fmt.Sprintf("recommendations:%s:%d", studentID, limit)
}
