package dto

import (
	"github.com/placementhub/placement-portal/internal/domain/placement"
	"github.com/placementhub/placement-portal/internal/usecase"

	"github.com/google/uuid"
)

type IDResponse struct {
	ID uuid.UUID `json:"id"`
}

// RecommendationResponse flattens an opening with its computed score, the
// shape the recommendation listing returns per entry.
type RecommendationResponse struct {
	placement.Opening
	MatchScore int `json:"match_score"`
}

func NewRecommendationResponses(items []usecase.RecommendationItem) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, RecommendationResponse{Opening: it.Opening, MatchScore: it.MatchScore})
	}
	return out
}
