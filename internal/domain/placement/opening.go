package placement

import (
	"time"

	"github.com/google/uuid"
)

// Opening is a posted internship or job position.
type Opening struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Company        string     `json:"company"`
	Department     string     `json:"department,omitempty"`
	Description    string     `json:"description,omitempty"`
	SkillsRequired []string   `json:"skills_required"`
	StipendMin     *int       `json:"stipend_min,omitempty"`
	StipendMax     *int       `json:"stipend_max,omitempty"`
	ConversionProb *int       `json:"placement_conversion_prob,omitempty"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	CreatedBy      *uuid.UUID `json:"created_by,omitempty"`
}
