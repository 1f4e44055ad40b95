package placement

import "github.com/google/uuid"

type Role string

const (
	RoleStudent   Role = "student"
	RoleMentor    Role = "mentor"
	RolePlacement Role = "placement"
	RoleRecruiter Role = "recruiter"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleMentor, RolePlacement, RoleRecruiter:
		return Role(s), true
	}
	return "", false
}

// Profile is a portal user: students receive recommendations and apply,
// mentors supervise applications, placement staff post openings.
type Profile struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	Department string    `json:"department,omitempty"`
	Skills     []string  `json:"skills"`
	ResumeURL  string    `json:"resume_url,omitempty"`
	IsActive   bool      `json:"is_active"`
}
