package placement

import (
	"time"

	"github.com/google/uuid"
)

// Application links one student to one opening and carries the lifecycle
// status. CertificateURL is populated only when the application reaches
// the completed state and is never cleared afterwards.
type Application struct {
	ID                uuid.UUID  `json:"id"`
	StudentID         uuid.UUID  `json:"student_id"`
	OpeningID         uuid.UUID  `json:"opening_id"`
	Status            Status     `json:"status"`
	MentorID          *uuid.UUID `json:"mentor_id,omitempty"`
	InterviewDatetime *time.Time `json:"interview_datetime,omitempty"`
	InterviewLocation string     `json:"interview_location,omitempty"`
	Feedback          string     `json:"feedback,omitempty"`
	CertificateURL    string     `json:"certificate_url,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Notification is a stored message for a user. Delivery is out of scope;
// records are created unread and flipped by the read endpoint.
type Notification struct {
	ID      uuid.UUID `json:"id"`
	UserID  uuid.UUID `json:"user_id"`
	Message string    `json:"message"`
	Read    bool      `json:"read"`
}
