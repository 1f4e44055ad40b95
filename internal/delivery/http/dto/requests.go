package dto

import "time"

type CreateProfileRequest struct {
	Name       string   `json:"name" validate:"required"`
	Email      string   `json:"email" validate:"required,email"`
	Role       string   `json:"role" validate:"required,oneof=student mentor placement recruiter"`
	Department string   `json:"department" validate:"omitempty"`
	Skills     []string `json:"skills" validate:"omitempty,dive,min=1"`
	ResumeURL  string   `json:"resume_url" validate:"omitempty,url"`
	IsActive   *bool    `json:"is_active"`
}

type CreateOpeningRequest struct {
	Title          string     `json:"title" validate:"required"`
	Company        string     `json:"company" validate:"required"`
	Department     string     `json:"department"`
	Description    string     `json:"description"`
	SkillsRequired []string   `json:"skills_required" validate:"omitempty,dive,min=1"`
	StipendMin     *int       `json:"stipend_min" validate:"omitempty,gte=0"`
	StipendMax     *int       `json:"stipend_max" validate:"omitempty,gte=0"`
	ConversionProb *int       `json:"placement_conversion_prob" validate:"omitempty,gte=0,lte=100"`
	Deadline       *time.Time `json:"deadline"`
	CreatedBy      string     `json:"created_by" validate:"omitempty,uuid"`
}

type CreateApplicationRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	OpeningID string `json:"opening_id" validate:"required,uuid"`
}

type UpdateApplicationRequest struct {
	Status            *string    `json:"status"`
	MentorID          *string    `json:"mentor_id" validate:"omitempty,uuid"`
	InterviewDatetime *time.Time `json:"interview_datetime"`
	InterviewLocation *string    `json:"interview_location"`
	Feedback          *string    `json:"feedback"`
}

type CreateNotificationRequest struct {
	UserID  string `json:"user_id" validate:"required,uuid"`
	Message string `json:"message" validate:"required"`
}
