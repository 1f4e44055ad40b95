package handler

import (
	"errors"

	"github.com/placementhub/placement-portal/internal/delivery/http/dto"
	"github.com/placementhub/placement-portal/internal/delivery/http/middleware"
	"github.com/placementhub/placement-portal/internal/pkg/response"
	"github.com/placementhub/placement-portal/internal/repository"
	"github.com/placementhub/placement-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/applications")
	grp.Post("/", h.Create)
	grp.Get("/", h.List)
	grp.Patch("/:application_id", h.Update)
}

func (h *ApplicationHandler) Create(c fiber.Ctx) error {
	var req dto.CreateApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if ferrs := dto.Validate(req); ferrs != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", ferrs, nil)
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid student id", nil, err)
	}
	openingID, err := uuid.Parse(req.OpeningID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid opening id", nil, err)
	}

	app, err := h.uc.Create(c.Context(), studentID, openingID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.IDResponse{ID: app.ID})
}

func (h *ApplicationHandler) List(c fiber.Ctx) error {
	filter := repository.ApplicationFilter{}
	if err := assignQueryUUID(c, "student_id", &filter.StudentID); err != nil {
		return err
	}
	if err := assignQueryUUID(c, "opening_id", &filter.OpeningID); err != nil {
		return err
	}
	if err := assignQueryUUID(c, "mentor_id", &filter.MentorID); err != nil {
		return err
	}

	apps, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, apps)
}

func (h *ApplicationHandler) Update(c fiber.Ctx) error {
	// A malformed id is a bad request; a well-formed id that resolves to
	// nothing is not found. The two must stay distinguishable.
	id, err := uuid.Parse(c.Params("application_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application id", nil, err)
	}

	var req dto.UpdateApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if ferrs := dto.Validate(req); ferrs != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", ferrs, nil)
	}

	patch := usecase.ApplicationPatch{
		Status:            req.Status,
		InterviewDatetime: req.InterviewDatetime,
		InterviewLocation: req.InterviewLocation,
		Feedback:          req.Feedback,
	}
	if req.MentorID != nil {
		mentorID, err := uuid.Parse(*req.MentorID)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid mentor id", nil, err)
		}
		patch.MentorID = &mentorID
	}

	app, err := h.uc.Transition(c.Context(), id, patch)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, app)
}

func assignQueryUUID(c fiber.Ctx, key string, dst **uuid.UUID) error {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, nil, err)
	}
	*dst = &id
	return nil
}

func mapApplicationUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, usecase.ErrDuplicateApplication):
		return middleware.NewAppError(fiber.StatusConflict, "Application already exists", nil, err)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrValidation):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, err.Error(), nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
