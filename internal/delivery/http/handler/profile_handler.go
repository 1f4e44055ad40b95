package handler

import (
	"errors"

	"github.com/placementhub/placement-portal/internal/delivery/http/dto"
	"github.com/placementhub/placement-portal/internal/delivery/http/middleware"
	"github.com/placementhub/placement-portal/internal/domain/placement"
	"github.com/placementhub/placement-portal/internal/pkg/response"
	"github.com/placementhub/placement-portal/internal/repository"
	"github.com/placementhub/placement-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/profiles")
	grp.Post("/", h.Create)
	grp.Get("/", h.List)
}

func (h *ProfileHandler) Create(c fiber.Ctx) error {
	var req dto.CreateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if ferrs := dto.Validate(req); ferrs != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", ferrs, nil)
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	id, err := h.uc.Create(c.Context(), placement.Profile{
		Name:       req.Name,
		Email:      req.Email,
		Role:       placement.Role(req.Role),
		Department: req.Department,
		Skills:     req.Skills,
		ResumeURL:  req.ResumeURL,
		IsActive:   active,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.IDResponse{ID: id})
}

func (h *ProfileHandler) List(c fiber.Ctx) error {
	profiles, err := h.uc.List(c.Context(), repository.ProfileFilter{
		Role:  c.Query("role"),
		Email: c.Query("email"),
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, profiles)
}

func mapProfileUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, err.Error(), nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
