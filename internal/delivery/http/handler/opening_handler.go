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
	"github.com/google/uuid"
)

type OpeningHandler struct {
	uc usecase.OpeningUsecase
}

func NewOpeningHandler(uc usecase.OpeningUsecase) *OpeningHandler {
	return &OpeningHandler{uc: uc}
}

func (h *OpeningHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/openings")
	grp.Post("/", h.Create)
	grp.Get("/", h.List)
}

func (h *OpeningHandler) Create(c fiber.Ctx) error {
	var req dto.CreateOpeningRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if ferrs := dto.Validate(req); ferrs != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", ferrs, nil)
	}

	opening := placement.Opening{
		Title:          req.Title,
		Company:        req.Company,
		Department:     req.Department,
		Description:    req.Description,
		SkillsRequired: req.SkillsRequired,
		StipendMin:     req.StipendMin,
		StipendMax:     req.StipendMax,
		ConversionProb: req.ConversionProb,
		Deadline:       req.Deadline,
	}
	if req.CreatedBy != "" {
		creator, err := uuid.Parse(req.CreatedBy)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid created_by id", nil, err)
		}
		opening.CreatedBy = &creator
	}

	id, err := h.uc.Create(c.Context(), opening)
	if err != nil {
		return mapOpeningUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.IDResponse{ID: id})
}

func (h *OpeningHandler) List(c fiber.Ctx) error {
	openings, err := h.uc.List(c.Context(), repository.OpeningFilter{
		Department: c.Query("department"),
		Skill:      c.Query("skill"),
	})
	if err != nil {
		return mapOpeningUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, openings)
}

func mapOpeningUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, err.Error(), nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
