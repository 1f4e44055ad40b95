package handler

import (
	"errors"
	"strconv"

	"github.com/placementhub/placement-portal/internal/delivery/http/dto"
	"github.com/placementhub/placement-portal/internal/delivery/http/middleware"
	"github.com/placementhub/placement-portal/internal/pkg/response"
	"github.com/placementhub/placement-portal/internal/repository"
	"github.com/placementhub/placement-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/notifications")
	grp.Post("/", h.Create)
	grp.Get("/", h.List)
	grp.Patch("/:notification_id/read", h.MarkRead)
}

func (h *NotificationHandler) Create(c fiber.Ctx) error {
	var req dto.CreateNotificationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if ferrs := dto.Validate(req); ferrs != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", ferrs, nil)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	id, err := h.uc.Create(c.Context(), userID, req.Message)
	if err != nil {
		return mapNotificationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.IDResponse{ID: id})
}

func (h *NotificationHandler) List(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	unreadOnly := false
	if raw := c.Query("unread_only"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid unread_only", nil, err)
		}
		unreadOnly = v
	}

	notes, err := h.uc.List(c.Context(), repository.NotificationFilter{
		UserID:     userID,
		UnreadOnly: unreadOnly,
	})
	if err != nil {
		return mapNotificationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, notes)
}

func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("notification_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid notification id", nil, err)
	}

	note, err := h.uc.MarkRead(c.Context(), id)
	if err != nil {
		return mapNotificationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, note)
}

func mapNotificationUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Notification not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
