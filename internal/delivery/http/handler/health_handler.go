package handler

import (
	"context"

	"github.com/placementhub/placement-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := map[string]string{
		"database": "ok",
		"cache":    "ok",
	}

	if h.db == nil {
		data["database"] = "not configured"
	} else if err := h.db.Ping(c.Context()); err != nil {
		data["database"] = "unavailable"
	}

	if h.cache == nil {
		data["cache"] = "not configured"
	} else if err := h.cache.Ping(c.Context()); err != nil {
		data["cache"] = "unavailable"
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
