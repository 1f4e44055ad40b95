package routes

import (
	"github.com/placementhub/placement-portal/internal/config"
	"github.com/placementhub/placement-portal/internal/delivery/http/handler"
	v1 "github.com/placementhub/placement-portal/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

// Register wires the health endpoint and the versioned API.
func Register(app *fiber.App, cfg config.Config, deps v1.Dependencies) {
	if app == nil {
		return
	}

	health := handler.NewHealthHandler(deps.DBPinger, deps.CachePinger)
	health.RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), cfg, deps)
}
