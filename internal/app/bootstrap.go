package app

import (
	"fmt"
	"strings"

	"github.com/placementhub/placement-portal/internal/delivery/http/middleware"
	"github.com/placementhub/placement-portal/internal/delivery/http/routes"
	v1 "github.com/placementhub/placement-portal/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	f.Use(middleware.AccessLog(c.Logger))
	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())

	deps := v1.Dependencies{
		Store:       c.Store,
		DBPinger:    c.Store,
		CachePinger: c.Cache,
	}
	if c.Cache != nil {
		deps.Cache = c.Cache
	}
	routes.Register(f, c.Config, deps)

	return &App{Fiber: f}
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
