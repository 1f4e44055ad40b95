package v1

import (
	"github.com/placementhub/placement-portal/internal/config"
	"github.com/placementhub/placement-portal/internal/database"
	"github.com/placementhub/placement-portal/internal/delivery/http/handler"
	"github.com/placementhub/placement-portal/internal/repository"
	"github.com/placementhub/placement-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Cache bundles the cache operations the v1 routes need; a nil Cache
// disables caching without disabling the routes.
type Cache interface {
	usecase.RecommendationCache
	usecase.OpeningCacheInvalidator
}

type Dependencies struct {
	Store       database.DocumentStore
	Cache       Cache
	DBPinger    handler.Pinger
	CachePinger handler.Pinger
}

func Register(r fiber.Router, cfg config.Config, deps Dependencies) {
	if r == nil {
		return
	}

	profileRepo := repository.NewDocumentProfileRepository(deps.Store)
	openingRepo := repository.NewDocumentOpeningRepository(deps.Store)
	appRepo := repository.NewDocumentApplicationRepository(deps.Store)
	noteRepo := repository.NewDocumentNotificationRepository(deps.Store)

	var recCache usecase.RecommendationCache
	var openCache usecase.OpeningCacheInvalidator
	if deps.Cache != nil {
		recCache = deps.Cache
		openCache = deps.Cache
	}

	profileUC := usecase.NewProfileUsecase(profileRepo)
	openingUC := usecase.NewOpeningUsecase(openingRepo, openCache)
	recommendationUC := usecase.NewRecommendationUsecase(profileRepo, openingRepo, recCache)
	applicationUC := usecase.NewApplicationUsecase(appRepo, cfg.Certificate.BaseURL)
	notificationUC := usecase.NewNotificationUsecase(noteRepo)

	handler.NewProfileHandler(profileUC).RegisterRoutes(r)
	handler.NewRecommendationHandler(recommendationUC).RegisterRoutes(r)
	handler.NewOpeningHandler(openingUC).RegisterRoutes(r)
	handler.NewApplicationHandler(applicationUC).RegisterRoutes(r)
	handler.NewNotificationHandler(notificationUC).RegisterRoutes(r)
}
