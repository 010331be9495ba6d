package artisanHandler

import (
	artisanService "ArtisanCraft/internal/api/artisan/service"
	"ArtisanCraft/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ArtisanHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	artisanService artisanService.ArtisanService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as artisanService.ArtisanService,
) *ArtisanHandler {
	return &ArtisanHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		artisanService: as,
	}
}

func (h *ArtisanHandler) Start(srv fiber.Router) {
	artisans := srv.Group("/artisans")

	// Provisioning is open so external voice clients can register; the rate
	// limiter keeps it from being hammered.
	artisans.Post("/", h.middleware.NewRateLimiter, h.ProvisionVoiceArtisan)

	artisans.Get("/", h.ListArtisans)
	artisans.Get("/:artisan_id", h.GetArtisan)
}
