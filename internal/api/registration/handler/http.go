package registrationHandler

import (
	"ArtisanCraft/internal/api/registration"
	registrationService "ArtisanCraft/internal/api/registration/service"
	"ArtisanCraft/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type RegistrationHandler struct {
	log                 *logrus.Logger
	validator           *validator.Validate
	middleware          middleware.Middleware
	registrationService registrationService.RegistrationService
	broker              *registration.EventBroker
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	rs registrationService.RegistrationService,
	broker *registration.EventBroker,
) *RegistrationHandler {
	return &RegistrationHandler{
		log:                 log,
		validator:           validate,
		middleware:          middleware,
		registrationService: rs,
		broker:              broker,
	}
}

func (h *RegistrationHandler) Start(srv fiber.Router) {
	reg := srv.Group("/registration")

	// The wizard is used by unauthenticated visitors; rate limiting stands
	// in for auth on these routes.
	reg.Use(h.middleware.NewRateLimiter)

	reg.Post("/sessions", h.StartSession)
	reg.Get("/sessions/:session_id", h.GetSession)
	reg.Post("/sessions/:session_id/attempts", h.OpenAttempt)
	reg.Get("/sessions/:session_id/attempts", h.ListAttempts)
	reg.Post("/sessions/:session_id/attempts/:attempt_id", h.SubmitAttempt)
	reg.Post("/sessions/:session_id/answers", h.SubmitManualAnswer)
	reg.Post("/sessions/:session_id/submit", h.ConfirmAndSubmit)
	reg.Post("/sessions/:session_id/restart", h.Restart)

	reg.Use("/sessions/:session_id/events", h.UpgradeEvents)
	reg.Get("/sessions/:session_id/events", websocket.New(h.StreamEvents))
}
