package authHandler

import (
	authService "ArtisanCraft/internal/api/auth/service"
	"ArtisanCraft/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	authService authService.AuthService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as authService.AuthService,
) *AuthHandler {
	return &AuthHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		authService: as,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	users := srv.Group("/users")
	users.Post("/", h.RegisterUser)
	users.Get("/profile", h.middleware.NewTokenMiddleware, h.GetProfile)

	auth := srv.Group("/auth")
	auth.Post("/login", h.Login)
}
