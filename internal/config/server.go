package config

import (
	"fmt"
	"os"

	"ArtisanCraft/database/postgres"
	artisanHandler "ArtisanCraft/internal/api/artisan/handler"
	artisanRepository "ArtisanCraft/internal/api/artisan/repository"
	artisanService "ArtisanCraft/internal/api/artisan/service"
	authHandler "ArtisanCraft/internal/api/auth/handler"
	authRepository "ArtisanCraft/internal/api/auth/repository"
	authService "ArtisanCraft/internal/api/auth/service"
	"ArtisanCraft/internal/api/registration"
	registrationHandler "ArtisanCraft/internal/api/registration/handler"
	registrationRepository "ArtisanCraft/internal/api/registration/repository"
	registrationService "ArtisanCraft/internal/api/registration/service"
	"ArtisanCraft/internal/middleware"
	"ArtisanCraft/pkg/audio"
	"ArtisanCraft/pkg/bcrypt"
	"ArtisanCraft/pkg/gemini"
	"ArtisanCraft/pkg/redis"
	"ArtisanCraft/pkg/s3"
	"ArtisanCraft/pkg/smtp"
	"ArtisanCraft/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	handlers    []handler

	redisServer  redis.IRedis
	smtpMailer   smtp.ItfSmtp
	geminiClient gemini.IGemini
	s3Client     s3.ItfS3
	transcriber  audio.ItfTranscriber
	synthesizer  audio.ItfSynthesizer
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create Gemini client: %v", err)
			}
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.geminiClient = client
		return nil
	}
}

func WithSpeechServices() ServerOption {
	return func(s *Server) error {
		s.transcriber = audio.NewTranscriptionService(os.Getenv("OPENAI_API_KEY"))
		s.synthesizer = audio.NewTTSService(os.Getenv("ELEVENLABS_API_KEY"), os.Getenv("ELEVENLABS_VOICE_ID"))
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, s.validator, s.middleware, authServices)

	// Artisan Domain
	artisanRepo := artisanRepository.New(s.db, s.log)
	artisanServices := artisanService.New(s.log, artisanRepo, s.bcryptUtils, s.utils, s.geminiClient, s.smtpMailer)
	artisanHandlers := artisanHandler.New(s.log, s.validator, s.middleware, artisanServices)

	// Voice Registration Wizard
	broker := registration.NewEventBroker()
	registrationRepo := registrationRepository.New(s.db, s.log)
	registrationServices := registrationService.New(s.log, registrationRepo, artisanServices,
		s.transcriber, s.synthesizer, s.s3Client, s.redisServer, s.bcryptUtils, s.utils, broker)
	registrationHandlers := registrationHandler.New(s.log, s.validator, s.middleware, registrationServices, broker)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, artisanHandlers, registrationHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
