package registrationService

import (
	"context"
	"mime/multipart"
	"os"
	"strconv"

	artisanService "ArtisanCraft/internal/api/artisan/service"
	"ArtisanCraft/internal/api/registration"
	registrationRepository "ArtisanCraft/internal/api/registration/repository"
	"ArtisanCraft/pkg/audio"
	"ArtisanCraft/pkg/bcrypt"
	"ArtisanCraft/pkg/redis"
	"ArtisanCraft/pkg/s3"
	"ArtisanCraft/pkg/utils"

	"github.com/sirupsen/logrus"
)

const defaultMaxRetries = 3

type repoClient = registrationRepository.Client

type RegistrationService interface {
	StartSession(ctx context.Context, req registration.StartSessionRequest) (registration.SessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (registration.SessionResponse, error)
	ListAttempts(ctx context.Context, sessionID string) ([]registration.AttemptRecord, error)
	OpenAttempt(ctx context.Context, sessionID string) (registration.AttemptResponse, error)
	SubmitAttempt(ctx context.Context, sessionID string, attemptID string, file *multipart.FileHeader) (registration.AttemptResultResponse, error)
	SubmitManualAnswer(ctx context.Context, sessionID string, req registration.ManualAnswerRequest) (registration.SessionResponse, error)
	ConfirmAndSubmit(ctx context.Context, sessionID string) (registration.SubmitResponse, error)
	Restart(ctx context.Context, sessionID string) (registration.SessionResponse, error)
}

type registrationService struct {
	log         *logrus.Logger
	repo        registrationRepository.Repository
	artisans    artisanService.ArtisanService
	transcriber audio.ItfTranscriber
	synthesizer audio.ItfSynthesizer
	s3Client    s3.ItfS3
	redisServer redis.IRedis
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
	broker      *registration.EventBroker
	maxRetries  int
}

func New(log *logrus.Logger,
	repo registrationRepository.Repository,
	artisans artisanService.ArtisanService,
	transcriber audio.ItfTranscriber,
	synthesizer audio.ItfSynthesizer,
	s3Client s3.ItfS3,
	redisServer redis.IRedis,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
	broker *registration.EventBroker,
) RegistrationService {
	return &registrationService{
		log:         log,
		repo:        repo,
		artisans:    artisans,
		transcriber: transcriber,
		synthesizer: synthesizer,
		s3Client:    s3Client,
		redisServer: redisServer,
		bcryptUtils: bcryptUtils,
		utils:       utils,
		broker:      broker,
		maxRetries:  maxRetriesFromEnv(),
	}
}

func maxRetriesFromEnv() int {
	if raw := os.Getenv("WIZARD_MAX_RETRIES"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return defaultMaxRetries
}
