package artisanService

import (
	"context"

	"ArtisanCraft/internal/api/artisan"
	artisanRepository "ArtisanCraft/internal/api/artisan/repository"
	"ArtisanCraft/pkg/bcrypt"
	"ArtisanCraft/pkg/gemini"
	"ArtisanCraft/pkg/smtp"
	"ArtisanCraft/pkg/utils"

	"github.com/sirupsen/logrus"
)

type ArtisanService interface {
	ProvisionVoiceArtisan(ctx context.Context, req artisan.VoiceRegisterRequest) (artisan.ProvisionResponse, error)
	ProvisionPrehashed(ctx context.Context, input artisan.ProvisionInput) (artisan.ProvisionResponse, error)
	GetArtisanByID(ctx context.Context, id string) (artisan.ArtisanResponse, error)
	ListArtisans(ctx context.Context, query artisan.ListArtisansQuery) (artisan.ListArtisansResponse, error)
}

type artisanService struct {
	log          *logrus.Logger
	repo         artisanRepository.Repository
	bcryptUtils  bcrypt.IBcrypt
	utils        utils.IUtils
	geminiClient gemini.IGemini
	smtpMailer   smtp.ItfSmtp
}

func New(log *logrus.Logger,
	repo artisanRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
	geminiClient gemini.IGemini,
	smtpMailer smtp.ItfSmtp,
) ArtisanService {
	return &artisanService{
		log:          log,
		repo:         repo,
		bcryptUtils:  bcryptUtils,
		utils:        utils,
		geminiClient: geminiClient,
		smtpMailer:   smtpMailer,
	}
}
