package authService

import (
	"context"

	"ArtisanCraft/internal/api/auth"
	authRepository "ArtisanCraft/internal/api/auth/repository"
	"ArtisanCraft/pkg/bcrypt"
	"ArtisanCraft/pkg/utils"

	"github.com/sirupsen/logrus"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req auth.CreateUserRequest) error
	Login(ctx context.Context, req auth.LoginUserRequest) (auth.LoginResponse, error)
	GetProfile(ctx context.Context, userID string) (auth.UserResponse, error)
}

type authService struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
}

func New(log *logrus.Logger,
	authRepo authRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) AuthService {
	return &authService{
		log:         log,
		repo:        authRepo,
		bcryptUtils: bcryptUtils,
		utils:       utils,
	}
}
