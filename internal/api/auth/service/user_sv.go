package authService

import (
	"errors"
	"strings"
	"time"

	"ArtisanCraft/internal/api/auth"
	"ArtisanCraft/internal/entity"
	contextPkg "ArtisanCraft/pkg/context"
	jwtPkg "ArtisanCraft/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const accessTokenTTL = 24 * time.Hour

func (s *authService) RegisterUser(ctx context.Context, req auth.CreateUserRequest) error {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := repo.Users.GetUserByEmail(ctx, email); err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"email":      email,
		}).Warn("Email already in use")
		return auth.ErrEmailAlreadyInUse
	} else if !errors.Is(err, auth.ErrUserNotFound) {
		return err
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	now := time.Now()
	user := entity.User{
		ID:        ULID,
		Name:      req.Name,
		Email:     email,
		Password:  hashedPassword,
		Role:      entity.RoleCustomer,
		Phone:     req.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Users.CreateUser(ctx, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return err
	}

	return nil
}

func (s *authService) Login(ctx context.Context, req auth.LoginUserRequest) (auth.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := repo.Users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"email":      email,
			}).Warn("Login attempt for unknown email")
			return auth.LoginResponse{}, auth.ErrInvalidEmailOrPassword
		}
		return auth.LoginResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"email":      email,
		}).Warn("Login attempt with wrong password")
		return auth.LoginResponse{}, auth.ErrInvalidEmailOrPassword
	}

	token, _, err := jwtPkg.Sign(map[string]interface{}{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}, accessTokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign access token")
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: token,
		User:        makeUserResponse(user),
	}, nil
}

func (s *authService) GetProfile(ctx context.Context, userID string) (auth.UserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.UserResponse{}, err
	}

	user, err := repo.Users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    userID,
			}).Warn("User not found")
			return auth.UserResponse{}, auth.ErrUserNotFound
		}
		return auth.UserResponse{}, err
	}

	return makeUserResponse(user), nil
}

func makeUserResponse(user entity.User) auth.UserResponse {
	return auth.UserResponse{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Role:            user.Role,
		Phone:           user.Phone,
		IsVerified:      user.IsVerified,
		VoiceRegistered: user.VoiceRegistered,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}
