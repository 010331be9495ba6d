package artisanService

import (
	"fmt"
	"strings"
	"time"

	"ArtisanCraft/internal/api/artisan"
	"ArtisanCraft/internal/entity"
	contextPkg "ArtisanCraft/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const syntheticEmailDomain = "voiceassistant.temp"

func (s *artisanService) ProvisionVoiceArtisan(ctx context.Context, req artisan.VoiceRegisterRequest) (artisan.ProvisionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	input := artisan.ProvisionInput{
		Name:            strings.TrimSpace(req.Name),
		Location:        strings.TrimSpace(req.Location),
		Category:        strings.TrimSpace(req.Category),
		Phone:           req.Phone,
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Language:        req.Language,
		VoiceRegistered: req.VoiceRegistered,
	}

	if req.Password != "" {
		hash, err := s.bcryptUtils.HashPassword(req.Password)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to hash password")
			return artisan.ProvisionResponse{}, err
		}
		input.PasswordHash = hash
	}

	return s.ProvisionPrehashed(ctx, input)
}

// ProvisionPrehashed creates the user account and artisan profile in one
// transaction. The wizard calls this directly so the plaintext password never
// leaves the wizard service; temporary credentials are synthesized only when
// the caller supplied none.
func (s *artisanService) ProvisionPrehashed(ctx context.Context, input artisan.ProvisionInput) (artisan.ProvisionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if input.Name == "" {
		return artisan.ProvisionResponse{}, artisan.ErrMissingName
	}

	email := input.Email
	syntheticCredentials := false
	if email == "" {
		email = fmt.Sprintf("%s_%d@%s",
			strings.ToLower(strings.ReplaceAll(input.Name, " ", "")),
			time.Now().UnixMilli(),
			syntheticEmailDomain,
		)
		syntheticCredentials = true
	}

	passwordHash := input.PasswordHash
	if passwordHash == "" {
		generated := fmt.Sprintf("Voice%d!", time.Now().UnixMilli())
		hash, err := s.bcryptUtils.HashPassword(generated)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to hash generated password")
			return artisan.ProvisionResponse{}, err
		}
		passwordHash = hash
	}

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return artisan.ProvisionResponse{}, err
	}
	defer repo.Rollback()

	exists, err := repo.Users.EmailExists(ctx, email)
	if err != nil {
		return artisan.ProvisionResponse{}, err
	}
	if exists {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"email":      email,
		}).Warn("Provisioning rejected, email already in use")
		return artisan.ProvisionResponse{}, artisan.ErrEmailAlreadyInUse
	}

	userID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return artisan.ProvisionResponse{}, err
	}
	artisanID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return artisan.ProvisionResponse{}, err
	}

	now := time.Now()
	user := entity.User{
		ID:              userID,
		Name:            input.Name,
		Email:           email,
		Password:        passwordHash,
		Role:            entity.RoleArtisan,
		Phone:           input.Phone,
		IsVerified:      false,
		VoiceRegistered: input.VoiceRegistered,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := repo.Users.CreateUser(ctx, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create provisioned user")
		return artisan.ProvisionResponse{}, err
	}

	city, state := splitLocation(input.Location)
	specialty := mapSpecialty(input.Category)
	language := input.Language
	if language == "" {
		language = "en-IN"
	}

	profile := entity.Artisan{
		ID:                   artisanID,
		UserID:               userID,
		BusinessName:         fmt.Sprintf("%s's %s", input.Name, input.Category),
		Description:          s.buildDescription(ctx, input),
		Specialties:          []string{specialty},
		Experience:           1,
		RegionState:          state,
		RegionCity:           city,
		CulturalBackground:   fmt.Sprintf("Traditional %s crafts from %s", input.Category, input.Location),
		IsVerified:           false,
		VoiceRegistered:      input.VoiceRegistered,
		RegistrationLanguage: language,
		JoinedAt:             now,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := repo.Artisans.CreateArtisan(ctx, profile); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create artisan profile")
		return artisan.ProvisionResponse{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit provisioning transaction")
		return artisan.ProvisionResponse{}, err
	}

	// Welcome mail is best effort and only useful for reachable addresses.
	if !syntheticCredentials {
		if err := s.smtpMailer.SendWelcomeMail(email, input.Name, profile.BusinessName); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to send welcome mail")
		}
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"artisan_id": artisanID,
		"user_id":    userID,
	}).Info("Artisan provisioned")

	return artisan.ProvisionResponse{
		ArtisanID: artisanID,
		UserID:    userID,
		Email:     email,
		Message:   "Artisan registered successfully via voice",
	}, nil
}

func (s *artisanService) GetArtisanByID(ctx context.Context, id string) (artisan.ArtisanResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return artisan.ArtisanResponse{}, err
	}

	profile, err := repo.Artisans.GetArtisanByID(ctx, id)
	if err != nil {
		return artisan.ArtisanResponse{}, err
	}

	return makeArtisanResponse(profile), nil
}

func (s *artisanService) ListArtisans(ctx context.Context, query artisan.ListArtisansQuery) (artisan.ListArtisansResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return artisan.ListArtisansResponse{}, err
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	profiles, total, err := repo.Artisans.GetArtisans(ctx, strings.ToLower(query.Specialty), limit, offset)
	if err != nil {
		return artisan.ListArtisansResponse{}, err
	}

	responses := make([]artisan.ArtisanResponse, 0, len(profiles))
	for _, profile := range profiles {
		responses = append(responses, makeArtisanResponse(profile))
	}

	return artisan.ListArtisansResponse{
		Artisans: responses,
		Page:     page,
		Limit:    limit,
		Total:    total,
	}, nil
}

func (s *artisanService) buildDescription(ctx context.Context, input artisan.ProvisionInput) string {
	fallback := fmt.Sprintf("Artisan specializing in %s from %s. Registered via voice assistant.",
		input.Category, input.Location)

	if s.geminiClient == nil {
		return fallback
	}

	bio, err := s.geminiClient.GenerateBio(ctx, input.Name, input.Category, input.Location)
	if err != nil || bio == "" {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
		}).Debug("Falling back to template bio")
		return fallback
	}

	return bio
}

func splitLocation(location string) (city, state string) {
	parts := strings.Split(location, ",")
	city = strings.TrimSpace(parts[0])
	if city == "" {
		city = location
	}
	if len(parts) > 1 {
		state = strings.TrimSpace(parts[1])
	} else {
		state = location
	}
	return city, state
}

func mapSpecialty(category string) string {
	lowered := strings.ToLower(strings.TrimSpace(category))
	if entity.IsValidSpecialty(lowered) {
		return lowered
	}
	return "textiles"
}

func makeArtisanResponse(a entity.Artisan) artisan.ArtisanResponse {
	return artisan.ArtisanResponse{
		ID:                   a.ID,
		UserID:               a.UserID,
		BusinessName:         a.BusinessName,
		Description:          a.Description,
		Specialties:          a.Specialties,
		Experience:           a.Experience,
		RegionCity:           a.RegionCity,
		RegionState:          a.RegionState,
		CulturalBackground:   a.CulturalBackground,
		IsVerified:           a.IsVerified,
		RatingAverage:        a.RatingAverage,
		RatingCount:          a.RatingCount,
		TotalSales:           a.TotalSales,
		VoiceRegistered:      a.VoiceRegistered,
		RegistrationLanguage: a.RegistrationLanguage,
		JoinedAt:             a.JoinedAt,
	}
}
