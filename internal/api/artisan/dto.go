package artisan

import "time"

// VoiceRegisterRequest is the provisioning payload produced by the voice
// registration wizard. Email and password may be absent, in which case
// temporary credentials are synthesized.
type VoiceRegisterRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=255"`
	Location        string `json:"location" validate:"required,min=2,max=255"`
	Category        string `json:"category" validate:"required,min=2,max=100"`
	Phone           string `json:"phone" validate:"omitempty,min=10,max=20"`
	Email           string `json:"email" validate:"omitempty,email"`
	Password        string `json:"password" validate:"omitempty,min=6,max=64"`
	Language        string `json:"language" validate:"omitempty,max=10"`
	VoiceRegistered bool   `json:"voiceRegistered"`
}

// ProvisionInput is the internal variant of VoiceRegisterRequest used when
// the wizard submits in-process. The password arrives already hashed so the
// plaintext never leaves the wizard service.
type ProvisionInput struct {
	Name            string
	Location        string
	Category        string
	Phone           string
	Email           string
	PasswordHash    string
	Language        string
	VoiceRegistered bool
}

type ProvisionResponse struct {
	ArtisanID string `json:"artisan_id"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}

type ArtisanResponse struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"user_id"`
	BusinessName         string    `json:"business_name"`
	Description          string    `json:"description"`
	Specialties          []string  `json:"specialties"`
	Experience           int       `json:"experience"`
	RegionCity           string    `json:"region_city"`
	RegionState          string    `json:"region_state"`
	CulturalBackground   string    `json:"cultural_background,omitempty"`
	IsVerified           bool      `json:"is_verified"`
	RatingAverage        float64   `json:"rating_average"`
	RatingCount          int       `json:"rating_count"`
	TotalSales           int       `json:"total_sales"`
	VoiceRegistered      bool      `json:"voice_registered"`
	RegistrationLanguage string    `json:"registration_language,omitempty"`
	JoinedAt             time.Time `json:"joined_at"`
}

type ListArtisansQuery struct {
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
	Specialty string `query:"specialty"`
}

type ListArtisansResponse struct {
	Artisans []ArtisanResponse `json:"artisans"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
	Total    int               `json:"total"`
}
