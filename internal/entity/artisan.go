package entity

import "time"

type Artisan struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"user_id"`
	BusinessName         string    `json:"business_name"`
	Description          string    `json:"description"`
	Specialties          []string  `json:"specialties"`
	Experience           int       `json:"experience"`
	RegionState          string    `json:"region_state"`
	RegionCity           string    `json:"region_city"`
	CulturalBackground   string    `json:"cultural_background"`
	Website              string    `json:"website"`
	Instagram            string    `json:"instagram"`
	Facebook             string    `json:"facebook"`
	IsVerified           bool      `json:"is_verified"`
	RatingAverage        float64   `json:"rating_average"`
	RatingCount          int       `json:"rating_count"`
	TotalSales           int       `json:"total_sales"`
	VoiceRegistered      bool      `json:"voice_registered"`
	RegistrationLanguage string    `json:"registration_language"`
	JoinedAt             time.Time `json:"joined_at"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Specialty enum accepted by the marketplace catalogue.
var Specialties = []string{
	"textiles", "pottery", "jewelry", "painting",
	"woodwork", "metalwork", "basketry", "leatherwork",
}

func IsValidSpecialty(s string) bool {
	for _, v := range Specialties {
		if v == s {
			return true
		}
	}
	return false
}
