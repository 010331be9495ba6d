package entity

import "time"

type User struct {
	ID              string    `db:"id"`
	Name            string    `db:"name"`
	Email           string    `db:"email"`
	Password        string    `db:"password"`
	Role            string    `db:"role"`
	Phone           string    `db:"phone"`
	IsVerified      bool      `db:"is_verified"`
	VoiceRegistered bool      `db:"voice_registered"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type UserLoginData struct {
	ID    string
	Name  string
	Email string
	Role  string
}

const (
	RoleCustomer = "customer"
	RoleArtisan  = "artisan"
)
