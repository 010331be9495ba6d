package auth

import "ArtisanCraft/pkg/response"

var (
	ErrUserNotFound           = response.NewError(404, "user not found")
	ErrEmailAlreadyInUse      = response.NewError(409, "email already in use")
	ErrInvalidEmailOrPassword = response.NewError(400, "invalid email or password")
	ErrorInvalidToken         = response.NewError(401, "invalid token")
	ErrorTokenExpired         = response.NewError(401, "token has expired")
)
