package artisan

import "ArtisanCraft/pkg/response"

var (
	ErrArtisanNotFound    = response.NewError(404, "artisan not found")
	ErrEmailAlreadyInUse  = response.NewError(409, "email already in use")
	ErrMissingName        = response.NewError(400, "artisan name is required")
	ErrMissingCredentials = response.NewError(400, "email and password are required")
)
