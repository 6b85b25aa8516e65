package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidToken          = errors.New("invalid or missing token")
	ErrTokenRevoked          = errors.New("token has been revoked")
	ErrAdminExists           = errors.New("admin already exists")
	ErrAdminRequired         = errors.New("admin privilege required")
	ErrWorkerNotFound        = errors.New("worker not found, check your subdomain")
	ErrMissingRequiredFields = errors.New("please provide all required fields")
)
