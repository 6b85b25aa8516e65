package auth

import (
	"github.com/tracklabs/workforce-backend-go/internal/pkg/validator"
)

// ========================================
// AUTH DTOs
// ========================================

type RegisterAdminRequest struct {
	Username  string `json:"username"`
	Subdomain string `json:"subdomain"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (r *RegisterAdminRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters (letters, digits, '.', '_', '-')",
		})
	}

	if !validator.IsValidTenantSlug(r.Subdomain) {
		errs = append(errs, validator.ValidationError{
			Field:   "subdomain",
			Message: "subdomain must be at least 5 characters and may only contain letters, numbers and hyphens, with no leading or trailing hyphen",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Subdomain string `json:"subdomain"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubdomainAvailableRequest struct {
	Subdomain string `json:"subdomain"`
}

type SubdomainAvailableResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

type TokenResponse struct {
	ID           string  `json:"id"`
	Username     string  `json:"username"`
	Name         string  `json:"name,omitempty"`
	Email        string  `json:"email,omitempty"`
	Subdomain    string  `json:"subdomain"`
	RFID         *string `json:"rfid,omitempty"`
	Department   *string `json:"department,omitempty"`
	Role         string  `json:"role"`
	AccessToken  string  `json:"token"`
	RefreshToken string  `json:"-"`
	ExpiresAt    int64   `json:"expires_at"`
	RefreshExp   int64   `json:"-"`
}

type MeResponse struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	Name       string  `json:"name,omitempty"`
	Email      string  `json:"email,omitempty"`
	Subdomain  string  `json:"subdomain"`
	Role       string  `json:"role"`
	Department *string `json:"department,omitempty"`
}

type CheckAdminResponse struct {
	NeedInitialAdmin bool   `json:"need_initial_admin"`
	Message          string `json:"message"`
}
