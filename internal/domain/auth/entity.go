package auth

import "time"

// Admin is the single managing account of a tenant.
type Admin struct {
	ID           string
	Tenant       string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
