package auth

import "context"

// AuthService issues and validates identity tokens. The engines trust its
// resolved actor (id, role, tenant) and never inspect credentials themselves.
type AuthService interface {
	// SubdomainAvailable checks whether a tenant slug can still be claimed
	SubdomainAvailable(ctx context.Context, req SubdomainAvailableRequest) (SubdomainAvailableResponse, error)

	// RegisterAdmin creates the tenant and its managing admin in one step
	RegisterAdmin(ctx context.Context, req RegisterAdminRequest) (TokenResponse, error)

	// LoginAdmin authenticates a tenant admin
	LoginAdmin(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// LoginWorker authenticates a worker by tenant-scoped username
	LoginWorker(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a fresh token pair
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the caller's tokens
	Logout(ctx context.Context, accessToken string, refreshToken string) error

	// Me resolves the calling token to its account
	Me(ctx context.Context) (MeResponse, error)

	// CheckAdminInitialization reports whether any admin exists yet
	CheckAdminInitialization(ctx context.Context) (CheckAdminResponse, error)
}
