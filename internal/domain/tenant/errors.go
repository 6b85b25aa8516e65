package tenant

import "errors"

// Tenant domain errors
var (
	ErrTenantNotFound = errors.New("tenant not found")
	ErrReservedTenant = errors.New("tenant identifier is missing or reserved")
	ErrSlugTaken      = errors.New("subdomain is already taken")
	ErrInvalidSlug    = errors.New("subdomain must be at least 5 characters and may only contain letters, numbers and hyphens, with no leading or trailing hyphen")
)
