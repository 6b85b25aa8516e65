package tenant

import "time"

// ReservedSlug is the placeholder subdomain served to visitors who have not
// selected an organization. It is never a valid operating tenant.
const ReservedSlug = "main"

type Tenant struct {
	ID        string
	Slug      string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsReserved reports whether slug cannot identify an operating tenant.
func IsReserved(slug string) bool {
	return slug == "" || slug == ReservedSlug
}
