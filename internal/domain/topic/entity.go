package topic

import "time"

// DepartmentAll scopes a topic to every department of the tenant.
const DepartmentAll = "all"

// Topic is a named bonus-point category task submissions may reference.
type Topic struct {
	ID     string
	Tenant string
	Name   string
	Points int
	// Department is either DepartmentAll or a department id
	Department string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
