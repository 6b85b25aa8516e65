package attendance

import "context"

// AttendanceRepository defines data access for scan records. Records are
// insert-only; nothing here updates or deletes. All methods carry the tenant
// slug to prevent cross-tenant reads.
type AttendanceRepository interface {
	// Create inserts a new scan record
	Create(ctx context.Context, a Attendance) (Attendance, error)

	// ListByTenant retrieves every record of a tenant, newest first
	ListByTenant(ctx context.Context, tenant string) ([]Attendance, error)

	// ListByWorker retrieves records for one RFID tag within a tenant,
	// newest first
	ListByWorker(ctx context.Context, rfid string, tenant string) ([]Attendance, error)
}
