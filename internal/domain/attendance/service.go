package attendance

import "context"

// AttendanceService is the presence-toggle engine.
type AttendanceService interface {
	// RecordScan decides whether the scan marks the worker in or out and
	// persists an immutable record of the decision. Successive scans for one
	// worker strictly alternate, regardless of elapsed time or calendar date.
	RecordScan(ctx context.Context, req RecordScanRequest) (ScanResponse, error)

	// ListByTenant retrieves every record of a tenant
	ListByTenant(ctx context.Context, req ListRequest) ([]AttendanceRecord, error)

	// ListByWorker retrieves records for one RFID tag within a tenant
	ListByWorker(ctx context.Context, req WorkerListRequest) ([]AttendanceRecord, error)
}
