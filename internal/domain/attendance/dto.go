package attendance

import (
	"github.com/tracklabs/workforce-backend-go/internal/domain/tenant"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type RecordScanRequest struct {
	RFID   string `json:"rfid"`
	Tenant string `json:"subdomain"`
}

func (r *RecordScanRequest) Validate() error {
	if tenant.IsReserved(r.Tenant) {
		return ErrInvalidTenant
	}
	if validator.IsEmpty(r.RFID) {
		return ErrMissingCredential
	}
	return nil
}

type ListRequest struct {
	Tenant string `json:"subdomain"`
}

func (r *ListRequest) Validate() error {
	if tenant.IsReserved(r.Tenant) {
		return ErrInvalidTenant
	}
	return nil
}

type WorkerListRequest struct {
	RFID   string `json:"rfid"`
	Tenant string `json:"subdomain"`
}

func (r *WorkerListRequest) Validate() error {
	if tenant.IsReserved(r.Tenant) {
		return ErrInvalidTenant
	}
	if validator.IsEmpty(r.RFID) {
		return ErrMissingCredential
	}
	return nil
}

type ScanResponse struct {
	// Message is "Attendance marked as in" or "Attendance marked as out"
	Message    string           `json:"message"`
	Attendance AttendanceRecord `json:"attendance"`
}

type AttendanceRecord struct {
	ID         string  `json:"id"`
	WorkerID   string  `json:"worker_id"`
	Name       string  `json:"name"`
	Username   string  `json:"username"`
	RFID       string  `json:"rfid"`
	Email      string  `json:"email,omitempty"`
	Department *string `json:"department_id,omitempty"`
	Photo      string  `json:"photo,omitempty"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Presence   bool    `json:"presence"`
	CreatedAt  string  `json:"created_at"`
}
