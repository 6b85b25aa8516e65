package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tracklabs/workforce-backend-go/internal/domain/attendance"
	"github.com/tracklabs/workforce-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Scan(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	WorkerList(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Scan implements AttendanceHandler. The RFID reader calls this endpoint;
// the toggle decision lives entirely in the service.
func (a *AttendanceHandlerImpl) Scan(w http.ResponseWriter, r *http.Request) {
	var scanReq attendance.RecordScanRequest

	if err := json.NewDecoder(r.Body).Decode(&scanReq); err != nil {
		slog.Error("Scan decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	scanResp, err := a.attendanceService.RecordScan(r.Context(), scanReq)
	if err != nil {
		slog.Error("Scan service error", "error", err, "tenant", scanReq.Tenant)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance recorded",
		"tenant", scanReq.Tenant,
		"worker_id", scanResp.Attendance.WorkerID,
		"presence", scanResp.Attendance.Presence,
	)
	response.Created(w, scanResp.Message, scanResp)
}

// List implements AttendanceHandler.
func (a *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var listReq attendance.ListRequest

	if err := json.NewDecoder(r.Body).Decode(&listReq); err != nil {
		slog.Error("List decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	records, err := a.attendanceService.ListByTenant(r.Context(), listReq)
	if err != nil {
		slog.Error("List service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// WorkerList implements AttendanceHandler. Public: kiosk displays query a
// single tag's history without a session.
func (a *AttendanceHandlerImpl) WorkerList(w http.ResponseWriter, r *http.Request) {
	var listReq attendance.WorkerListRequest

	if err := json.NewDecoder(r.Body).Decode(&listReq); err != nil {
		slog.Error("WorkerList decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	records, err := a.attendanceService.ListByWorker(r.Context(), listReq)
	if err != nil {
		slog.Error("WorkerList service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
