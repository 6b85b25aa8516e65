package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tracklabs/workforce-backend-go/internal/domain/attendance"
	"github.com/tracklabs/workforce-backend-go/internal/domain/worker"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/database"
	"github.com/tracklabs/workforce-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db  *database.DB
	loc *time.Location
	attendance.AttendanceRepository
	worker.WorkerRepository
}

func NewAttendanceService(
	db *database.DB,
	loc *time.Location,
	attendanceRepository attendance.AttendanceRepository,
	workerRepository worker.WorkerRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		loc:                  loc,
		AttendanceRepository: attendanceRepository,
		WorkerRepository:     workerRepository,
	}
}

// nextPresence decides the toggle: the first scan of a worker's lifetime
// marks in, every later scan inverts the previous outcome. Elapsed time and
// calendar date never factor in.
func nextPresence(last *bool) bool {
	if last == nil {
		return true
	}
	return !*last
}

func presenceMessage(presence bool) string {
	if presence {
		return "Attendance marked as in"
	}
	return "Attendance marked as out"
}

func toRecord(a attendance.Attendance) attendance.AttendanceRecord {
	return attendance.AttendanceRecord{
		ID:         a.ID,
		WorkerID:   a.WorkerID,
		Name:       a.Name,
		Username:   a.Username,
		RFID:       a.RFID,
		Email:      a.Email,
		Department: a.DepartmentID,
		Photo:      a.Photo,
		Date:       a.Date,
		Time:       a.Time,
		Presence:   a.Presence,
		CreatedAt:  a.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// RecordScan implements attendance.AttendanceService. The worker row is
// locked for the whole transaction so two scans of one tag can never read
// the same last_presence.
func (s *AttendanceServiceImpl) RecordScan(ctx context.Context, req attendance.RecordScanRequest) (attendance.ScanResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ScanResponse{}, err
	}

	var record attendance.Attendance

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		w, err := s.WorkerRepository.GetByRFIDForUpdate(txCtx, req.RFID, req.Tenant)
		if err != nil {
			if err == worker.ErrWorkerNotFound {
				return attendance.ErrWorkerNotFound
			}
			return fmt.Errorf("failed to look up worker by RFID: %w", err)
		}

		presence := nextPresence(w.LastPresence)
		nowLocal := time.Now().In(s.loc)

		rfid := ""
		if w.RFID != nil {
			rfid = *w.RFID
		}

		record, err = s.AttendanceRepository.Create(txCtx, attendance.Attendance{
			WorkerID:     w.ID,
			Tenant:       w.Tenant,
			Date:         nowLocal.Format("2006-01-02"),
			Time:         nowLocal.Format("15:04:05"),
			Presence:     presence,
			Name:         w.Name,
			Username:     w.Username,
			RFID:         rfid,
			Email:        w.Email,
			DepartmentID: w.DepartmentID,
			Photo:        w.Photo,
		})
		if err != nil {
			return err
		}

		return s.WorkerRepository.SetLastPresence(txCtx, w.ID, w.Tenant, presence)
	})
	if err != nil {
		return attendance.ScanResponse{}, err
	}

	return attendance.ScanResponse{
		Message:    presenceMessage(record.Presence),
		Attendance: toRecord(record),
	}, nil
}

// ListByTenant implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByTenant(ctx context.Context, req attendance.ListRequest) ([]attendance.AttendanceRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListByTenant(ctx, req.Tenant)
	if err != nil {
		return nil, err
	}

	out := make([]attendance.AttendanceRecord, 0, len(records))
	for _, a := range records {
		out = append(out, toRecord(a))
	}

	return out, nil
}

// ListByWorker implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByWorker(ctx context.Context, req attendance.WorkerListRequest) ([]attendance.AttendanceRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListByWorker(ctx, req.RFID, req.Tenant)
	if err != nil {
		return nil, err
	}

	out := make([]attendance.AttendanceRecord, 0, len(records))
	for _, a := range records {
		out = append(out, toRecord(a))
	}

	return out, nil
}
