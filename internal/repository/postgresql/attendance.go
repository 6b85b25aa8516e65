package postgresql

import (
	"context"
	"fmt"

	"github.com/tracklabs/workforce-backend-go/internal/domain/attendance"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records
			(worker_id, tenant, date, time, presence, name, username, rfid, email, department_id, photo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		a.WorkerID, a.Tenant, a.Date, a.Time, a.Presence,
		a.Name, a.Username, a.RFID, a.Email, a.DepartmentID, a.Photo,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return a, nil
}

const attendanceColumns = `
	id, worker_id, tenant, date, time, presence,
	name, username, rfid, email, department_id, photo, created_at
`

// ListByTenant implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByTenant(ctx context.Context, tenant string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE tenant = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, tenant)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		err := rows.Scan(
			&a.ID, &a.WorkerID, &a.Tenant, &a.Date, &a.Time, &a.Presence,
			&a.Name, &a.Username, &a.RFID, &a.Email, &a.DepartmentID, &a.Photo, &a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

// ListByWorker implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByWorker(ctx context.Context, rfid string, tenant string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE rfid = $1 AND tenant = $2
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, rfid, tenant)
	if err != nil {
		return nil, fmt.Errorf("failed to list worker attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		err := rows.Scan(
			&a.ID, &a.WorkerID, &a.Tenant, &a.Date, &a.Time, &a.Presence,
			&a.Name, &a.Username, &a.RFID, &a.Email, &a.DepartmentID, &a.Photo, &a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, a)
	}

	return records, rows.Err()
}
