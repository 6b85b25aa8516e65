package attendance

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/tracklabs/workforce-backend-go/internal/domain/attendance"
	"github.com/tracklabs/workforce-backend-go/internal/domain/worker"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/database"
	"github.com/tracklabs/workforce-backend-go/internal/repository/postgresql"
)

var (
	testDB     *database.DB
	testDBOnce sync.Once
)

func testDatabase(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}
	testDBOnce.Do(func() {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn)
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}
	})
	return testDB
}

func newTestService(t *testing.T, db *database.DB) domain.AttendanceService {
	t.Helper()
	return NewAttendanceService(
		db,
		time.UTC,
		postgresql.NewAttendanceRepository(db),
		postgresql.NewWorkerRepository(db),
	)
}

func setupScanWorker(t *testing.T, ctx context.Context, db *database.DB) (tenantSlug string, rfid string) {
	t.Helper()
	tenantSlug = fmt.Sprintf("scan%d-%d", time.Now().Unix(), time.Now().Nanosecond())
	_, err := db.Exec(ctx, "INSERT INTO tenants (slug, name) VALUES ($1, $1)", tenantSlug)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = db.Exec(ctx, "DELETE FROM attendance_records WHERE tenant = $1", tenantSlug)
		_, _ = db.Exec(ctx, "DELETE FROM workers WHERE tenant = $1", tenantSlug)
		_, _ = db.Exec(ctx, "DELETE FROM tenants WHERE slug = $1", tenantSlug)
	})

	rfid = fmt.Sprintf("04%X", time.Now().UnixNano())
	_, err = postgresql.NewWorkerRepository(db).Create(ctx, worker.Worker{
		Tenant:       tenantSlug,
		Name:         "Scan Worker",
		Username:     fmt.Sprintf("scanner-%d", time.Now().UnixNano()),
		Email:        fmt.Sprintf("scan%d@example.com", time.Now().UnixNano()),
		RFID:         &rfid,
		PasswordHash: "$2a$10$invalidhashforscantests00000000000000000000000000000",
	})
	require.NoError(t, err)
	return tenantSlug, rfid
}

func TestRecordScan_TogglesPresence(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	tenantSlug, rfid := setupScanWorker(t, ctx, db)

	svc := newTestService(t, db)
	req := domain.RecordScanRequest{RFID: rfid, Tenant: tenantSlug}

	first, err := svc.RecordScan(ctx, req)
	require.NoError(t, err)
	assert.True(t, first.Attendance.Presence)
	assert.Equal(t, "Attendance marked as in", first.Message)

	second, err := svc.RecordScan(ctx, req)
	require.NoError(t, err)
	assert.False(t, second.Attendance.Presence)
	assert.Equal(t, "Attendance marked as out", second.Message)

	third, err := svc.RecordScan(ctx, req)
	require.NoError(t, err)
	assert.True(t, third.Attendance.Presence)
}

func TestRecordScan_UnknownRFID(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	tenantSlug, _ := setupScanWorker(t, ctx, db)

	svc := newTestService(t, db)
	_, err := svc.RecordScan(ctx, domain.RecordScanRequest{RFID: "FFFFFFFF", Tenant: tenantSlug})
	assert.ErrorIs(t, err, domain.ErrWorkerNotFound)
}

func TestRecordScan_EveryScansKept(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	tenantSlug, rfid := setupScanWorker(t, ctx, db)

	svc := newTestService(t, db)
	req := domain.RecordScanRequest{RFID: rfid, Tenant: tenantSlug}
	for i := 0; i < 4; i++ {
		_, err := svc.RecordScan(ctx, req)
		require.NoError(t, err)
	}

	records, err := svc.ListByWorker(ctx, domain.WorkerListRequest{RFID: rfid, Tenant: tenantSlug})
	require.NoError(t, err)
	assert.Len(t, records, 4)
}
