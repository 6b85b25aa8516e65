package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracklabs/workforce-backend-go/internal/domain/tenant"
	"github.com/tracklabs/workforce-backend-go/internal/domain/worker"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/database"
	"github.com/tracklabs/workforce-backend-go/internal/repository/postgresql"
)

var (
	testDB     *database.DB
	testDBOnce sync.Once
)

// testDatabase connects once per run. Tests that need a live database skip
// when TEST_DATABASE_URL is not set.
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

func createTestTenant(t *testing.T, ctx context.Context, db *database.DB) tenant.Tenant {
	t.Helper()
	slug := fmt.Sprintf("t%d-%d", time.Now().Unix(), time.Now().Nanosecond())
	tn, err := postgresql.NewTenantRepository(db).Create(ctx, tenant.Tenant{Slug: slug, Name: slug})
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = db.Exec(ctx, "DELETE FROM tenants WHERE slug = $1", slug)
	})
	return tn
}

func createTestWorker(t *testing.T, ctx context.Context, db *database.DB, tenantSlug string, rfid string) worker.Worker {
	t.Helper()
	repo := postgresql.NewWorkerRepository(db)
	var rfidPtr *string
	if rfid != "" {
		rfidPtr = &rfid
	}
	w, err := repo.Create(ctx, worker.Worker{
		Tenant:       tenantSlug,
		Name:         "Test Worker",
		Username:     fmt.Sprintf("worker-%d", time.Now().UnixNano()),
		Email:        fmt.Sprintf("w%d@example.com", time.Now().UnixNano()),
		RFID:         rfidPtr,
		PasswordHash: "$2a$10$invalidhashforrepotests000000000000000000000000000000",
	})
	require.NoError(t, err)
	return w
}

func TestWorkerRepository_CreateAndGet(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	tn := createTestTenant(t, ctx, db)

	created := createTestWorker(t, ctx, db, tn.Slug, "04A1B2C3")
	assert.NotEmpty(t, created.ID)
	assert.Zero(t, created.TotalPoints)

	repo := postgresql.NewWorkerRepository(db)
	got, err := repo.GetByID(ctx, created.ID, tn.Slug)
	require.NoError(t, err)
	assert.Equal(t, created.Username, got.Username)
	assert.Nil(t, got.LastPresence)
}

func TestWorkerRepository_TenantIsolation(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	tnA := createTestTenant(t, ctx, db)
	tnB := createTestTenant(t, ctx, db)

	w := createTestWorker(t, ctx, db, tnA.Slug, "")

	repo := postgresql.NewWorkerRepository(db)
	_, err := repo.GetByID(ctx, w.ID, tnB.Slug)
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestWorkerRepository_SetLastPresence(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	tn := createTestTenant(t, ctx, db)
	w := createTestWorker(t, ctx, db, tn.Slug, "04FFEE11")

	repo := postgresql.NewWorkerRepository(db)
	require.NoError(t, repo.SetLastPresence(ctx, w.ID, tn.Slug, true))

	got, err := repo.GetByID(ctx, w.ID, tn.Slug)
	require.NoError(t, err)
	require.NotNil(t, got.LastPresence)
	assert.True(t, *got.LastPresence)

	require.NoError(t, repo.SetLastPresence(ctx, w.ID, tn.Slug, false))
	got, err = repo.GetByID(ctx, w.ID, tn.Slug)
	require.NoError(t, err)
	require.NotNil(t, got.LastPresence)
	assert.False(t, *got.LastPresence)
}

func TestWorkerRepository_AddPointsAndReset(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	tn := createTestTenant(t, ctx, db)
	w := createTestWorker(t, ctx, db, tn.Slug, "")

	repo := postgresql.NewWorkerRepository(db)
	require.NoError(t, repo.AddPoints(ctx, w.ID, tn.Slug, 10, 4))
	require.NoError(t, repo.AddPoints(ctx, w.ID, tn.Slug, 5, 0))

	got, err := repo.GetByID(ctx, w.ID, tn.Slug)
	require.NoError(t, err)
	assert.Equal(t, 15, got.TotalPoints)
	assert.Equal(t, 4, got.TopicPoints)

	require.NoError(t, repo.ResetScores(ctx, tn.Slug, w.ID))
	got, err = repo.GetByID(ctx, w.ID, tn.Slug)
	require.NoError(t, err)
	assert.Zero(t, got.TotalPoints)
	assert.Zero(t, got.TopicPoints)
	assert.Nil(t, got.LastSubmissionData)
}

func TestWorkerRepository_UniquenessChecks(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	tn := createTestTenant(t, ctx, db)
	w := createTestWorker(t, ctx, db, tn.Slug, "04CAFE01")

	repo := postgresql.NewWorkerRepository(db)

	exists, err := repo.UsernameExists(ctx, tn.Slug, w.Username, "")
	require.NoError(t, err)
	assert.True(t, exists)

	// Excluding the worker itself makes its own values available again.
	exists, err = repo.UsernameExists(ctx, tn.Slug, w.Username, w.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.RFIDExists(ctx, tn.Slug, "04CAFE01", "")
	require.NoError(t, err)
	assert.True(t, exists)

	// Uniqueness is tenant-scoped, not global.
	other := createTestTenant(t, ctx, db)
	exists, err = repo.UsernameExists(ctx, other.Slug, w.Username, "")
	require.NoError(t, err)
	assert.False(t, exists)
}
