package scoring

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracklabs/workforce-backend-go/internal/domain/task"
	"github.com/tracklabs/workforce-backend-go/internal/domain/topic"
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

func newTestService(t *testing.T, db *database.DB) task.ScoringService {
	t.Helper()
	return NewScoringService(
		db,
		false,
		postgresql.NewTaskRepository(db),
		postgresql.NewTopicRepository(db),
		postgresql.NewWorkerRepository(db),
	)
}

func setupScoringWorker(t *testing.T, ctx context.Context, db *database.DB) (tenantSlug string, workerID string) {
	t.Helper()
	tenantSlug = fmt.Sprintf("score%d-%d", time.Now().Unix(), time.Now().Nanosecond())
	_, err := db.Exec(ctx, "INSERT INTO tenants (slug, name) VALUES ($1, $1)", tenantSlug)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = db.Exec(ctx, "DELETE FROM tasks WHERE tenant = $1", tenantSlug)
		_, _ = db.Exec(ctx, "DELETE FROM topics WHERE tenant = $1", tenantSlug)
		_, _ = db.Exec(ctx, "DELETE FROM workers WHERE tenant = $1", tenantSlug)
		_, _ = db.Exec(ctx, "DELETE FROM tenants WHERE slug = $1", tenantSlug)
	})

	w, err := postgresql.NewWorkerRepository(db).Create(ctx, worker.Worker{
		Tenant:       tenantSlug,
		Name:         "Score Worker",
		Username:     fmt.Sprintf("scorer-%d", time.Now().UnixNano()),
		Email:        fmt.Sprintf("score%d@example.com", time.Now().UnixNano()),
		PasswordHash: "$2a$10$invalidhashforscoretests0000000000000000000000000000",
	})
	require.NoError(t, err)
	return tenantSlug, w.ID
}

func createScoringTopic(t *testing.T, ctx context.Context, db *database.DB, tenantSlug string, points int) topic.Topic {
	t.Helper()
	tp, err := postgresql.NewTopicRepository(db).Create(ctx, topic.Topic{
		Tenant:     tenantSlug,
		Name:       fmt.Sprintf("bonus-%d", time.Now().UnixNano()),
		Points:     points,
		Department: topic.DepartmentAll,
	})
	require.NoError(t, err)
	return tp
}

// taskPointSum recomputes a worker's total from its task rows, the way the
// running counter is defined: every non-custom task plus approved customs.
func taskPointSum(t *testing.T, ctx context.Context, svc task.ScoringService, workerID string, tenantSlug string) int {
	t.Helper()
	tasks, err := svc.ListByWorker(ctx, workerID, tenantSlug)
	require.NoError(t, err)
	sum := 0
	for _, tk := range tasks {
		if !tk.IsCustom || tk.Status == string(task.StatusApproved) {
			sum += tk.Points
		}
	}
	return sum
}

func TestSubmitTask_TotalsMatchTaskSum(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	tenantSlug, workerID := setupScoringWorker(t, ctx, db)
	tp := createScoringTopic(t, ctx, db, tenantSlug, 10)

	svc := newTestService(t, db)

	// Malformed and unknown topic ids are dropped, not rejected.
	first, err := svc.SubmitTask(ctx, task.SubmitTaskRequest{
		WorkerID: workerID,
		Tenant:   tenantSlug,
		Data:     map[string]interface{}{"pushups": "5", "mood": "great"},
		TopicIDs: []string{tp.ID, "not-a-uuid", "123e4567-e89b-12d3-a456-426614174000"},
	})
	require.NoError(t, err)
	assert.Equal(t, 15, first.Points)
	assert.Equal(t, []string{tp.ID}, first.TopicIDs)

	second, err := svc.SubmitTask(ctx, task.SubmitTaskRequest{
		WorkerID: workerID,
		Tenant:   tenantSlug,
		Data:     map[string]interface{}{"laps": float64(3)},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, second.Points)

	totals, err := svc.GetTotals(ctx, workerID, tenantSlug)
	require.NoError(t, err)
	assert.Equal(t, 18, totals.TotalPoints)
	assert.Equal(t, 10, totals.TopicPoints)
	assert.Equal(t, taskPointSum(t, ctx, svc, workerID, tenantSlug), totals.TotalPoints)
}

func TestReviewCustomTask_DecisionIsTerminal(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	tenantSlug, workerID := setupScoringWorker(t, ctx, db)

	svc := newTestService(t, db)

	created, err := svc.SubmitCustomTask(ctx, task.SubmitCustomTaskRequest{
		WorkerID:    workerID,
		Tenant:      tenantSlug,
		Description: "fixed the projector",
	})
	require.NoError(t, err)
	assert.Equal(t, string(task.StatusPending), created.Status)
	assert.Zero(t, created.Points)

	reviewed, err := svc.ReviewCustomTask(ctx, task.ReviewCustomTaskRequest{
		TaskID: created.ID,
		Tenant: tenantSlug,
		Status: string(task.StatusApproved),
		Points: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, reviewed.Points)

	totals, err := svc.GetTotals(ctx, workerID, tenantSlug)
	require.NoError(t, err)
	assert.Equal(t, 7, totals.TotalPoints)

	// A second decision fails and must not credit the worker again.
	_, err = svc.ReviewCustomTask(ctx, task.ReviewCustomTaskRequest{
		TaskID: created.ID,
		Tenant: tenantSlug,
		Status: string(task.StatusApproved),
		Points: 7,
	})
	assert.ErrorIs(t, err, task.ErrAlreadyReviewed)

	_, err = svc.ReviewCustomTask(ctx, task.ReviewCustomTaskRequest{
		TaskID: created.ID,
		Tenant: tenantSlug,
		Status: string(task.StatusRejected),
	})
	assert.ErrorIs(t, err, task.ErrAlreadyReviewed)

	totals, err = svc.GetTotals(ctx, workerID, tenantSlug)
	require.NoError(t, err)
	assert.Equal(t, 7, totals.TotalPoints)
	assert.Equal(t, 7, taskPointSum(t, ctx, svc, workerID, tenantSlug))
}

func TestResetAll_RacesSubmissionsCleanly(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	tenantSlug, workerID := setupScoringWorker(t, ctx, db)

	svc := newTestService(t, db)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.SubmitTask(ctx, task.SubmitTaskRequest{
				WorkerID: workerID,
				Tenant:   tenantSlug,
				Data:     map[string]interface{}{"points": 1},
			})
			assert.NoError(t, err)
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, svc.ResetAll(ctx, tenantSlug))
	}()
	wg.Wait()

	// However the race resolved, no submission may be half-applied: the
	// running total always equals the sum over the surviving task rows.
	totals, err := svc.GetTotals(ctx, workerID, tenantSlug)
	require.NoError(t, err)
	assert.Equal(t, taskPointSum(t, ctx, svc, workerID, tenantSlug), totals.TotalPoints)

	require.NoError(t, svc.ResetAll(ctx, tenantSlug))

	totals, err = svc.GetTotals(ctx, workerID, tenantSlug)
	require.NoError(t, err)
	assert.Zero(t, totals.TotalPoints)
	assert.Zero(t, totals.TopicPoints)

	tasks, err := svc.ListByWorker(ctx, workerID, tenantSlug)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
