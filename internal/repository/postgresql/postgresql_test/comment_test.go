package postgresql_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracklabs/workforce-backend-go/internal/domain/comment"
	"github.com/tracklabs/workforce-backend-go/internal/repository/postgresql"
)

func createTestComment(t *testing.T, ctx context.Context, repo comment.CommentRepository, workerID string, tenantSlug string) comment.Comment {
	t.Helper()
	c, err := repo.Create(ctx, comment.Comment{
		WorkerID: workerID,
		Tenant:   tenantSlug,
		Text:     "the printer is out of toner",
		IsNew:    true,
		Replies:  []comment.Reply{},
	})
	require.NoError(t, err)
	return c
}

func TestCommentRepository_AppendReply(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	tn := createTestTenant(t, ctx, db)
	w := createTestWorker(t, ctx, db, tn.Slug, "")

	repo := postgresql.NewCommentRepository(db)
	c := createTestComment(t, ctx, repo, w.ID, tn.Slug)

	updated, err := repo.AppendReply(ctx, c.ID, tn.Slug, comment.Reply{
		Text:         "ordered, arrives tomorrow",
		IsAdminReply: true,
		IsNew:        true,
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
	require.Len(t, updated.Replies, 1)
	assert.True(t, updated.HasUnreadAdminReply)
	assert.NotNil(t, updated.LastReplyAt)

	_, err = repo.AppendReply(ctx, "123e4567-e89b-12d3-a456-426614174000", tn.Slug, comment.Reply{
		Text: "nobody home", CreatedAt: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, comment.ErrCommentNotFound)
}

func TestCommentRepository_AppendReply_ConcurrentRepliesAllKept(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	tn := createTestTenant(t, ctx, db)
	w := createTestWorker(t, ctx, db, tn.Slug, "")

	repo := postgresql.NewCommentRepository(db)
	c := createTestComment(t, ctx, repo, w.ID, tn.Slug)

	const replies = 6
	var wg sync.WaitGroup
	for i := 0; i < replies; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := repo.AppendReply(ctx, c.ID, tn.Slug, comment.Reply{
				Text:         fmt.Sprintf("reply %d", n),
				IsAdminReply: n%2 == 0,
				IsNew:        true,
				CreatedAt:    time.Now().UTC(),
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := repo.GetByID(ctx, c.ID, tn.Slug)
	require.NoError(t, err)
	assert.Len(t, got.Replies, replies)
	assert.True(t, got.HasUnreadAdminReply)
	assert.True(t, got.IsNew)
}
