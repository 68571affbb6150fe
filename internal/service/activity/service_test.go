package activity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
	activityRepo "github.com/m04kA/DriveTail-Dashboard/internal/infra/storage/activity"
	"github.com/m04kA/DriveTail-Dashboard/pkg/logger"
	"github.com/m04kA/DriveTail-Dashboard/pkg/ptr"
)

type failingRepo struct {
	ctxErr error
}

func (r *failingRepo) Create(ctx context.Context, _ *domain.ActivityEntry) error {
	r.ctxErr = ctx.Err()
	return errors.New("db down")
}
func (r *failingRepo) List(context.Context, domain.ActivityFilter) ([]domain.ActivityEntry, error) {
	return nil, errors.New("db down")
}
func (r *failingRepo) DeleteOlderThan(context.Context, time.Time) (int64, error) {
	return 0, errors.New("db down")
}

type countingMetrics struct{ errors int }

func (m *countingMetrics) IncActivityError() { m.errors++ }

func TestService_RecordAndList(t *testing.T) {
	svc := NewService(activityRepo.NewMemoryRepository(10), nil, logger.NewNop())
	ctx := context.Background()

	svc.Record(ctx, domain.ActivityEntry{Method: "POST", Resource: "cliente", StatusCode: 201})
	svc.Record(ctx, domain.ActivityEntry{Method: "PATCH", Resource: "ticket", ResourceID: ptr.Ptr("7"), StatusCode: 200})
	require.NoError(t, svc.Flush(ctx))

	entries, err := svc.List(ctx, domain.ActivityFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "ticket", entries[0].Resource)
	assert.NotEqual(t, uuid.Nil, entries[0].ID)
	assert.False(t, entries[0].CreatedAt.IsZero())

	tickets, err := svc.List(ctx, domain.ActivityFilter{Resource: ptr.Ptr("ticket")})
	require.NoError(t, err)
	assert.Len(t, tickets, 1)
}

func TestService_RecordFailureIsSwallowed(t *testing.T) {
	repo := &failingRepo{}
	m := &countingMetrics{}
	svc := NewService(repo, m, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc.Record(ctx, domain.ActivityEntry{Method: "DELETE", Resource: "slot"})
	require.NoError(t, svc.Flush(context.Background()))
	assert.Equal(t, 1, m.errors)
	assert.NoError(t, repo.ctxErr, "record must not inherit request cancellation")

	_, err := svc.List(context.Background(), domain.ActivityFilter{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Prune(t *testing.T) {
	repo := activityRepo.NewMemoryRepository(10)
	svc := NewService(repo, nil, logger.NewNop())
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	svc.Record(context.Background(), domain.ActivityEntry{Resource: "old", CreatedAt: now.Add(-48 * time.Hour)})
	svc.Record(context.Background(), domain.ActivityEntry{Resource: "new", CreatedAt: now.Add(-time.Hour)})
	require.NoError(t, svc.Flush(context.Background()))

	removed, err := svc.Prune(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	removed, err = svc.Prune(context.Background(), 0)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

// blockingRepo держит Create, пока не отпустят release или не истечет контекст
type blockingRepo struct {
	release chan struct{}
	saved   chan domain.ActivityEntry
}

func newBlockingRepo() *blockingRepo {
	return &blockingRepo{release: make(chan struct{}), saved: make(chan domain.ActivityEntry, 8)}
}

func (r *blockingRepo) Create(ctx context.Context, e *domain.ActivityEntry) error {
	select {
	case <-r.release:
		r.saved <- *e
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
func (r *blockingRepo) List(context.Context, domain.ActivityFilter) ([]domain.ActivityEntry, error) {
	return nil, nil
}
func (r *blockingRepo) DeleteOlderThan(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func TestService_RecordDoesNotWaitForRepository(t *testing.T) {
	repo := newBlockingRepo()
	svc := NewService(repo, nil, logger.NewNop())

	start := time.Now()
	svc.Record(context.Background(), domain.ActivityEntry{Method: "PATCH", Resource: "ticket"})
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	close(repo.release)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, svc.Close(ctx))

	require.Len(t, repo.saved, 1)
	assert.Equal(t, "ticket", (<-repo.saved).Resource)
}

func TestService_RecordAfterCloseIsDropped(t *testing.T) {
	repo := activityRepo.NewMemoryRepository(10)
	m := &countingMetrics{}
	svc := NewService(repo, m, logger.NewNop())

	require.NoError(t, svc.Close(context.Background()))
	svc.Record(context.Background(), domain.ActivityEntry{Method: "POST", Resource: "cliente"})

	entries, err := svc.List(context.Background(), domain.ActivityFilter{})
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, 1, m.errors)
	assert.NoError(t, svc.Flush(context.Background()))
}

func TestService_FlushRespectsContext(t *testing.T) {
	repo := newBlockingRepo()
	svc := NewService(repo, nil, logger.NewNop())
	svc.Record(context.Background(), domain.ActivityEntry{Resource: "slot"})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, svc.Flush(ctx), context.DeadlineExceeded)

	close(repo.release)
	require.NoError(t, svc.Close(context.Background()))
}
