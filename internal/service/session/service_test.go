package session

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
	sessionCache "github.com/m04kA/DriveTail-Dashboard/internal/infra/cache/session"
	"github.com/m04kA/DriveTail-Dashboard/internal/integrations/backend"
	"github.com/m04kA/DriveTail-Dashboard/pkg/logger"
)

type fakeClient struct {
	calls   int
	session *domain.Session
	err     error
}

func (c *fakeClient) GetSession(context.Context, string) (*domain.Session, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	s := *c.session
	return &s, nil
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (*domain.Session, error) {
	return nil, errors.New("connection refused")
}
func (brokenStore) Set(context.Context, string, *domain.Session, time.Duration) error {
	return errors.New("connection refused")
}
func (brokenStore) Delete(context.Context, string) error { return errors.New("connection refused") }

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

func adminSession() *domain.Session {
	return &domain.Session{User: domain.User{ID: "u1", Email: "admin@drivetail.io", Role: domain.RoleAdmin}}
}

func TestService_LoadCachesSession(t *testing.T) {
	client := &fakeClient{session: adminSession()}
	store := sessionCache.NewMemoryStore()
	svc := NewService(store, client, 24*time.Hour, "", logger.NewNop())

	first, err := svc.Load(context.Background(), "tok")
	require.NoError(t, err)
	second, err := svc.Load(context.Background(), "tok")
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, first.User, second.User)

	cached, err := store.Get(context.Background(), Key("tok"))
	require.NoError(t, err)
	assert.Empty(t, cached.Token)
}

func TestService_LoadWithoutToken(t *testing.T) {
	svc := NewService(sessionCache.NewMemoryStore(), &fakeClient{}, time.Hour, "", logger.NewNop())
	_, err := svc.Load(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestService_RefreshNonAdmin(t *testing.T) {
	s := adminSession()
	s.User.Role = "user"
	store := sessionCache.NewMemoryStore()
	svc := NewService(store, &fakeClient{session: s}, time.Hour, "", logger.NewNop())

	_, err := svc.Load(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, 0, store.Len())
}

func TestService_RefreshRejected(t *testing.T) {
	store := sessionCache.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), Key("tok"), adminSession(), 0))

	client := &fakeClient{err: &backend.RequestError{StatusCode: http.StatusUnauthorized, Message: "expired"}}
	svc := NewService(store, client, time.Hour, "", logger.NewNop())

	_, err := svc.Refresh(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 0, store.Len())
}

func TestService_RefreshTransportError(t *testing.T) {
	client := &fakeClient{err: backend.ErrTransport}
	svc := NewService(sessionCache.NewMemoryStore(), client, time.Hour, "", logger.NewNop())

	_, err := svc.Refresh(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, backend.ErrTransport)
}

func TestService_BrokenStoreFallsBackToBackend(t *testing.T) {
	client := &fakeClient{session: adminSession()}
	svc := NewService(brokenStore{}, client, time.Hour, "", logger.NewNop())

	session, err := svc.Load(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "u1", session.User.ID)

	assert.ErrorIs(t, svc.Clear(context.Background(), "tok"), ErrInternal)
}

func TestService_ExpiredCacheRefreshes(t *testing.T) {
	clock := &fixedTime{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	expired := adminSession()
	past := clock.now.Add(-time.Minute)
	expired.ExpiresAt = &past

	store := sessionCache.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), Key("tok"), expired, 0))

	client := &fakeClient{session: adminSession()}
	svc := NewService(store, client, time.Hour, "", logger.NewNop())
	svc.timeProvider = clock

	_, err := svc.Load(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, 1, client.calls)
}

func TestService_SaveAndClear(t *testing.T) {
	store := sessionCache.NewMemoryStore()
	svc := NewService(store, &fakeClient{}, time.Hour, "", logger.NewNop())

	require.NoError(t, svc.Save(context.Background(), "tok", adminSession()))
	assert.Equal(t, 1, store.Len())

	require.NoError(t, svc.Clear(context.Background(), "tok"))
	assert.Equal(t, 0, store.Len())
}

func TestKey(t *testing.T) {
	assert.Len(t, Key("tok"), 64)
	assert.Equal(t, Key("tok"), Key("tok"))
	assert.NotEqual(t, Key("tok"), Key("tok2"))
}

func TestService_Authorize(t *testing.T) {
	svc := NewService(sessionCache.NewMemoryStore(), &fakeClient{}, time.Hour, "superadmin", logger.NewNop())

	assert.ErrorIs(t, svc.Authorize(&adminSession().User), ErrForbidden)
	assert.ErrorIs(t, svc.Authorize(nil), ErrForbidden)
	assert.NoError(t, svc.Authorize(&domain.User{Role: "superadmin"}))
	assert.Equal(t, "superadmin", svc.AdminRole())
}
