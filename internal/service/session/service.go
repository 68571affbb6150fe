package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
	sessionCache "github.com/m04kA/DriveTail-Dashboard/internal/infra/cache/session"
	"github.com/m04kA/DriveTail-Dashboard/internal/integrations/backend"
)

// Service контекст сессии администратора: кэш поверх GET /api/auth/get-session
type Service struct {
	store        Store
	client       BackendClient
	ttl          time.Duration
	adminRole    string
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса сессий
// Пустой adminRole означает роль по умолчанию (domain.RoleAdmin).
func NewService(store Store, client BackendClient, ttl time.Duration, adminRole string, logger Logger) *Service {
	if adminRole == "" {
		adminRole = domain.RoleAdmin
	}
	return &Service{
		store:        store,
		client:       client,
		ttl:          ttl,
		adminRole:    adminRole,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Load возвращает сессию из кэша, при промахе запрашивает бэкенд
func (s *Service) Load(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	cached, err := s.store.Get(ctx, Key(token))
	switch {
	case err == nil:
		if !cached.IsExpired(s.timeProvider.Now()) {
			return cached, nil
		}
		s.logger.Info("Load: cached session of %s expired", cached.User.Email)
	case errors.Is(err, sessionCache.ErrSessionNotFound):
	default:
		s.logger.Warn("Load: session cache unavailable, falling back to backend: %v", err)
	}

	return s.Refresh(ctx, token)
}

// Refresh запрашивает сессию у бэкенда и обновляет кэш
func (s *Service) Refresh(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	session, err := s.client.GetSession(ctx, token)
	if err != nil {
		if reqErr, ok := backend.AsRequestError(err); ok {
			if reqErr.StatusCode == http.StatusUnauthorized || reqErr.StatusCode == http.StatusForbidden {
				s.logger.Warn("Refresh: backend rejected session: %d %s", reqErr.StatusCode, reqErr.Message)
				s.forget(ctx, token)
				return nil, ErrUnauthorized
			}
		}
		s.logger.Error("Refresh: failed to get session: %v", err)
		return nil, fmt.Errorf("%w: failed to get session: %w", ErrInternal, err)
	}

	if err := s.Authorize(&session.User); err != nil {
		s.logger.Warn("Refresh: user %s has role %q, access denied", session.User.Email, session.User.Role)
		s.forget(ctx, token)
		return nil, err
	}

	if err := s.Save(ctx, token, session); err != nil {
		s.logger.Warn("Refresh: %v", err)
	}

	return session, nil
}

// Authorize проверяет, что пользователь администратор
func (s *Service) Authorize(user *domain.User) error {
	if user == nil || user.Role != s.adminRole {
		return ErrForbidden
	}
	return nil
}

// AdminRole роль, которой разрешен доступ к дашборду
func (s *Service) AdminRole() string {
	return s.adminRole
}

// Save кладет сессию в кэш. TTL не превышает срок жизни сессии на бэкенде.
func (s *Service) Save(ctx context.Context, token string, session *domain.Session) error {
	if token == "" || session == nil {
		return nil
	}

	ttl := s.ttl
	if session.ExpiresAt != nil {
		left := session.ExpiresAt.Sub(s.timeProvider.Now())
		if left <= 0 {
			return nil
		}
		if ttl <= 0 || left < ttl {
			ttl = left
		}
	}

	stored := *session
	stored.Token = ""
	if err := s.store.Set(ctx, Key(token), &stored, ttl); err != nil {
		return fmt.Errorf("%w: failed to cache session: %w", ErrInternal, err)
	}
	return nil
}

// Clear удаляет сессию из кэша
func (s *Service) Clear(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.store.Delete(ctx, Key(token)); err != nil {
		s.logger.Error("Clear: failed to delete session: %v", err)
		return fmt.Errorf("%w: failed to delete session: %w", ErrInternal, err)
	}
	return nil
}

func (s *Service) forget(ctx context.Context, token string) {
	if err := s.store.Delete(ctx, Key(token)); err != nil {
		s.logger.Warn("forget: failed to delete session: %v", err)
	}
}

// Key ключ хранилища: токен в открытом виде не сохраняется
func Key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
