package session

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
)

// sweepInterval как часто Set вычищает истекшие записи
const sweepInterval = time.Minute

type memoryItem struct {
	session   domain.Session
	expiresAt time.Time // нулевое значение - без срока
}

// MemoryStore хранилище сессий в памяти процесса
type MemoryStore struct {
	mu        sync.Mutex
	items     map[string]memoryItem
	lastSweep time.Time
	now       func() time.Time
}

// NewMemoryStore создает пустое хранилище
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]memoryItem),
		now:   time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[key]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !item.expiresAt.IsZero() && !s.now().Before(item.expiresAt) {
		delete(s.items, key)
		return nil, ErrSessionNotFound
	}

	session := item.session
	return &session, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, session *domain.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= sweepInterval {
		s.sweep(now)
	}

	item := memoryItem{session: *session}
	if ttl > 0 {
		item.expiresAt = now.Add(ttl)
	}
	s.items[key] = item
	return nil
}

// sweep вызывается под s.mu
func (s *MemoryStore) sweep(now time.Time) {
	for key, item := range s.items {
		if !item.expiresAt.IsZero() && !now.Before(item.expiresAt) {
			delete(s.items, key)
		}
	}
	s.lastSweep = now
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

// Len количество записей (включая еще не вычищенные истекшие)
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
