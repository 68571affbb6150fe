package activity

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
)

const (
	recordTimeout = 3 * time.Second
	queueSize     = 256
)

// Service журнал успешных изменений, прошедших через дашборд.
// Записи пишутся в хранилище фоновым воркером, Record не ждет репозиторий.
type Service struct {
	repo    Repository
	metrics MetricsCollector
	logger  Logger
	now     func() time.Time

	mu     sync.RWMutex
	closed bool
	queue  chan job
	done   chan struct{}
}

// job запись журнала либо барьер Flush (entry == nil)
type job struct {
	entry *domain.ActivityEntry
	ack   chan struct{}
}

// NewService создает сервис и запускает воркер записи
func NewService(repo Repository, metrics MetricsCollector, logger Logger) *Service {
	s := &Service{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
		queue:   make(chan job, queueSize),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

// Record ставит запись в очередь и сразу возвращается.
// Ошибки только логируются: журнал не должен ломать запрос.
// При переполненной очереди или после Close запись отбрасывается.
func (s *Service) Record(_ context.Context, entry domain.ActivityEntry) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		s.drop(entry, "journal closed")
		return
	}

	select {
	case s.queue <- job{entry: &entry}:
	default:
		s.drop(entry, "queue full")
	}
}

// Flush ждет, пока будут сохранены все записи, принятые до вызова
func (s *Service) Flush(ctx context.Context) error {
	ack := make(chan struct{})

	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return s.wait(ctx, s.done)
	}
	select {
	case s.queue <- job{ack: ack}:
		s.mu.RUnlock()
	case <-ctx.Done():
		s.mu.RUnlock()
		return ctx.Err()
	}

	return s.wait(ctx, ack)
}

// Close перестает принимать записи и дожидается сохранения очереди
func (s *Service) Close(ctx context.Context) error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.mu.Unlock()

	return s.wait(ctx, s.done)
}

func (s *Service) wait(ctx context.Context, ch <-chan struct{}) error {
	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) run() {
	defer close(s.done)
	for j := range s.queue {
		if j.entry == nil {
			close(j.ack)
			continue
		}
		s.save(*j.entry)
	}
}

func (s *Service) save(entry domain.ActivityEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	if err := s.repo.Create(ctx, &entry); err != nil {
		s.logger.Error("Record: failed to save %s %s: %v", entry.Method, entry.Resource, err)
		s.incError()
	}
}

func (s *Service) drop(entry domain.ActivityEntry, reason string) {
	s.logger.Warn("Record: dropped %s %s: %s", entry.Method, entry.Resource, reason)
	s.incError()
}

func (s *Service) incError() {
	if s.metrics != nil {
		s.metrics.IncActivityError()
	}
}

// List последние записи журнала, новые первыми
func (s *Service) List(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityEntry, error) {
	filter.Limit = filter.NormalizedLimit()

	entries, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: failed to list activity: %v", err)
		return nil, fmt.Errorf("%w: failed to list activity: %v", ErrInternal, err)
	}
	return entries, nil
}

// Prune удаляет записи старше retention
func (s *Service) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, nil
	}

	removed, err := s.repo.DeleteOlderThan(ctx, s.now().Add(-retention))
	if err != nil {
		s.logger.Error("Prune: failed to delete old entries: %v", err)
		return 0, fmt.Errorf("%w: failed to prune activity: %v", ErrInternal, err)
	}
	if removed > 0 {
		s.logger.Info("Prune: removed %d entries older than %s", removed, retention)
	}
	return removed, nil
}
