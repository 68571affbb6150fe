package activity

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
)

// DefaultMemoryCapacity сколько записей хранит журнал в памяти
const DefaultMemoryCapacity = 500

// MemoryRepository журнал в памяти: кольцевой буфер фиксированной емкости
type MemoryRepository struct {
	mu      sync.Mutex
	entries []domain.ActivityEntry
	next    int
	full    bool
}

// NewMemoryRepository создает журнал на capacity записей
func NewMemoryRepository(capacity int) *MemoryRepository {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &MemoryRepository{entries: make([]domain.ActivityEntry, capacity)}
}

func (r *MemoryRepository) Create(_ context.Context, entry *domain.ActivityEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[r.next] = *entry
	r.next = (r.next + 1) % len(r.entries)
	if r.next == 0 {
		r.full = true
	}
	return nil
}

func (r *MemoryRepository) List(_ context.Context, filter domain.ActivityFilter) ([]domain.ActivityEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	limit := filter.NormalizedLimit()
	out := make([]domain.ActivityEntry, 0, limit)

	// от последней записанной к самой старой
	for i := 0; i < r.size() && len(out) < limit; i++ {
		idx := (r.next - 1 - i + len(r.entries)) % len(r.entries)
		e := r.entries[idx]
		if filter.Resource != nil && e.Resource != *filter.Resource {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *MemoryRepository) DeleteOlderThan(_ context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]domain.ActivityEntry, 0, r.size())
	var removed int64
	for i := r.size() - 1; i >= 0; i-- {
		idx := (r.next - 1 - i + len(r.entries)) % len(r.entries)
		if r.entries[idx].CreatedAt.Before(before) {
			removed++
			continue
		}
		kept = append(kept, r.entries[idx])
	}

	capacity := len(r.entries)
	r.entries = make([]domain.ActivityEntry, capacity)
	copy(r.entries, kept)
	r.next = len(kept) % capacity
	r.full = len(kept) == capacity
	return removed, nil
}

func (r *MemoryRepository) size() int {
	if r.full {
		return len(r.entries)
	}
	return r.next
}
