package ticket_board

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
)

type boardState int

const (
	stateIdle boardState = iota
	stateDragging
	stateReconciling
)

// Board локальная канбан-доска тикетов.
// Одновременно активен не более одного жеста.
type Board struct {
	client   BackendClient
	notifier Notifier
	logger   Logger

	mu        sync.Mutex
	state     boardState
	statuses  []domain.TicketStatus
	tickets   []domain.Ticket
	observers map[int]func()
	nextObsID int
}

// NewBoard создает пустую доску
func NewBoard(client BackendClient, notifier Notifier, logger Logger) *Board {
	return &Board{
		client:    client,
		notifier:  notifier,
		logger:    logger,
		observers: make(map[int]func()),
	}
}

// Load загружает статусы и тикеты с бэкенда
func (b *Board) Load(ctx context.Context) error {
	statuses, err := b.client.ListTicketStatuses(ctx)
	if err != nil {
		b.logger.Error("Board: failed to load statuses: %v", err)
		return fmt.Errorf("%w: failed to load statuses: %w", ErrInternal, err)
	}

	page, err := b.client.ListTickets(ctx, url.Values{})
	if err != nil {
		b.logger.Error("Board: failed to load tickets: %v", err)
		return fmt.Errorf("%w: failed to load tickets: %w", ErrInternal, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != stateIdle {
		return ErrGestureInProgress
	}
	b.statuses = append([]domain.TicketStatus(nil), statuses...)
	b.tickets = domain.CloneTickets(page.Tickets)

	b.logger.Info("Board: loaded %d tickets in %d columns", len(b.tickets), len(b.statuses))
	return nil
}

// Replace заменяет список тикетов после повторной загрузки
func (b *Board) Replace(tickets []domain.Ticket) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != stateIdle {
		return ErrGestureInProgress
	}
	b.tickets = domain.CloneTickets(tickets)
	return nil
}

// SetStatuses задает упорядоченный набор колонок
func (b *Board) SetStatuses(statuses []domain.TicketStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.statuses = append([]domain.TicketStatus(nil), statuses...)
}

// Tickets копия текущего списка тикетов
func (b *Board) Tickets() []domain.Ticket {
	b.mu.Lock()
	defer b.mu.Unlock()
	return domain.CloneTickets(b.tickets)
}

// Ticket копия тикета по ID
func (b *Board) Ticket(id int64) (domain.Ticket, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i := b.indexOf(id); i >= 0 {
		return b.tickets[i].Clone(), true
	}
	return domain.Ticket{}, false
}

// Columns группирует тикеты по колонкам в порядке статусов.
// Тикеты с неизвестным статусом не показываются.
func (b *Board) Columns() []Column {
	b.mu.Lock()
	defer b.mu.Unlock()

	columns := make([]Column, len(b.statuses))
	index := make(map[int64]int, len(b.statuses))
	for i, s := range b.statuses {
		columns[i] = Column{Status: s, Tickets: []domain.Ticket{}}
		index[s.ID] = i
	}

	for i := range b.tickets {
		if c, ok := index[b.tickets[i].StatusID()]; ok {
			columns[c].Tickets = append(columns[c].Tickets, b.tickets[i].Clone())
		}
	}
	return columns
}

// Subscribe регистрирует наблюдателя, которого вызывают после подтвержденной смены статуса
func (b *Board) Subscribe(fn func()) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextObsID
	b.nextObsID++
	b.observers[id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.observers, id)
	}
}

// StartDrag начинает жест: запоминает исходный статус и снимок доски
func (b *Board) StartDrag(ticketID int64) (*Gesture, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != stateIdle {
		return nil, ErrGestureInProgress
	}
	if b.indexOf(ticketID) < 0 {
		return nil, fmt.Errorf("%w: id=%d", ErrTicketNotFound, ticketID)
	}

	cmd := newStatusCommand(ticketID, b.tickets)
	b.state = stateDragging

	b.logger.Info("Board: drag started, ticket=%d, status=%d", ticketID, cmd.originalStatus())

	return &Gesture{board: b, cmd: cmd, original: cmd.originalStatus()}, nil
}

func (b *Board) indexOf(ticketID int64) int {
	for i := range b.tickets {
		if b.tickets[i].ID == ticketID {
			return i
		}
	}
	return -1
}

func (b *Board) statusByID(id int64) (domain.TicketStatus, bool) {
	for _, s := range b.statuses {
		if s.ID == id {
			return s, true
		}
	}
	return domain.TicketStatus{}, false
}

func (b *Board) notifyObservers() {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.observers))
	for _, fn := range b.observers {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
