package domain

import (
	"strings"
	"time"
)

// Ref ссылка на справочник бэкенда (estado, importancia, urgencia, servicio)
type Ref struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// UserRef краткие данные исполнителя
type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TicketStatus колонка канбан-доски
type TicketStatus = Ref

// Ticket внутренняя задача/обращение
type Ticket struct {
	ID            int64    `json:"id"`
	Nombre        string   `json:"nombre"`
	Description   *string  `json:"description,omitempty"`
	Desde         *string  `json:"desde,omitempty"`
	Hasta         *string  `json:"hasta,omitempty"`
	CreatedAt     string   `json:"created_at,omitempty"`
	UpdatedAt     string   `json:"updated_at,omitempty"`
	IDServicio    int64    `json:"id_servicio"`
	IDUser        *string  `json:"id_user,omitempty"`
	IDEstado      int64    `json:"id_estado"`
	IDImportancia *int64   `json:"id_importancia,omitempty"`
	IDUrgencia    *int64   `json:"id_urgencia,omitempty"`
	Estado        *Ref     `json:"estado,omitempty"`
	Importancia   *Ref     `json:"importancia,omitempty"`
	Urgencia      *Ref     `json:"urgencia,omitempty"`
	Servicio      *Ref     `json:"servicio,omitempty"`
	User          *UserRef `json:"user,omitempty"`
}

// StatusID текущий статус тикета (0, если статус неизвестен)
func (t *Ticket) StatusID() int64 {
	if t.Estado != nil {
		return t.Estado.ID
	}
	return t.IDEstado
}

// SetStatus меняет статус локально
func (t *Ticket) SetStatus(status TicketStatus) {
	t.IDEstado = status.ID
	t.Estado = &Ref{ID: status.ID, Nombre: status.Nombre}
}

// Clone глубокая копия тикета
func (t Ticket) Clone() Ticket {
	c := t
	c.Description = cloneString(t.Description)
	c.Desde = cloneString(t.Desde)
	c.Hasta = cloneString(t.Hasta)
	c.IDUser = cloneString(t.IDUser)
	c.IDImportancia = cloneInt64(t.IDImportancia)
	c.IDUrgencia = cloneInt64(t.IDUrgencia)
	c.Estado = cloneRef(t.Estado)
	c.Importancia = cloneRef(t.Importancia)
	c.Urgencia = cloneRef(t.Urgencia)
	c.Servicio = cloneRef(t.Servicio)
	if t.User != nil {
		u := *t.User
		c.User = &u
	}
	return c
}

// CloneTickets глубокая копия списка
func CloneTickets(tickets []Ticket) []Ticket {
	out := make([]Ticket, len(tickets))
	for i := range tickets {
		out[i] = tickets[i].Clone()
	}
	return out
}

// TicketStatusUpdate тело PATCH /api/ticket/{id} при смене статуса
type TicketStatusUpdate struct {
	IDEstado int64 `json:"id_estado"`
}

// TicketFilter фильтр списка тикетов (пустые поля не фильтруют)
type TicketFilter struct {
	Search     string
	Status     []int64
	Importance []int64
	Urgency    []int64
	Service    []int64
	User       []string
	DateFrom   *time.Time
	DateTo     *time.Time
}

// IsEmpty true, если фильтр ничего не ограничивает
func (f TicketFilter) IsEmpty() bool {
	return f.Search == "" && len(f.Status) == 0 && len(f.Importance) == 0 &&
		len(f.Urgency) == 0 && len(f.Service) == 0 && len(f.User) == 0 &&
		f.DateFrom == nil && f.DateTo == nil
}

// Matches проверяет тикет по всем условиям фильтра
func (f TicketFilter) Matches(t *Ticket) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		desc := ""
		if t.Description != nil {
			desc = *t.Description
		}
		if !strings.Contains(strings.ToLower(t.Nombre), needle) &&
			!strings.Contains(strings.ToLower(desc), needle) {
			return false
		}
	}

	if len(f.Status) > 0 {
		if t.Estado == nil || !containsInt64(f.Status, t.Estado.ID) {
			return false
		}
	}

	if len(f.Importance) > 0 {
		if t.Importancia == nil || !containsInt64(f.Importance, t.Importancia.ID) {
			return false
		}
	}

	if len(f.Urgency) > 0 {
		if t.Urgencia == nil || !containsInt64(f.Urgency, t.Urgencia.ID) {
			return false
		}
	}

	if len(f.Service) > 0 && !containsInt64(f.Service, t.IDServicio) {
		return false
	}

	if len(f.User) > 0 {
		if t.IDUser == nil || !containsString(f.User, *t.IDUser) {
			return false
		}
	}

	if f.DateFrom != nil {
		from, ok := parseTicketTime(t.Desde)
		if !ok || from.Before(*f.DateFrom) {
			return false
		}
	}

	if f.DateTo != nil {
		to, ok := parseTicketTime(t.Hasta)
		if !ok || to.After(*f.DateTo) {
			return false
		}
	}

	return true
}

// Apply возвращает тикеты, прошедшие фильтр, в исходном порядке
func (f TicketFilter) Apply(tickets []Ticket) []Ticket {
	if f.IsEmpty() {
		return tickets
	}
	out := make([]Ticket, 0, len(tickets))
	for i := range tickets {
		if f.Matches(&tickets[i]) {
			out = append(out, tickets[i])
		}
	}
	return out
}

// parseTicketTime понимает как полные ISO 8601 даты, так и YYYY-MM-DD
func parseTicketTime(s *string) (time.Time, bool) {
	if s == nil || *s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, DateTimeFormat, DateFormat} {
		if t, err := time.Parse(layout, *s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func containsInt64(list []int64, v int64) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func containsString(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt64(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneRef(p *Ref) *Ref {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
