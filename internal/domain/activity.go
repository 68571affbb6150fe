package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityEntry запись журнала: одна успешная мутация, прошедшая через дашборд
type ActivityEntry struct {
	ID         uuid.UUID `json:"id"`
	Method     string    `json:"method"`
	Resource   string    `json:"resource"`
	ResourceID *string   `json:"resourceId,omitempty"`
	StatusCode int       `json:"statusCode"`
	Actor      *string   `json:"actor,omitempty"` // email администратора, если сессия известна
	Summary    string    `json:"summary,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ActivityFilter параметры выборки журнала
type ActivityFilter struct {
	Resource *string
	Limit    int
}

// NormalizedLimit приводит лимит к допустимому диапазону
func (f ActivityFilter) NormalizedLimit() int {
	switch {
	case f.Limit <= 0:
		return DefaultActivityLimit
	case f.Limit > MaxActivityLimit:
		return MaxActivityLimit
	default:
		return f.Limit
	}
}
