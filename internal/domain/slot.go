package domain

import (
	"time"

	"github.com/m04kA/DriveTail-Dashboard/pkg/types"
)

// Slot временной слот, которым владеет бэкенд
type Slot struct {
	ID        int64      `json:"id"`
	Inicio    string     `json:"inicio"` // ISO 8601
	Fin       string     `json:"fin"`    // ISO 8601
	Ocupado   bool       `json:"ocupado"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// SlotBatchRequest параметры пакетного создания слотов
// Диапазон дат включительный с обеих сторон, окно StartTime-EndTime одинаково для каждого дня
type SlotBatchRequest struct {
	RangeStart      time.Time
	RangeEnd        time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	IntervalMinutes int
}

// SlotBatch тело запроса POST /api/slot.batch к бэкенду
type SlotBatch struct {
	Inicio  string `json:"inicio"`
	Fin     string `json:"fin"`
	Minutes int    `json:"minutes"`
}

// SlotWindow один слот, который бэкенд создаст из пакета
type SlotWindow struct {
	Start time.Time
	End   time.Time
}

// Days количество дней в диапазоне (включительно)
func (r SlotBatchRequest) Days() int {
	start := dateOnly(r.RangeStart)
	end := dateOnly(r.RangeEnd)
	if end.Before(start) {
		return 0
	}
	// AddDate вместо деления длительности: дни с переходом на летнее время не равны 24h
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}

// Inicio первый момент пакета: первый день + время начала
func (r SlotBatchRequest) Inicio() time.Time {
	return r.StartTime.On(r.RangeStart)
}

// Fin последний момент пакета: последний день + время окончания
func (r SlotBatchRequest) Fin() time.Time {
	return r.EndTime.On(r.RangeEnd)
}

// ToSlotBatch формирует единый запрос к бэкенду
func (r SlotBatchRequest) ToSlotBatch() SlotBatch {
	return SlotBatch{
		Inicio:  r.Inicio().Format(DateTimeFormat),
		Fin:     r.Fin().Format(DateTimeFormat),
		Minutes: r.IntervalMinutes,
	}
}

// Expand перечисляет слоты, которые должны получиться из пакета.
// Для каждого дня слоты идут с фиксированным шагом от StartTime;
// слот, который не помещается целиком до EndTime, не создается.
func (r SlotBatchRequest) Expand() []SlotWindow {
	if r.IntervalMinutes < MinSlotIntervalMinutes || !r.StartTime.IsBefore(r.EndTime) {
		return []SlotWindow{}
	}

	step := time.Duration(r.IntervalMinutes) * time.Minute
	windows := make([]SlotWindow, 0, r.Days()*r.SlotsPerDay())

	end := dateOnly(r.RangeEnd)
	for day := dateOnly(r.RangeStart); !day.After(end); day = day.AddDate(0, 0, 1) {
		dayClose := r.EndTime.On(day)
		for cur := r.StartTime.On(day); !cur.Add(step).After(dayClose); cur = cur.Add(step) {
			windows = append(windows, SlotWindow{Start: cur, End: cur.Add(step)})
		}
	}

	return windows
}

// SlotsPerDay количество слотов, помещающихся в дневное окно
func (r SlotBatchRequest) SlotsPerDay() int {
	if r.IntervalMinutes < MinSlotIntervalMinutes {
		return 0
	}
	window := r.EndTime.Minutes() - r.StartTime.Minutes()
	if window <= 0 {
		return 0
	}
	return window / r.IntervalMinutes
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
