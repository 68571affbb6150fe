package create_slot_batch

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
	"github.com/m04kA/DriveTail-Dashboard/pkg/types"
)

// ParseForm собирает запрос из полей формы: даты YYYY-MM-DD, время HH:MM
func ParseForm(dateFrom, dateTo, startTime, endTime string, minutes int) (*Request, error) {
	from, err := parseDate(dateFrom, "dateFrom")
	if err != nil {
		return nil, err
	}
	to, err := parseDate(dateTo, "dateTo")
	if err != nil {
		return nil, err
	}

	start, err := types.NewTimeStringFromString(strings.TrimSpace(startTime))
	if err != nil {
		return nil, fmt.Errorf("%w: startTime %q", ErrMalformedInput, startTime)
	}
	end, err := types.NewTimeStringFromString(strings.TrimSpace(endTime))
	if err != nil {
		return nil, fmt.Errorf("%w: endTime %q", ErrMalformedInput, endTime)
	}

	return &Request{
		RangeStart:      from,
		RangeEnd:        to,
		StartTime:       start,
		EndTime:         end,
		IntervalMinutes: minutes,
	}, nil
}

// ParseWire собирает запрос из формы бэкенда: inicio/fin вида YYYY-MM-DDTHH:MM[:SS]
func ParseWire(inicio, fin string, minutes int) (*Request, error) {
	start, err := parseDateTime(inicio, "inicio")
	if err != nil {
		return nil, err
	}
	end, err := parseDateTime(fin, "fin")
	if err != nil {
		return nil, err
	}

	return &Request{
		RangeStart:      start,
		RangeEnd:        end,
		StartTime:       types.NewTimeString(start),
		EndTime:         types.NewTimeString(end),
		IntervalMinutes: minutes,
	}, nil
}

func parseDate(raw, field string) (time.Time, error) {
	d, err := time.Parse(domain.DateFormat, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q", ErrMalformedInput, field, raw)
	}
	return d, nil
}

func parseDateTime(raw, field string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{domain.DateTimeFormat, "2006-01-02T15:04"} {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		// слоты считаются в минутах, секунды потерялись бы молча
		if t.Second() != 0 || t.Nanosecond() != 0 {
			return time.Time{}, fmt.Errorf("%w: %s %q has non-zero seconds", ErrMalformedInput, field, raw)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %s %q", ErrMalformedInput, field, raw)
}
