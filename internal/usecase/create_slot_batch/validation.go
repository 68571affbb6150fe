package create_slot_batch

import (
	"fmt"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
)

// validateRequest проверяет параметры до обращения к бэкенду
func validateRequest(req *Request) error {
	if req.RangeStart.IsZero() || req.RangeEnd.IsZero() {
		return fmt.Errorf("%w: date range is required", ErrMalformedInput)
	}

	batch := req.toDomain()

	days := batch.Days()
	if days == 0 {
		return ErrInvalidDateRange
	}
	if days > domain.MaxSlotBatchDays {
		return fmt.Errorf("%w: %d days, at most %d allowed", ErrRangeTooLong, days, domain.MaxSlotBatchDays)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: %s-%s", ErrInvalidTimeWindow, req.StartTime, req.EndTime)
	}

	if req.IntervalMinutes < domain.MinSlotIntervalMinutes {
		return fmt.Errorf("%w: minutes must be at least %d", ErrInvalidInterval, domain.MinSlotIntervalMinutes)
	}

	// Интервал длиннее окна не даст ни одного слота
	if batch.SlotsPerDay() == 0 {
		return fmt.Errorf("%w: %d minutes do not fit into %s-%s", ErrInvalidInterval, req.IntervalMinutes, req.StartTime, req.EndTime)
	}

	return nil
}
