package create_slot_batch

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation возвращается при некорректных параметрах пакета; бэкенд не вызывается
	ErrValidation = errors.New("create_slot_batch: validation failed")

	// ErrInvalidDateRange дата начала позже даты окончания
	ErrInvalidDateRange = fmt.Errorf("%w: range start is after range end", ErrValidation)

	// ErrInvalidTimeWindow время начала не раньше времени окончания
	ErrInvalidTimeWindow = fmt.Errorf("%w: start time must be before end time", ErrValidation)

	// ErrInvalidInterval интервал меньше минуты или длиннее дневного окна
	ErrInvalidInterval = fmt.Errorf("%w: invalid slot interval", ErrValidation)

	// ErrRangeTooLong диапазон длиннее допустимого
	ErrRangeTooLong = fmt.Errorf("%w: date range is too long", ErrValidation)

	// ErrMalformedInput дата или время не разбираются
	ErrMalformedInput = fmt.Errorf("%w: malformed date or time", ErrValidation)

	// ErrRejected бэкенд отклонил пакет (статус и сообщение в backend.RequestError)
	ErrRejected = errors.New("create_slot_batch: rejected by backend")

	// ErrInternal возвращается при внутренних ошибках и недоступности бэкенда
	ErrInternal = errors.New("create_slot_batch: internal error")
)
