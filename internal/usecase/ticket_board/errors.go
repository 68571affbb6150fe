package ticket_board

import "errors"

var (
	// ErrGestureInProgress возвращается, когда предыдущее перетаскивание еще не завершено
	ErrGestureInProgress = errors.New("ticket_board: gesture in progress")

	// ErrTicketNotFound возвращается, когда тикета нет на доске
	ErrTicketNotFound = errors.New("ticket_board: ticket not found")

	// ErrUnknownStatus возвращается, когда колонки с таким статусом нет
	ErrUnknownStatus = errors.New("ticket_board: unknown status")

	// ErrGestureSettled возвращается при операциях над завершенным жестом
	ErrGestureSettled = errors.New("ticket_board: gesture already settled")

	// ErrUpdateFailed возвращается, когда бэкенд не принял смену статуса (изменение откачено)
	ErrUpdateFailed = errors.New("ticket_board: status update failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("ticket_board: internal error")
)
