package session

import "errors"

var (
	// ErrUnauthorized возвращается, когда токена нет или бэкенд не признает сессию
	ErrUnauthorized = errors.New("session: unauthorized")

	// ErrForbidden возвращается, когда пользователь не администратор
	ErrForbidden = errors.New("session: forbidden")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("session: internal error")
)
