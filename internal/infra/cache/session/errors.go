package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессии нет в хранилище или она истекла
	ErrSessionNotFound = errors.New("session.cache: session not found")

	// ErrEncode возвращается при ошибке сериализации сессии
	ErrEncode = errors.New("session.cache: failed to encode session")

	// ErrDecode возвращается при ошибке разбора сохраненной сессии
	ErrDecode = errors.New("session.cache: failed to decode session")

	// ErrStorage возвращается при ошибках хранилища
	ErrStorage = errors.New("session.cache: storage error")
)
