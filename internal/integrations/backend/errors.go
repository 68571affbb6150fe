package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport возвращается, когда бэкенд недоступен (сеть, таймаут, обрыв чтения)
	ErrTransport = errors.New("backend client: transport error")

	// ErrInvalidResponse возвращается, когда ответ бэкенда не удалось разобрать
	ErrInvalidResponse = errors.New("backend client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("backend client: internal error")
)

// RequestError бэкенд ответил статусом вне 2xx
type RequestError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("backend responded %d: %s", e.StatusCode, e.Message)
}

// AsRequestError извлекает RequestError из цепочки ошибок
func AsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}
