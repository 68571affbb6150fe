package backend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
)

// Request исходящий запрос к бэкенду
type Request struct {
	Method string
	Path   string // например /api/ticket/12
	Query  url.Values
	Body   []byte
	Token  string // bearer токен из cookie; пустой - без Authorization
}

// Response сырой ответ бэкенда
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK true для статусов 2xx
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// TotalCount значение заголовка X-Total-Count, если он есть
func (r *Response) TotalCount() (int, bool) {
	raw := r.Header.Get(domain.HeaderTotalCount)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Message достает текст ошибки из тела ({"message"} или {"error"})
func (r *Response) Message(fallback string) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(r.Body, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return fallback
}

// AsError превращает не-2xx ответ в RequestError
func (r *Response) AsError(fallback string) error {
	if r.OK() {
		return nil
	}
	return &RequestError{
		StatusCode: r.StatusCode,
		Message:    r.Message(fallback),
		Body:       r.Body,
	}
}

// SignInRequest учетные данные администратора
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse ответ бэкенда на вход
type AuthResponse struct {
	User     *domain.User    `json:"user,omitempty"`
	Token    string          `json:"token,omitempty"`
	Redirect bool            `json:"redirect,omitempty"`
	Raw      json.RawMessage `json:"-"`
}

// UsersPage нормализованный список пользователей
type UsersPage struct {
	Users []domain.User `json:"users"`
	Total int           `json:"total"`
}

// NormalizeUsers приводит ответ list-users к единой форме.
// Бэкенд возвращает то голый массив, то объект {"users": [...], "total": N}.
func NormalizeUsers(body []byte) (*UsersPage, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || trimmed == "null" {
		return &UsersPage{Users: []domain.User{}}, nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var users []domain.User
		if err := json.Unmarshal(body, &users); err != nil {
			return nil, fmt.Errorf("%w: users array: %v", ErrInvalidResponse, err)
		}
		return &UsersPage{Users: users, Total: len(users)}, nil
	}

	var wrapped struct {
		Users []domain.User `json:"users"`
		Total *int          `json:"total"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("%w: users object: %v", ErrInvalidResponse, err)
	}
	if wrapped.Users == nil {
		wrapped.Users = []domain.User{}
	}

	page := &UsersPage{Users: wrapped.Users, Total: len(wrapped.Users)}
	if wrapped.Total != nil {
		page.Total = *wrapped.Total
	}
	return page, nil
}

// TicketsPage список тикетов с общим количеством из X-Total-Count
type TicketsPage struct {
	Tickets []domain.Ticket
	Total   int
}
