package domain

import "time"

// User пользователь бэкенда (better-auth)
type User struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name,omitempty"`
	Image     *string `json:"image,omitempty"`
	Role      string  `json:"role,omitempty"`
	Banned    *bool   `json:"banned,omitempty"`
	CreatedAt string  `json:"createdAt,omitempty"`
	UpdatedAt string  `json:"updatedAt,omitempty"`
}

// IsAdmin true для роли администратора
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Session сессия администратора
type Session struct {
	User      User       `json:"user"`
	Token     string     `json:"token,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// IsExpired проверяет срок действия сессии, если бэкенд его сообщил
func (s *Session) IsExpired(now time.Time) bool {
	return s.ExpiresAt != nil && !now.Before(*s.ExpiresAt)
}
