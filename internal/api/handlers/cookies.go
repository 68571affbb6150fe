package handlers

import (
	"net/http"
	"time"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
)

// CookieOptions атрибуты cookie сессии
type CookieOptions struct {
	Secure   bool
	SameSite http.SameSite
	MaxAge   time.Duration
}

// TokenFromRequest значение cookie auth_token (пустая строка, если нет)
func TokenFromRequest(r *http.Request) string {
	return cookieValue(r, domain.CookieAuthToken)
}

// RoleFromRequest значение cookie user_role (пустая строка, если нет)
func RoleFromRequest(r *http.Request) string {
	return cookieValue(r, domain.CookieUserRole)
}

// SetSessionCookies выставляет auth_token и user_role.
// Пустая роль cookie user_role не создает.
func SetSessionCookies(w http.ResponseWriter, opts CookieOptions, token, role string) {
	for name, value := range map[string]string{
		domain.CookieAuthToken: token,
		domain.CookieUserRole:  role,
	} {
		if value == "" {
			continue
		}
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    value,
			Path:     "/",
			HttpOnly: true,
			Secure:   opts.Secure,
			SameSite: opts.SameSite,
			MaxAge:   int(opts.MaxAge.Seconds()),
		})
	}
}

// ClearSessionCookies удаляет auth_token и user_role
func ClearSessionCookies(w http.ResponseWriter, opts CookieOptions) {
	for _, name := range []string{domain.CookieAuthToken, domain.CookieUserRole} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			Secure:   opts.Secure,
			SameSite: opts.SameSite,
			Expires:  time.Unix(0, 0),
			MaxAge:   -1,
		})
	}
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
