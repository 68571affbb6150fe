package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/DriveTail-Dashboard/internal/api/handlers"
)

// GateConfig пути и роль гейта страниц дашборда
type GateConfig struct {
	AdminRole     string
	LoginPath     string
	DashboardPath string
}

// Gate пропускает к страницам дашборда только администратора.
//
// /dashboard и /dashboard/* без cookie auth_token или с user_role, отличной от
// администраторской, перенаправляются на /login?redirect=<путь>.
// Авторизованный администратор, открывший /login, перенаправляется на /dashboard.
// Остальные пути пропускаются без проверок.
func Gate(cfg GateConfig) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			isAdmin := handlers.TokenFromRequest(r) != "" && handlers.RoleFromRequest(r) == cfg.AdminRole

			switch {
			case isDashboardPath(path, cfg.DashboardPath):
				if !isAdmin {
					target := cfg.LoginPath + "?redirect=" + url.QueryEscape(path)
					http.Redirect(w, r, target, http.StatusTemporaryRedirect)
					return
				}
			case path == cfg.LoginPath:
				if isAdmin {
					http.Redirect(w, r, cfg.DashboardPath, http.StatusTemporaryRedirect)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isDashboardPath(path, dashboard string) bool {
	return path == dashboard || strings.HasPrefix(path, dashboard+"/")
}
