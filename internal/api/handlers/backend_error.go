package handlers

import (
	"net"
	"net/http"
	"strings"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
	"github.com/m04kA/DriveTail-Dashboard/internal/integrations/backend"
)

// RespondBackendError пересылает отказ бэкенда (статус и сообщение),
// остальные ошибки превращает в 500. Возвращает true, если это был отказ бэкенда.
func RespondBackendError(w http.ResponseWriter, err error, fallback string) bool {
	if reqErr, ok := backend.AsRequestError(err); ok {
		message := reqErr.Message
		if message == "" {
			message = fallback
		}
		RespondError(w, reqErr.StatusCode, message)
		return true
	}
	RespondInternalError(w)
	return false
}

// RelayTotalCount копирует X-Total-Count из ответа бэкенда
func RelayTotalCount(w http.ResponseWriter, resp *backend.Response) {
	if v := resp.Header.Get(domain.HeaderTotalCount); v != "" {
		w.Header().Set(domain.HeaderTotalCount, v)
		w.Header().Add("Access-Control-Expose-Headers", domain.HeaderTotalCount)
	}
}

// ClientIP адрес клиента. Заголовки прокси учитываются только при trustProxy,
// иначе клиент может подставить любой адрес.
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if v := strings.TrimSpace(r.Header.Get("X-Real-IP")); v != "" {
			return v
		}
		if v := r.Header.Get("X-Forwarded-For"); v != "" {
			first, _, _ := strings.Cut(v, ",")
			if first = strings.TrimSpace(first); first != "" {
				return first
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
