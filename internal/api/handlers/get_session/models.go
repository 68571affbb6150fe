package get_session

import "github.com/m04kA/DriveTail-Dashboard/internal/domain"

// SessionResponse HTTP response model
type SessionResponse struct {
	User      *domain.User `json:"user"`
	ExpiresAt *string      `json:"expiresAt,omitempty"`
	Error     string       `json:"error,omitempty"`
}
