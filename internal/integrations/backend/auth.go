package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
)

// SignIn выполняет вход по email/паролю
func (c *Client) SignIn(ctx context.Context, creds SignInRequest) (*AuthResponse, error) {
	var auth AuthResponse
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/sign-in/email", "", creds, &auth, "Authentication failed")
	if err != nil {
		return nil, err
	}
	auth.Raw = json.RawMessage(resp.Body)
	return &auth, nil
}

// GetSession получает сессию по токену
func (c *Client) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	var payload struct {
		User    *domain.User `json:"user"`
		Session *struct {
			Token     string `json:"token"`
			ExpiresAt string `json:"expiresAt"`
		} `json:"session"`
	}

	if _, err := c.doJSON(ctx, http.MethodGet, "/api/auth/get-session", token, nil, &payload, "Failed to fetch session"); err != nil {
		return nil, err
	}

	if payload.User == nil {
		return nil, &RequestError{StatusCode: http.StatusUnauthorized, Message: "no active session"}
	}

	session := &domain.Session{User: *payload.User, Token: token}
	if payload.Session != nil {
		if exp, ok := parseExpiry(payload.Session.ExpiresAt); ok {
			session.ExpiresAt = &exp
		}
	}
	return session, nil
}

// SignOut завершает сессию на бэкенде
func (c *Client) SignOut(ctx context.Context, token string) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/api/auth/sign-out", token, nil, nil, "Failed to sign out")
	return err
}

// ListUsers получает пользователей и нормализует форму ответа
func (c *Client) ListUsers(ctx context.Context, token string, query url.Values) (*UsersPage, error) {
	resp, err := c.Do(ctx, &Request{Method: http.MethodGet, Path: "/api/auth/admin/list-users", Query: query, Token: token})
	if err != nil {
		return nil, err
	}
	if err := resp.AsError("Failed to fetch users"); err != nil {
		return nil, err
	}

	page, err := NormalizeUsers(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return page, nil
}
