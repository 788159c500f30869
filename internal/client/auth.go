package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/yigit/unidash/internal/app/models"
)

// Session is the result of a successful login
type Session struct {
	User      models.Account
	Token     string
	ExpiresAt time.Time
}

// Login signs in and stores the token for later calls
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var data struct {
		User      json.RawMessage `json:"user"`
		Token     string          `json:"token"`
		ExpiresAt time.Time       `json:"expiresAt"`
	}

	body := map[string]string{"email": email, "password": password}
	if _, err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &data); err != nil {
		return nil, err
	}

	account, err := DecodeAccount(data.User)
	if err != nil {
		return nil, err
	}

	if err := c.store.Set(TokenKey, data.Token); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	return &Session{User: account, Token: data.Token, ExpiresAt: data.ExpiresAt}, nil
}

// Logout forgets the stored token
func (c *Client) Logout() error {
	return c.store.Remove(TokenKey)
}

// LoggedIn reports whether a token is stored
func (c *Client) LoggedIn() bool {
	token, ok := c.store.Get(TokenKey)
	return ok && token != ""
}

// DecodeAccount decodes a user object into the account variant named by its role
func DecodeAccount(raw json.RawMessage) (models.Account, error) {
	var base struct {
		Role models.Role `json:"role"`
	}
	if err := json.Unmarshal(raw, &base); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}

	var account models.Account
	switch base.Role {
	case models.RoleStudent:
		account = &models.Student{}
	case models.RoleLecturer:
		account = &models.Lecturer{}
	case models.RoleAdmin:
		account = &models.Admin{}
	case models.RoleFinance:
		account = &models.FinanceOfficer{}
	default:
		return nil, fmt.Errorf("unknown role %q", base.Role)
	}

	if err := json.Unmarshal(raw, account); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", base.Role, err)
	}
	return account, nil
}
