package api

import (
	"context"
	"net/http"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type userEnvelope struct {
	User User `json:"user"`
}

// Login exchanges credentials for a bearer token and account record.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", credentials{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and returns the same envelope as Login.
func (c *Client) Register(ctx context.Context, email, password, role string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", registration{Email: email, Password: password, Role: role}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the authoritative account record for the current bearer
// token. It is the revalidation endpoint.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var out userEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// DeleteAccount removes the account behind the current bearer token.
func (c *Client) DeleteAccount(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/auth/delete", nil, nil)
}
