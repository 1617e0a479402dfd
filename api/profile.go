package api

import (
	"context"
	"net/http"
)

type profileEnvelope struct {
	Profile Profile `json:"profile"`
}

// GetProfile returns the caller's profile.
func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	var out profileEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out.Profile, nil
}

// CreateProfile creates the caller's profile. The server rejects a second
// create for the same account.
func (c *Client) CreateProfile(ctx context.Context, input ProfileInput) (*Profile, error) {
	var out profileEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/profile", input, &out); err != nil {
		return nil, err
	}
	return &out.Profile, nil
}

// UpdateProfile updates the caller's profile.
func (c *Client) UpdateProfile(ctx context.Context, input ProfileInput) (*Profile, error) {
	var out profileEnvelope
	if err := c.do(ctx, http.MethodPut, "/api/profile", input, &out); err != nil {
		return nil, err
	}
	return &out.Profile, nil
}

// DeleteProfile removes the caller's profile, leaving the account intact.
func (c *Client) DeleteProfile(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/profile", nil, nil)
}
