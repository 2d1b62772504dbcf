package client

import (
	"context"

	"cafe-management-client/models"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login authenticates and caches the returned bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	var resp authResponse
	err := c.do(ctx, "POST", "/auth/login", LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	if err := c.tokens.SetToken(resp.Token); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Register creates an account and caches the returned token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	var resp authResponse
	if err := c.do(ctx, "POST", "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	if err := c.tokens.SetToken(resp.Token); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Me returns the profile behind the cached token.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, "GET", "/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Validate asks the server whether the cached session is still good.
// A 401 here evicts the token like everywhere else.
func (c *Client) Validate(ctx context.Context) error {
	return c.do(ctx, "GET", "/auth/validate", nil, nil)
}

// Logout drops the cached token locally.
func (c *Client) Logout() error {
	return c.tokens.Clear()
}
