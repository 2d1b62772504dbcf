package client

import (
	"context"
	"fmt"

	"cafe-management-client/models"
)

type CreateUserRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// ListUsers returns every account for the users dashboard.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var resp struct {
		Users []models.User `json:"users"`
	}
	if err := c.do(ctx, "GET", "/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, "POST", "/users", req, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// UpdateUserStatus toggles an account between active and inactive. The
// server-returned user replaces the local row.
func (c *Client) UpdateUserStatus(ctx context.Context, id uint, status models.UserStatus) (*models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	path := fmt.Sprintf("/users/%d/status", id)
	if err := c.do(ctx, "PATCH", path, map[string]any{"status": status}, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) DeleteUser(ctx context.Context, id uint) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/users/%d", id), nil, nil)
}
