package client

import (
	"context"
	"fmt"

	"cafe-management-client/models"
)

type CreateTableRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

type tableResponse struct {
	Table models.Table `json:"table"`
}

type tablesResponse struct {
	Tables []models.Table `json:"tables"`
}

// ListTables returns the full floor plan.
func (c *Client) ListTables(ctx context.Context) ([]models.Table, error) {
	var resp tablesResponse
	if err := c.do(ctx, "GET", "/tables", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tables, nil
}

func (c *Client) GetTable(ctx context.Context, id uint) (*models.Table, error) {
	var resp tableResponse
	if err := c.do(ctx, "GET", fmt.Sprintf("/tables/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Table, nil
}

// ListTablesByStatus filters the floor plan by occupancy.
func (c *Client) ListTablesByStatus(ctx context.Context, status models.TableStatus) ([]models.Table, error) {
	var resp tablesResponse
	if err := c.do(ctx, "GET", "/tables/status/"+string(status), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tables, nil
}

func (c *Client) CreateTable(ctx context.Context, req CreateTableRequest) (*models.Table, error) {
	var resp tableResponse
	if err := c.do(ctx, "POST", "/tables", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Table, nil
}

func (c *Client) UpdateTableStatus(ctx context.Context, id uint, status models.TableStatus) (*models.Table, error) {
	var resp tableResponse
	path := fmt.Sprintf("/tables/%d/status", id)
	if err := c.do(ctx, "PATCH", path, map[string]any{"status": status}, &resp); err != nil {
		return nil, err
	}
	return &resp.Table, nil
}
