package client

import (
	"context"
	"fmt"

	"cafe-management-client/models"
)

type OrderItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type CreateOrderRequest struct {
	TableID   uint               `json:"table_id"`
	GuestName string             `json:"guest_name"`
	Items     []OrderItemRequest `json:"items"`
}

type orderResponse struct {
	Order models.Order `json:"order"`
}

type ordersResponse struct {
	Orders []models.Order `json:"orders"`
}

func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var resp ordersResponse
	if err := c.do(ctx, "GET", "/orders", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

func (c *Client) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var resp orderResponse
	if err := c.do(ctx, "GET", fmt.Sprintf("/orders/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

// ListOrdersByTable backs the per-table order view guests land on.
func (c *Client) ListOrdersByTable(ctx context.Context, tableID uint) ([]models.Order, error) {
	var resp ordersResponse
	if err := c.do(ctx, "GET", fmt.Sprintf("/orders/table/%d", tableID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// ListOrdersByStatus backs the status filter tabs on the orders board.
func (c *Client) ListOrdersByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	var resp ordersResponse
	if err := c.do(ctx, "GET", "/orders/status/"+string(status), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// CreateOrder submits a new order. The server-returned order, with its
// authoritative total and item snapshots, is the new source of truth.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*models.Order, error) {
	var resp orderResponse
	if err := c.do(ctx, "POST", "/orders", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	var resp orderResponse
	path := fmt.Sprintf("/orders/%d/status", id)
	if err := c.do(ctx, "PATCH", path, map[string]any{"status": status}, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id uint) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/orders/%d", id), nil, nil)
}

// AddOrderItem appends a line to an open order.
func (c *Client) AddOrderItem(ctx context.Context, orderID uint, item OrderItemRequest) (*models.Order, error) {
	var resp orderResponse
	path := fmt.Sprintf("/orders/%d/items", orderID)
	if err := c.do(ctx, "POST", path, item, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

func (c *Client) UpdateOrderItem(ctx context.Context, orderID, itemID uint, quantity int) (*models.Order, error) {
	var resp orderResponse
	path := fmt.Sprintf("/orders/%d/items/%d", orderID, itemID)
	if err := c.do(ctx, "PUT", path, map[string]any{"quantity": quantity}, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

func (c *Client) RemoveOrderItem(ctx context.Context, orderID, itemID uint) (*models.Order, error) {
	var resp orderResponse
	path := fmt.Sprintf("/orders/%d/items/%d", orderID, itemID)
	if err := c.do(ctx, "DELETE", path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}
