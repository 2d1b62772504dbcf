package client

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"cafe-management-client/models"
)

type ProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    models.Category `json:"category"`
	ImageURL    string          `json:"image_url"`
}

type productResponse struct {
	Product models.Product `json:"product"`
}

type productsResponse struct {
	Products []models.Product `json:"products"`
}

// ListProducts returns the whole menu.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var resp productsResponse
	if err := c.do(ctx, "GET", "/products", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// ListProductsByCategory backs the category filter tabs.
func (c *Client) ListProductsByCategory(ctx context.Context, category models.Category) ([]models.Product, error) {
	var resp productsResponse
	if err := c.do(ctx, "GET", "/products/category/"+string(category), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *Client) CreateProduct(ctx context.Context, req ProductRequest) (*models.Product, error) {
	var resp productResponse
	if err := c.do(ctx, "POST", "/products", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id uint, req ProductRequest) (*models.Product, error) {
	var resp productResponse
	if err := c.do(ctx, "PUT", fmt.Sprintf("/products/%d", id), req, &resp); err != nil {
		return nil, err
	}
	return &resp.Product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id uint) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/products/%d", id), nil, nil)
}
