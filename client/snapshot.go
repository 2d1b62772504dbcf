package client

import (
	"context"

	"golang.org/x/sync/errgroup"

	"cafe-management-client/models"
)

// Snapshot is everything the admin dashboard shows on first load.
type Snapshot struct {
	Users    []models.User
	Tables   []models.Table
	Products []models.Product
	Orders   []models.Order
}

// FetchSnapshot loads the four dashboard collections concurrently and
// fails on the first endpoint error.
func (c *Client) FetchSnapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users, err := c.ListUsers(ctx)
		snap.Users = users
		return err
	})
	g.Go(func() error {
		tables, err := c.ListTables(ctx)
		snap.Tables = tables
		return err
	})
	g.Go(func() error {
		products, err := c.ListProducts(ctx)
		snap.Products = products
		return err
	})
	g.Go(func() error {
		orders, err := c.ListOrders(ctx)
		snap.Orders = orders
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}
