package checkout_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"cafe-management-client/auth"
	"cafe-management-client/cart"
	"cafe-management-client/checkout"
	"cafe-management-client/client"
	"cafe-management-client/config"
	"cafe-management-client/models"
)

const (
	successDelay = 10 * time.Millisecond
	failureDelay = 40 * time.Millisecond
)

// setupFlow builds a checkout flow against a gin stub; calls counts the
// order submissions that actually reached the server.
func setupFlow(t *testing.T, orderHandler gin.HandlerFunc) (*checkout.Flow, *cart.Cart, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	calls := 0
	r := gin.New()
	r.POST("/orders", func(c *gin.Context) {
		calls++
		orderHandler(c)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	cfg := config.Config{
		APIBaseURL:           srv.URL,
		HTTPTimeout:          5 * time.Second,
		SuccessRedirectDelay: successDelay,
		FailureRedirectDelay: failureDelay,
	}
	crt := cart.New()
	flow := checkout.New(client.New(cfg, auth.NewMemoryStore()), crt, cfg)
	return flow, crt, &calls
}

func flatWhite() models.Product {
	return models.Product{ID: 1, Name: "Flat White", Price: decimal.RequireFromString("3.50")}
}

func acceptOrder(c *gin.Context) {
	var req client.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order": models.Order{
			ID:      7,
			TableID: req.TableID,
			Status:  models.StatusNew,
			Total:   decimal.RequireFromString("7.00"),
		},
	})
}

func rejectOrder(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
}

func TestSubmitPreconditions(t *testing.T) {
	cases := []struct {
		name    string
		prepare func(flow *checkout.Flow, crt *cart.Cart)
		wantMsg string
	}{
		{
			name: "Empty cart",
			prepare: func(flow *checkout.Flow, crt *cart.Cart) {
				flow.SelectTable(3)
				flow.SetGuestName("Dana")
			},
			wantMsg: "Your cart is empty",
		},
		{
			name: "No table selected",
			prepare: func(flow *checkout.Flow, crt *cart.Cart) {
				crt.Add(flatWhite())
				flow.SetGuestName("Dana")
			},
			wantMsg: "Please select a table before ordering",
		},
		{
			name: "Blank guest name",
			prepare: func(flow *checkout.Flow, crt *cart.Cart) {
				crt.Add(flatWhite())
				flow.SelectTable(3)
				flow.SetGuestName("   ")
			},
			wantMsg: "Please enter your name",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			flow, crt, calls := setupFlow(t, acceptOrder)
			tc.prepare(flow, crt)
			itemsBefore := crt.TotalItems()

			outcome, err := flow.Submit(context.Background())
			assert.Nil(t, outcome)
			assert.EqualError(t, err, tc.wantMsg)
			assert.Zero(t, *calls, "a precondition violation must not issue a network call")
			assert.Equal(t, itemsBefore, crt.TotalItems(), "cart must be untouched")
			assert.Equal(t, checkout.StateIdle, flow.State())
		})
	}
}

func TestSubmitSuccess(t *testing.T) {
	flow, crt, calls := setupFlow(t, acceptOrder)
	crt.Add(flatWhite())
	crt.Add(flatWhite())
	flow.SelectTable(3)
	flow.SetGuestName("Dana")

	outcome, err := flow.Submit(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, *calls)

	assert.True(t, outcome.Succeeded)
	assert.Contains(t, outcome.Message, "successfully")
	assert.Equal(t, "/tables/3", outcome.Destination)
	assert.Equal(t, successDelay, outcome.Delay)
	assert.Equal(t, uint(7), outcome.Order.ID)

	assert.Zero(t, crt.TotalItems(), "cart clears on success")
	assert.Empty(t, flow.GuestName(), "name field clears on success")
	assert.Equal(t, checkout.StateSettled, flow.State())
}

func TestSubmitFailureStillClearsAndRedirects(t *testing.T) {
	flow, crt, calls := setupFlow(t, rejectOrder)
	crt.Add(flatWhite())
	flow.SelectTable(3)
	flow.SetGuestName("Dana")

	outcome, err := flow.Submit(context.Background())
	assert.NoError(t, err, "a failed submission settles, it does not error")
	assert.Equal(t, 1, *calls)

	assert.False(t, outcome.Succeeded)
	assert.Contains(t, outcome.Message, "couldn't confirm")
	assert.Contains(t, outcome.Message, "Failed to place order")
	assert.Equal(t, "/tables/3", outcome.Destination, "failure navigates to the same destination")
	assert.Equal(t, failureDelay, outcome.Delay, "failure waits longer before navigating")

	assert.Zero(t, crt.TotalItems(), "cart clears on failure too")
	assert.Equal(t, checkout.StateSettled, flow.State())
}

func TestSubmitEmptyResponseIsFailure(t *testing.T) {
	flow, crt, _ := setupFlow(t, func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"order": models.Order{}})
	})
	crt.Add(flatWhite())
	flow.SelectTable(3)
	flow.SetGuestName("Dana")

	outcome, err := flow.Submit(context.Background())
	assert.NoError(t, err)
	assert.False(t, outcome.Succeeded, "an empty order object counts as a failed outcome")
	assert.Equal(t, failureDelay, outcome.Delay)
	assert.Zero(t, crt.TotalItems())
}
