package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"cafe-management-client/cart"
	"cafe-management-client/client"
	"cafe-management-client/config"
	"cafe-management-client/models"
)

// State is where the submission flow currently is.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSettled
)

// Flow drives the guest checkout: it owns the selected table, the
// guest name field, and the cart, and settles every submission by
// clearing the cart and redirecting to the table's order view.
type Flow struct {
	api          *client.Client
	cart         *cart.Cart
	validate     *validator.Validate
	successDelay time.Duration
	failureDelay time.Duration

	tableID   uint
	guestName string
	state     State
}

func New(api *client.Client, crt *cart.Cart, cfg config.Config) *Flow {
	return &Flow{
		api:          api,
		cart:         crt,
		validate:     validator.New(),
		successDelay: cfg.SuccessRedirectDelay,
		failureDelay: cfg.FailureRedirectDelay,
	}
}

func (f *Flow) SelectTable(id uint)      { f.tableID = id }
func (f *Flow) SetGuestName(name string) { f.guestName = name }
func (f *Flow) GuestName() string        { return f.guestName }
func (f *Flow) State() State             { return f.state }

// Outcome describes a settled submission. Success and failure share
// the same destination; they differ only in message and delay.
type Outcome struct {
	Succeeded   bool
	Order       *models.Order
	Message     string
	Destination string
	Delay       time.Duration
}

type submission struct {
	TableID   uint                      `validate:"required"`
	GuestName string                    `validate:"required"`
	Items     []client.OrderItemRequest `validate:"required,min=1"`
}

var precondition = map[string]string{
	"TableID":   "Please select a table before ordering",
	"GuestName": "Please enter your name",
	"Items":     "Your cart is empty",
}

// Submit validates preconditions and posts the order. A validation
// error means no network call happened and the cart is untouched.
// Otherwise the flow settles: the cart and name field are cleared on
// both outcomes, and the outcome says where to navigate and after how
// long.
func (f *Flow) Submit(ctx context.Context) (*Outcome, error) {
	sub := submission{
		TableID:   f.tableID,
		GuestName: strings.TrimSpace(f.guestName),
	}
	for _, line := range f.cart.Lines() {
		sub.Items = append(sub.Items, client.OrderItemRequest{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}
	if err := f.validate.Struct(sub); err != nil {
		return nil, preconditionError(err)
	}

	f.state = StateSubmitting
	order, err := f.api.CreateOrder(ctx, client.CreateOrderRequest{
		TableID:   sub.TableID,
		GuestName: sub.GuestName,
		Items:     sub.Items,
	})

	// Clear-and-redirect regardless of outcome: the guest is never
	// stranded on a broken cart screen, at the cost of losing the cart
	// when the order did not actually persist.
	f.cart.Clear()
	f.guestName = ""
	f.state = StateSettled

	destination := fmt.Sprintf("/tables/%d", sub.TableID)
	if err != nil || order == nil || order.ID == 0 {
		msg := "We couldn't confirm your order. Please check with our staff."
		if err != nil {
			msg += " (" + client.ErrorMessage(err) + ")"
		}
		return &Outcome{
			Message:     msg,
			Destination: destination,
			Delay:       f.failureDelay,
		}, nil
	}
	return &Outcome{
		Succeeded:   true,
		Order:       order,
		Message:     fmt.Sprintf("Order #%d placed successfully!", order.ID),
		Destination: destination,
		Delay:       f.successDelay,
	}, nil
}

// preconditionError turns validator output into the guest-facing
// message for the first violated field.
func preconditionError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		if msg, ok := precondition[fieldErrs[0].StructField()]; ok {
			return errors.New(msg)
		}
	}
	return err
}
