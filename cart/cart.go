package cart

import (
	"github.com/shopspring/decimal"

	"cafe-management-client/models"
)

// Line is one product in the cart with its accumulated quantity. The
// product fields are snapshotted at add time, matching how the server
// denormalizes order items.
type Line struct {
	ProductID uint
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Cart accumulates a guest's selection for a single table visit. Pure
// in-memory view state: nothing here persists or touches the network.
type Cart struct {
	lines map[uint]*Line
	order []uint // insertion order, for stable rendering
}

func New() *Cart {
	return &Cart{lines: make(map[uint]*Line)}
}

// Add puts one more of the product in the cart: an existing line grows
// by one, otherwise a new line starts at quantity 1. No upper bound.
func (c *Cart) Add(p models.Product) {
	if line, ok := c.lines[p.ID]; ok {
		line.Quantity++
		return
	}
	c.lines[p.ID] = &Line{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
	}
	c.order = append(c.order, p.ID)
}

// Remove takes one of the product out; the line disappears entirely
// when its quantity would drop to zero. Unknown products are a no-op.
func (c *Cart) Remove(productID uint) {
	line, ok := c.lines[productID]
	if !ok {
		return
	}
	if line.Quantity > 1 {
		line.Quantity--
		return
	}
	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Lines returns the cart contents in the order products were first
// added. The returned copies are safe to hold across mutations.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

// Len is the number of distinct lines.
func (c *Cart) Len() int { return len(c.lines) }

// TotalItems sums all line quantities.
func (c *Cart) TotalItems() int {
	n := 0
	for _, line := range c.lines {
		n += line.Quantity
	}
	return n
}

// TotalPrice sums price×quantity across lines; zero for an empty cart.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = make(map[uint]*Line)
	c.order = nil
}
