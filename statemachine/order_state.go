package statemachine

import (
	"errors"

	"cafe-management-client/models"
)

// sequence is the authoritative progression: each status moves only to
// its successor, "paid" is terminal.
var sequence = []models.OrderStatus{
	models.StatusNew,
	models.StatusPreparing,
	models.StatusReady,
	models.StatusDelivered,
	models.StatusPaid,
}

// Build a successor lookup for O(1) advancement
var successor = func() map[models.OrderStatus]models.OrderStatus {
	m := make(map[models.OrderStatus]models.OrderStatus)
	for i := 0; i < len(sequence)-1; i++ {
		m[sequence[i]] = sequence[i+1]
	}
	return m
}()

// AllStatuses returns the full progression in order, for documentation
// and for the status filter tabs.
func AllStatuses() []models.OrderStatus {
	out := make([]models.OrderStatus, len(sequence))
	copy(out, sequence)
	return out
}

// Next returns the successor of a status, or false when the status is
// terminal.
func Next(status models.OrderStatus) (models.OrderStatus, bool) {
	next, ok := successor[status]
	return next, ok
}

// IsTerminal reports whether no further advancement is possible.
func IsTerminal(status models.OrderStatus) bool {
	_, ok := successor[status]
	return !ok
}

// CanAdvance checks that a requested change follows the progression.
func CanAdvance(from, to models.OrderStatus) error {
	next, ok := successor[from]
	if !ok {
		return errors.New("invalid transition: " + string(from) + " is a terminal status")
	}
	if next != to {
		return errors.New(
			"invalid transition: " + string(from) + " → " + string(to) +
				". The only valid transition from " + string(from) + " is " + string(next))
	}
	return nil
}

// Badge is the visual rendering of a status on the orders dashboard.
type Badge struct {
	Label string
	Color string
}

var badges = map[models.OrderStatus]Badge{
	models.StatusNew:       {Label: "New", Color: "blue"},
	models.StatusPreparing: {Label: "Preparing", Color: "yellow"},
	models.StatusReady:     {Label: "Ready", Color: "green"},
	models.StatusDelivered: {Label: "Delivered", Color: "teal"},
	models.StatusPaid:      {Label: "Paid", Color: "gray"},
}

// unknownBadge should never be reachable for a parsed status; it exists
// so a raw string from a drifted schema still renders something.
var unknownBadge = Badge{Label: "Unknown", Color: "red"}

// BadgeFor maps a status to its badge, falling back to the unknown
// marker for unrecognized values.
func BadgeFor(status models.OrderStatus) Badge {
	if b, ok := badges[status]; ok {
		return b
	}
	return unknownBadge
}

// Label is shorthand for the badge text of a status.
func Label(status models.OrderStatus) string {
	return BadgeFor(status).Label
}
