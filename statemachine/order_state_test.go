package statemachine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cafe-management-client/models"
	"cafe-management-client/statemachine"
)

func TestNext(t *testing.T) {
	next, ok := statemachine.Next(models.StatusNew)
	assert.True(t, ok)
	assert.Equal(t, models.StatusPreparing, next)

	_, ok = statemachine.Next(models.StatusPaid)
	assert.False(t, ok, "paid has no successor")

	t.Run("Full progression", func(t *testing.T) {
		want := []models.OrderStatus{
			models.StatusPreparing, models.StatusReady,
			models.StatusDelivered, models.StatusPaid,
		}
		s := models.StatusNew
		for _, expected := range want {
			next, ok := statemachine.Next(s)
			assert.True(t, ok)
			assert.Equal(t, expected, next)
			s = next
		}
		assert.True(t, statemachine.IsTerminal(s))
	})
}

func TestCanAdvance(t *testing.T) {
	assert.NoError(t, statemachine.CanAdvance(models.StatusReady, models.StatusDelivered))
	assert.Error(t, statemachine.CanAdvance(models.StatusNew, models.StatusReady), "no skipping")
	assert.Error(t, statemachine.CanAdvance(models.StatusPreparing, models.StatusNew), "no going back")
	assert.Error(t, statemachine.CanAdvance(models.StatusPaid, models.StatusNew), "terminal")
}

func TestBadgeFor(t *testing.T) {
	// The unknown fallback must be unreachable for every declared
	// status; hitting it would mean the enumeration drifted.
	unknown := statemachine.BadgeFor(models.OrderStatus("smashed"))
	for _, s := range statemachine.AllStatuses() {
		badge := statemachine.BadgeFor(s)
		assert.NotEqual(t, unknown, badge, "status %s fell through to the unknown badge", s)
		assert.NotEmpty(t, badge.Label)
		assert.NotEmpty(t, badge.Color)
	}
	assert.Equal(t, "Unknown", unknown.Label)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Preparing", statemachine.Label(models.StatusPreparing))
}
