package callstate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"cafe-management-client/callstate"
	"cafe-management-client/client"
)

func TestRunSuccess(t *testing.T) {
	var tr callstate.Tracker

	v, ok := callstate.Run(&tr, func() (int, error) {
		assert.True(t, tr.Loading(), "loading is up while the call runs")
		return 42, nil
	})
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.False(t, tr.Loading())
	assert.Empty(t, tr.Err())
}

func TestRunFailure(t *testing.T) {
	var tr callstate.Tracker

	v, ok := callstate.Run(&tr, func() (string, error) {
		return "", &client.APIError{Code: 500, Message: "Server error. Please try again later."}
	})
	assert.False(t, ok)
	assert.Empty(t, v, "rejection returns the zero value")
	assert.False(t, tr.Loading())
	assert.Equal(t, "Server error. Please try again later.", tr.Err())

	t.Run("Next call clears the prior error", func(t *testing.T) {
		_, ok := callstate.Run(&tr, func() (string, error) { return "ok", nil })
		assert.True(t, ok)
		assert.Empty(t, tr.Err())
	})
}

func TestStaleSettlementIsDiscarded(t *testing.T) {
	var tr callstate.Tracker

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	// First call parks in flight while a second one starts and settles;
	// the first call's failure must not overwrite the newer state.
	go func() {
		defer close(done)
		_, ok := callstate.Run(&tr, func() (int, error) {
			close(started)
			<-release
			return 0, errors.New("stale failure")
		})
		assert.False(t, ok, "a superseded call must not report success")
	}()

	<-started
	v, ok := callstate.Run(&tr, func() (int, error) { return 99, nil })
	assert.True(t, ok)
	assert.Equal(t, 99, v)

	close(release)
	<-done

	assert.False(t, tr.Loading())
	assert.Empty(t, tr.Err(), "stale failure must not surface after a newer success")
}
