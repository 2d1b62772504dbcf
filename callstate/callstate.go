package callstate

import (
	"sync"

	"cafe-management-client/client"
)

// Tracker holds the loading flag and last display error for one call
// site, the way a screen tracks its single outstanding request. A new
// call supersedes any still-outstanding one: each call carries a
// generation token and a settlement from a superseded generation is
// discarded instead of overwriting newer state.
type Tracker struct {
	mu      sync.Mutex
	gen     uint64
	loading bool
	errMsg  string
}

func (t *Tracker) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loading
}

// Err returns the display string from the last settled call, empty
// when it succeeded or none has run.
func (t *Tracker) Err() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.errMsg
}

func (t *Tracker) begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gen++
	t.loading = true
	t.errMsg = ""
	return t.gen
}

// settle reports whether this generation is still current; a stale
// generation leaves the tracker untouched.
func (t *Tracker) settle(gen uint64, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.gen {
		return false
	}
	t.loading = false
	if err != nil {
		t.errMsg = client.ErrorMessage(err)
	}
	return true
}

// Run wraps one call: loading goes up, the prior error clears, and on
// rejection the mapped display string is stored and the zero value
// returned. The second return is false when the result must not be
// used, either because the call failed or because a newer call
// superseded it while it was in flight.
func Run[T any](t *Tracker, call func() (T, error)) (T, bool) {
	gen := t.begin()
	v, err := call()
	if !t.settle(gen, err) || err != nil {
		var zero T
		return zero, false
	}
	return v, true
}
