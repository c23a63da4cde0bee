package smiles

import (
	"sync/atomic"
	"time"
)

// Timer is a handle to work deferred through a [Scheduler].
type Timer interface {
	// Stop prevents the deferred function from running. It returns false if
	// the function already ran or the timer was already stopped.
	Stop() bool
}

// Scheduler defers work onto the event loop that owns a primitive. Callbacks
// passed to a Scheduler always run on that loop, so primitives may mutate
// their state from them without locking.
//
// [Application] implements Scheduler. Primitives without a scheduler fall back
// to doing the deferred work immediately.
type Scheduler interface {
	// AfterFunc runs f on the event loop once d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
	// NextFrame runs f on the event loop right after the next screen update,
	// when the layout of the preceding state change has been drawn.
	NextFrame(f func())
}

// loopTimer is the Timer handed out by the Application. Stopping it after the
// underlying time.Timer fired but before the queued callback ran still
// suppresses the callback, because both Stop and the callback run on the loop.
type loopTimer struct {
	timer   *time.Timer
	stopped atomic.Bool
	fired   atomic.Bool
}

// Stop implements Timer.
func (t *loopTimer) Stop() bool {
	if t.fired.Load() {
		return false
	}
	if t.stopped.Swap(true) {
		return false
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	return true
}

// run executes f unless the timer was stopped in the meantime.
func (t *loopTimer) run(f func()) {
	if t.stopped.Load() {
		return
	}
	t.fired.Store(true)
	f()
}

// stopTimer stops t if it is non-nil and returns nil so callers can clear
// their handle in one statement.
func stopTimer(t Timer) Timer {
	if t != nil {
		t.Stop()
	}
	return nil
}
