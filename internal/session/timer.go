package session

import (
	"fmt"
	"sync"
	"time"
)

// IdleTimer detects a contiguous period of inactivity and fires a one-shot
// callback. Touch re-arms the full timeout; firing does not auto-restart.
// A generation counter ties each armed deadline to exactly one fire, so a
// Touch that lands strictly before the deadline always cancels that
// deadline's fire, and nothing fires after Stop.
type IdleTimer struct {
	mu      sync.Mutex
	timeout time.Duration
	onIdle  func()
	timer   *time.Timer
	gen     uint64
	running bool
	fired   bool
	stopped bool
}

// NewIdleTimer rejects misconfiguration up front: a zero or negative timeout
// would otherwise produce a zero-delay or never-firing timer.
func NewIdleTimer(timeout time.Duration, onIdle func()) (*IdleTimer, error) {
	if timeout <= 0 {
		return nil, fmt.Errorf("idle timeout must be positive, got %v", timeout)
	}
	if onIdle == nil {
		return nil, fmt.Errorf("onIdle callback is required")
	}
	return &IdleTimer{timeout: timeout, onIdle: onIdle}, nil
}

// Start begins the countdown. Calling Start on a running timer is a no-op.
func (t *IdleTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.running {
		return
	}
	t.running = true
	t.fired = false
	t.arm()
}

// arm schedules a fire for the current generation. Caller holds the lock.
func (t *IdleTimer) arm() {
	t.gen++
	gen := t.gen
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.timeout, func() {
		t.fire(gen)
	})
}

func (t *IdleTimer) fire(gen uint64) {
	t.mu.Lock()
	if t.stopped || t.fired || gen != t.gen {
		t.mu.Unlock()
		return
	}
	t.fired = true
	cb := t.onIdle
	t.mu.Unlock()

	cb()
}

// Touch records qualifying activity: the countdown restarts at the full
// timeout from now. Ignored once the timer has fired (restart after a fire
// is the caller's responsibility, via Reset) and after Stop.
func (t *IdleTimer) Touch() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.fired || !t.running {
		return
	}
	t.arm()
}

// Reset re-arms the full timeout, clearing a previous fire.
func (t *IdleTimer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.running = true
	t.fired = false
	t.arm()
}

// SetOnIdle swaps the callback without restarting the countdown; elapsed
// time is preserved and the latest callback is the one invoked at the
// deadline.
func (t *IdleTimer) SetOnIdle(onIdle func()) {
	if onIdle == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onIdle = onIdle
}

// Stop cancels any pending fire and releases the timer. No callback runs
// after Stop returns the timer to the caller. Idempotent.
func (t *IdleTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	t.running = false
	if t.timer != nil {
		t.timer.Stop()
	}
}

// Timeout returns the configured inactivity window.
func (t *IdleTimer) Timeout() time.Duration {
	return t.timeout
}
