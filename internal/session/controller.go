package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/brightwell-health/portal/internal/store"
	"github.com/brightwell-health/portal/pkg/logger"
	"github.com/brightwell-health/portal/pkg/messaging"
	"github.com/brightwell-health/portal/pkg/metrics"
)

// State of the idle session controller.
type State string

const (
	StateActive       State = "active"
	StateWarningShown State = "warning-shown"
)

type ControllerConfig struct {
	// IdleTimeout is the inactivity window before the warning shows.
	IdleTimeout time.Duration
	// WarningWindow is how long the warning stays unanswered before the
	// session ends. Zero means wait indefinitely.
	WarningWindow time.Duration
}

func (c ControllerConfig) validate() error {
	if c.IdleTimeout <= 0 {
		return fmt.Errorf("idle timeout must be positive, got %v", c.IdleTimeout)
	}
	if c.WarningWindow < 0 {
		return fmt.Errorf("warning window must not be negative, got %v", c.WarningWindow)
	}
	return nil
}

// Controller wires the idle timer to the store's session UI. Inactivity for
// IdleTimeout opens the idle warning overlay; StaySignedIn dismisses it and
// re-arms the timer; an unanswered warning ends the session after
// WarningWindow.
type Controller struct {
	mu        sync.Mutex
	state     State
	cfg       ControllerConfig
	store     *store.Store
	broker    messaging.Broker
	timer     *IdleTimer
	warnGen   uint64
	warnTimer *time.Timer
	logger    *logger.Logger
	metrics   *metrics.Metrics
}

func NewController(cfg ControllerConfig, st *store.Store, broker messaging.Broker, log *logger.Logger, m *metrics.Metrics) (*Controller, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid session config: %w", err)
	}

	c := &Controller{
		state:   StateActive,
		cfg:     cfg,
		store:   st,
		broker:  broker,
		logger:  log,
		metrics: m,
	}

	timer, err := NewIdleTimer(cfg.IdleTimeout, c.onIdle)
	if err != nil {
		return nil, err
	}
	c.timer = timer
	return c, nil
}

// Start activates the idle countdown.
func (c *Controller) Start() {
	c.timer.Start()
}

// Stop tears down both the idle timer and any pending warning deadline.
// Nothing fires after Stop.
func (c *Controller) Stop() {
	c.timer.Stop()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnGen++
	if c.warnTimer != nil {
		c.warnTimer.Stop()
	}
}

// Activity records qualifying user input. Only counts while Active: input
// during the warning does not silently dismiss it, the user must confirm.
func (c *Controller) Activity() {
	c.mu.Lock()
	active := c.state == StateActive
	c.mu.Unlock()
	if active {
		c.timer.Touch()
	}
}

// StaySignedIn is the user confirming the warning: the overlay closes and a
// fresh countdown begins. A no-op when no warning is shown.
func (c *Controller) StaySignedIn() {
	c.mu.Lock()
	if c.state != StateWarningShown {
		c.mu.Unlock()
		return
	}
	c.state = StateActive
	c.warnGen++
	if c.warnTimer != nil {
		c.warnTimer.Stop()
	}
	c.mu.Unlock()

	c.store.CloseIdleWarning()
	c.timer.Reset()
	if c.metrics != nil {
		c.metrics.SessionsResumed.Inc()
	}
	if c.logger != nil {
		c.logger.Debug("session resumed from idle warning")
	}
}

// State returns the current controller state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) onIdle() {
	c.mu.Lock()
	if c.state == StateWarningShown {
		c.mu.Unlock()
		return
	}
	c.state = StateWarningShown
	c.warnGen++
	gen := c.warnGen
	if c.cfg.WarningWindow > 0 {
		if c.warnTimer != nil {
			c.warnTimer.Stop()
		}
		c.warnTimer = time.AfterFunc(c.cfg.WarningWindow, func() {
			c.expire(gen)
		})
	}
	c.mu.Unlock()

	c.store.OpenIdleWarning()
	if c.metrics != nil {
		c.metrics.IdleWarnings.Inc()
	}
	if c.logger != nil {
		c.logger.Info("idle warning shown", "idle_timeout", c.cfg.IdleTimeout.String())
	}
}

// expire ends the session after an unanswered warning: selection is cleared,
// the overlay closes and the expiry is broadcast.
func (c *Controller) expire(gen uint64) {
	c.mu.Lock()
	if gen != c.warnGen || c.state != StateWarningShown {
		c.mu.Unlock()
		return
	}
	c.state = StateActive
	c.mu.Unlock()

	snap := c.store.State()
	c.store.SetCurrentUser(uuid.Nil)
	c.store.CloseIdleWarning()

	if c.metrics != nil {
		c.metrics.SessionsExpired.Inc()
	}
	if c.logger != nil {
		c.logger.Warn("session expired after unanswered idle warning")
	}

	if c.broker != nil {
		payload, err := json.Marshal(messaging.SessionExpiredEvent{
			UserID:    snap.CurrentUserID.String(),
			ExpiredAt: time.Now().UTC().Format(time.RFC3339),
		})
		if err == nil {
			err = c.broker.Publish(context.Background(), messaging.TopicSessionExpired, payload)
		}
		if err != nil && c.logger != nil {
			c.logger.Error(err, "failed to publish session expiry")
		}
	}

	// The portal is back at role selection; keep the countdown running so a
	// newly selected session gets idle handling without re-wiring.
	c.timer.Reset()
}
