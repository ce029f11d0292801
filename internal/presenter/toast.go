package presenter

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/brightwell-health/portal/internal/model"
	"github.com/brightwell-health/portal/internal/store"
	"github.com/brightwell-health/portal/pkg/logger"
	"github.com/brightwell-health/portal/pkg/messaging"
	"github.com/brightwell-health/portal/pkg/metrics"
	"github.com/brightwell-health/portal/pkg/validator"
)

// ToastPresenter is the single rendering surface for toasts. It watches the
// store and schedules a fixed-duration auto-clear for each toast; a newer
// toast supersedes the pending clear (the stale deadline becomes a no-op via
// the toast generation). It also subscribes to the broker's toast topic so
// code without a store handle can request a toast.
type ToastPresenter struct {
	store    *store.Store
	broker   messaging.Broker
	duration time.Duration
	validate *validator.Validator
	logger   *logger.Logger
	metrics  *metrics.Metrics

	mu        sync.Mutex
	dismiss   *time.Timer
	cancelSub func()
	done      chan struct{}
	started   bool
	stopping  bool
}

// NewToastPresenter rejects a non-positive display duration at setup.
func NewToastPresenter(st *store.Store, broker messaging.Broker, duration time.Duration, log *logger.Logger, m *metrics.Metrics) (*ToastPresenter, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("toast duration must be positive, got %v", duration)
	}
	return &ToastPresenter{
		store:    st,
		broker:   broker,
		duration: duration,
		validate: validator.New(),
		logger:   log,
		metrics:  m,
	}, nil
}

// Start begins watching store changes and the broker toast topic.
func (p *ToastPresenter) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return fmt.Errorf("toast presenter already started")
	}
	p.started = true
	p.done = make(chan struct{})
	p.mu.Unlock()

	ch, cancel := p.store.Subscribe()
	p.mu.Lock()
	p.cancelSub = cancel
	p.mu.Unlock()

	go p.watch(ch)

	if p.broker != nil {
		if err := p.broker.Subscribe(ctx, messaging.TopicToast, p.onBroadcast); err != nil {
			return fmt.Errorf("failed to subscribe to toast topic: %w", err)
		}
	}
	return nil
}

// Stop cancels the store subscription and any pending auto-clear.
func (p *ToastPresenter) Stop() {
	p.mu.Lock()
	p.stopping = true
	cancel := p.cancelSub
	p.cancelSub = nil
	if p.dismiss != nil {
		p.dismiss.Stop()
		p.dismiss = nil
	}
	done := p.done
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

// Current returns the toast this surface is rendering, nil when none.
func (p *ToastPresenter) Current() *model.Toast {
	return p.store.State().Toast
}

func (p *ToastPresenter) watch(ch <-chan store.Change) {
	defer close(p.done)
	for change := range ch {
		switch change.Action {
		case store.ActionShowToast:
			p.schedule(change.ToastSeq)
		case store.ActionClearToast:
			p.cancelPending()
		}
	}
}

// schedule arms the auto-clear for toast generation seq, superseding any
// pending one.
func (p *ToastPresenter) schedule(seq uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Changes already buffered when Stop ran must not arm a new deadline.
	if p.stopping {
		return
	}

	if p.dismiss != nil {
		p.dismiss.Stop()
		if p.metrics != nil {
			p.metrics.ToastsDismissed.WithLabelValues(metrics.DismissSuperseded).Inc()
		}
	}
	if p.metrics != nil {
		p.metrics.ToastsShown.Inc()
	}

	p.dismiss = time.AfterFunc(p.duration, func() {
		if p.store.ClearToastIf(seq) {
			if p.metrics != nil {
				p.metrics.ToastsDismissed.WithLabelValues(metrics.DismissAuto).Inc()
			}
		}
	})
}

func (p *ToastPresenter) cancelPending() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.dismiss != nil {
		p.dismiss.Stop()
		p.dismiss = nil
	}
}

// onBroadcast handles an out-of-band toast request from the broker.
func (p *ToastPresenter) onBroadcast(payload []byte) error {
	var evt messaging.ToastEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		return fmt.Errorf("malformed toast event: %w", err)
	}
	if err := p.validate.Validate(&evt); err != nil {
		return fmt.Errorf("invalid toast event: %w", err)
	}

	p.store.ShowToast(evt.Message, model.ToastType(evt.Type))
	if p.logger != nil {
		p.logger.Debug("toast requested via broadcast", "message", evt.Message)
	}
	return nil
}
