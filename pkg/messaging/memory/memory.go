package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/brightwell-health/portal/pkg/messaging"
)

// Broker is the in-process default: handlers run synchronously on the
// publishing goroutine, so a publish observed by the caller has already been
// delivered to every subscriber.
type Broker struct {
	mu       sync.RWMutex
	handlers map[string][]func([]byte) error
	closed   bool
}

func NewBroker() *Broker {
	return &Broker{
		handlers: make(map[string][]func([]byte) error),
	}
}

func (b *Broker) Publish(_ context.Context, topic string, payload []byte) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return fmt.Errorf("broker is closed")
	}
	handlers := append([]func([]byte) error(nil), b.handlers[topic]...)
	b.mu.RUnlock()

	var firstErr error
	for _, h := range handlers {
		if err := h(payload); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("handler for %s: %w", topic, err)
		}
	}
	return firstErr
}

func (b *Broker) Subscribe(_ context.Context, topic string, handler func([]byte) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return fmt.Errorf("broker is closed")
	}
	b.handlers[topic] = append(b.handlers[topic], handler)
	return nil
}

func (b *Broker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.handlers = make(map[string][]func([]byte) error)
	return nil
}

var _ messaging.Broker = (*Broker)(nil)
