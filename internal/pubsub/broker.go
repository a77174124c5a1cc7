package pubsub

import (
	"context"
	"sync"
	"time"
)

const defaultBufferSize = 32

// BrokerOption configures a Broker.
type BrokerOption func(*brokerConfig)

type brokerConfig struct {
	buffer int
	replay int
}

// WithBuffer sets the per-subscriber channel capacity (minimum 1).
func WithBuffer(n int) BrokerOption {
	return func(c *brokerConfig) { c.buffer = max(1, n) }
}

// WithReplay keeps the last n events and hands them to every new subscriber
// before any live event.
func WithReplay(n int) BrokerOption {
	return func(c *brokerConfig) { c.replay = max(0, n) }
}

type subscription[T any] struct {
	ch      chan Event[T]
	dropped uint64
}

// Broker fans events out to live subscriptions. Publish never blocks; a
// subscriber whose buffer is full misses the event and the miss is counted.
type Broker[T any] struct {
	mu      sync.RWMutex
	cfg     brokerConfig
	subs    map[*subscription[T]]struct{}
	history []Event[T]
	dropped uint64
	closed  bool
}

// NewBroker creates a broker.
func NewBroker[T any](opts ...BrokerOption) *Broker[T] {
	cfg := brokerConfig{buffer: defaultBufferSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	// Replayed events must fit without blocking Subscribe.
	cfg.buffer = max(cfg.buffer, cfg.replay)
	return &Broker[T]{
		cfg:  cfg,
		subs: make(map[*subscription[T]]struct{}),
	}
}

// Subscribe registers a subscription that lives until ctx is done or the
// broker is closed. Retained events are already queued on the returned channel.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		ch := make(chan Event[T])
		close(ch)
		return ch
	}

	sub := &subscription[T]{ch: make(chan Event[T], b.cfg.buffer)}
	for _, ev := range b.history {
		sub.ch <- ev
	}
	b.subs[sub] = struct{}{}

	go func() {
		<-ctx.Done()
		b.remove(sub)
	}()
	return sub.ch
}

func (b *Broker[T]) remove(sub *subscription[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[sub]; ok {
		delete(b.subs, sub)
		b.dropped += sub.dropped
		close(sub.ch)
	}
}

// Publish sends payload to every subscriber and reports how many took it.
func (b *Broker[T]) Publish(eventType EventType, payload T) int {
	// Drop counters and history are written under the exclusive lock.
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0
	}

	ev := Event[T]{Type: eventType, Payload: payload, Timestamp: time.Now()}
	if b.cfg.replay > 0 {
		b.history = append(b.history, ev)
		if over := len(b.history) - b.cfg.replay; over > 0 {
			b.history = b.history[over:]
		}
	}

	delivered := 0
	for sub := range b.subs {
		select {
		case sub.ch <- ev:
			delivered++
		default:
			sub.dropped++
		}
	}
	return delivered
}

// Close closes every subscription. Later calls are no-ops.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for sub := range b.subs {
		b.dropped += sub.dropped
		close(sub.ch)
	}
	b.subs = nil
	b.history = nil
}

// SubscriberCount returns the number of live subscriptions.
func (b *Broker[T]) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Dropped returns the total number of missed deliveries across current and
// past subscribers.
func (b *Broker[T]) Dropped() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	total := b.dropped
	for sub := range b.subs {
		total += sub.dropped
	}
	return total
}
