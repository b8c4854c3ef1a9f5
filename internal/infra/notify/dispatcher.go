package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

type IDispatcher interface {
	Dispatch(n OrderNotification) bool
}

type Stats struct {
	Dispatched uint64 `json:"dispatched"`
	Sent       uint64 `json:"sent"`
	Failed     uint64 `json:"failed"`
	Skipped    uint64 `json:"skipped"`
	Dropped    uint64 `json:"dropped"`
}

// Dispatcher sends order notifications off the request path.
// Dispatch never blocks: a full queue drops the notification and counts it.
type Dispatcher struct {
	notifiers   []Notifier
	queue       chan OrderNotification
	workers     int
	sendTimeout time.Duration
	logger      *zerolog.Logger

	dispatched atomic.Uint64
	sent       atomic.Uint64
	failed     atomic.Uint64
	skipped    atomic.Uint64
	dropped    atomic.Uint64

	mu      sync.RWMutex
	closed  bool
	started sync.Once
	wg      sync.WaitGroup
}

type DispatcherOption func(*Dispatcher)

func WithWorkers(n int) DispatcherOption {
	return func(d *Dispatcher) {
		if n > 0 {
			d.workers = n
		}
	}
}

func WithQueueSize(n int) DispatcherOption {
	return func(d *Dispatcher) {
		if n > 0 {
			d.queue = make(chan OrderNotification, n)
		}
	}
}

func WithSendTimeout(timeout time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		d.sendTimeout = timeout
	}
}

func NewDispatcher(logger *zerolog.Logger, notifiers []Notifier, opts ...DispatcherOption) *Dispatcher {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	d := &Dispatcher{
		notifiers:   notifiers,
		queue:       make(chan OrderNotification, 128),
		workers:     1,
		sendTimeout: 10 * time.Second,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start launches the workers once.
func (d *Dispatcher) Start() {
	d.started.Do(func() {
		for i := 0; i < d.workers; i++ {
			d.wg.Add(1)
			go d.worker(i)
		}
	})
}

func (d *Dispatcher) Dispatch(n OrderNotification) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.dropped.Add(1)
		return false
	}
	select {
	case d.queue <- n:
		d.dispatched.Add(1)
		return true
	default:
		d.dropped.Add(1)
		d.logger.Warn().Str("order_id", n.OrderID).Msg("notification queue full, dropped")
		return false
	}
}

func (d *Dispatcher) worker(id int) {
	defer d.wg.Done()
	for n := range d.queue {
		d.deliver(id, n)
	}
}

func (d *Dispatcher) deliver(workerID int, n OrderNotification) {
	for _, notifier := range d.notifiers {
		err := d.send(notifier, n)
		switch {
		case err == nil:
			d.sent.Add(1)
			d.logger.Info().Int("worker", workerID).Str("order_id", n.OrderID).Str("channel", notifier.Name()).Msg("order notification sent")
		case errors.Is(err, ErrChannelDisabled):
			d.skipped.Add(1)
			d.logger.Debug().Str("order_id", n.OrderID).Str("channel", notifier.Name()).Msg("notification channel disabled")
		default:
			d.failed.Add(1)
			d.logger.Error().Err(err).Int("worker", workerID).Str("order_id", n.OrderID).Str("channel", notifier.Name()).Msg("order notification failed")
		}
	}
}

// send isolates a notifier panic so one broken channel cannot kill the worker.
func (d *Dispatcher) send(notifier Notifier, n OrderNotification) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("notifier %s panicked: %v", notifier.Name(), r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), d.sendTimeout)
	defer cancel()
	return notifier.Notify(ctx, n)
}

// Shutdown stops accepting notifications and waits for queued ones to drain.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("notification dispatcher shutdown timeout: %w", ctx.Err())
	}
}

func (d *Dispatcher) Stats() Stats {
	return Stats{
		Dispatched: d.dispatched.Load(),
		Sent:       d.sent.Load(),
		Failed:     d.failed.Load(),
		Skipped:    d.skipped.Load(),
		Dropped:    d.dropped.Load(),
	}
}
