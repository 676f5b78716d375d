// Package worker hosts the background notifier pool. Order submissions are
// acknowledged to the client immediately; turning them into feed
// notifications happens here, off the request path.
package worker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/takaex/takaex/internal/domain/model"
)

// ExchangeFacade exposes the subset of application functionality required by the notifier.
type ExchangeFacade interface {
	RecordOrderSubmitted(ctx context.Context, order model.Order) (*model.Notification, error)
}

// Notifier fans submitted orders out to a pool of workers that write feed
// notifications.
type Notifier struct {
	facade  ExchangeFacade
	workers int
	logger  *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewNotifier constructs the notifier worker pool.
func NewNotifier(facade ExchangeFacade, workers, queueSize int, logger *slog.Logger) *Notifier {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Notifier{
		facade:  facade,
		workers: workers,
		logger:  logger,
		jobs:    make(chan model.Order, queueSize),
	}
}

// Start launches background processing.
func (n *Notifier) Start(ctx context.Context) {
	n.mu.Lock()
	defer n.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	n.cancel = cancel

	for i := 0; i < n.workers; i++ {
		n.wg.Add(1)
		go n.worker(runCtx)
	}
}

// Stop waits for all workers to finish.
func (n *Notifier) Stop() {
	n.mu.Lock()
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
	n.mu.Unlock()

	n.wg.Wait()
}

// Enqueue hands an order to the pool. A full queue drops the notification
// rather than stalling the submission path; the order itself is already
// stored.
func (n *Notifier) Enqueue(order model.Order) {
	select {
	case n.jobs <- order:
	default:
		n.logger.Warn("notification queue full, dropping", slog.String("order", order.ID))
	}
}

func (n *Notifier) worker(ctx context.Context) {
	defer n.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-n.jobs:
			if !ok {
				return
			}
			if _, err := n.facade.RecordOrderSubmitted(ctx, order); err != nil {
				n.logger.Error("record order notification failed",
					slog.String("order", order.ID), slog.String("error", err.Error()))
			}
		}
	}
}
