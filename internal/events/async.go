package events

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/drivahub/drivahub/internal/metrics"
)

const publishTimeout = 5 * time.Second

// AsyncPublisher hands events to a worker pool. Failures are logged and counted, never returned.
type AsyncPublisher struct {
	next Publisher
	pool *WorkerPool
}

func NewAsyncPublisher(next Publisher, workers, queue int) *AsyncPublisher {
	return &AsyncPublisher{
		next: next,
		pool: NewWorkerPool(workers, queue),
	}
}

func (p *AsyncPublisher) Publish(ctx context.Context, event Event) error {
	taskCtx := context.WithoutCancel(ctx)
	err := p.pool.AddTask(ctx, func() error {
		ctx, cancel := context.WithTimeout(taskCtx, publishTimeout)
		defer cancel()
		if err := p.next.Publish(ctx, event); err != nil {
			metrics.IncPublishError(event.Type)
			return fmt.Errorf("publish %s %s: %w", event.Type, event.RecordID, err)
		}
		return nil
	})
	if err != nil {
		metrics.IncPublishError(event.Type)
		zap.L().Warn("event dropped",
			zap.String("type", event.Type),
			zap.String("recordID", event.RecordID),
			zap.Error(err),
		)
	}
	return nil
}

// Close drains queued events and closes the wrapped publisher.
func (p *AsyncPublisher) Close() error {
	p.pool.Close()
	return p.next.Close()
}
