package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/analog-mfg/factory-ops-api/pkg/jobs"
)

// AsyncNotifier moves notification writes off the request path and onto a
// background worker queue. Enqueue failures are logged, never surfaced, so a
// mutation is never failed by its notification.
type AsyncNotifier struct {
	queue  *jobs.Queue
	logger *zap.Logger
}

// NewAsyncNotifier wraps a NotificationService in a worker queue. Failed
// writes are retried by the queue before being dropped.
func NewAsyncNotifier(svc *NotificationService, logger *zap.Logger) *AsyncNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &AsyncNotifier{logger: logger}
	a.queue = jobs.NewQueue("notifications", func(ctx context.Context, job jobs.Job) error {
		message, ok := job.Payload.(string)
		if !ok {
			return fmt.Errorf("unexpected notification payload %T", job.Payload)
		}
		return svc.Append(ctx, message)
	}, jobs.Config{Workers: 2, BufferSize: 64, Logger: logger})
	return a
}

// Start launches the queue workers.
func (a *AsyncNotifier) Start(ctx context.Context) {
	a.queue.Start(ctx)
}

// Stop drains the workers.
func (a *AsyncNotifier) Stop() {
	a.queue.Stop()
}

// Notify enqueues a notification write.
func (a *AsyncNotifier) Notify(ctx context.Context, message string) {
	job := jobs.Job{ID: uuid.NewString(), Type: "notification", Payload: message}
	if err := a.queue.Enqueue(job); err != nil {
		a.logger.Warn("notification enqueue failed", zap.String("message", message), zap.Error(err))
	}
}
