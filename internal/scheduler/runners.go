package scheduler

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/mrlokans/catalog/internal/tasks"
)

// QueueRunner enqueues cleanup onto the background task queue.
type QueueRunner struct {
	Client *tasks.Client
}

func (r QueueRunner) EnqueueAuditCleanup(ctx context.Context, retentionDays int) error {
	id, err := r.Client.EnqueueAuditCleanup(ctx, retentionDays)
	if err != nil {
		return err
	}
	log.Debug().Str("task_id", id).Msg("audit cleanup enqueued")
	return nil
}

// InlineRunner runs cleanup synchronously when the task queue is disabled.
type InlineRunner struct {
	Cleaner tasks.AuditEventCleaner
}

func (r InlineRunner) EnqueueAuditCleanup(ctx context.Context, retentionDays int) error {
	return tasks.CleanupAuditEventsProcessor(r.Cleaner)(ctx, tasks.CleanupAuditEventsTask{RetentionDays: retentionDays})
}

var (
	_ CleanupRunner = QueueRunner{}
	_ CleanupRunner = InlineRunner{}
)
