// Package sendqueue provides a small ordered outbound-send primitive: a list
// of send tasks executed strictly one at a time with a configurable
// inter-task delay, independent of any specific messaging provider.
//
// The sequential execution and delay exist to respect the messaging
// provider's rate limit. Transient failures are retried a bounded number of
// times with exponential backoff; permanent failures (bad credential) are
// not retried. The queue performs no deduplication: callers get at-least-once
// delivery semantics.
package sendqueue

import (
	"context"
	"log/slog"
	"time"

	"carcheck/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

// Sender sends a single message and returns the provider message id.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) (string, error)
}

// Task is one outbound message in the queue.
type Task struct {
	// ID correlates log lines and results; assigned automatically when empty.
	ID      string
	To      string
	Subject string
	Body    string
}

// Result is the outcome of one task.
type Result struct {
	Task      Task
	MessageID string
	Err       error
}

// Sent reports whether the task's message was accepted by the provider.
func (r Result) Sent() bool {
	return r.Err == nil
}

// Queue executes send tasks in order. A Queue is stateless between Run calls
// and safe to share across requests.
type Queue struct {
	sender     Sender
	delay      time.Duration
	maxRetries uint64
	logger     *slog.Logger
}

// New creates a Queue that waits delay between consecutive tasks and retries
// each transient failure up to maxRetries times.
func New(sender Sender, delay time.Duration, maxRetries uint64, logger *slog.Logger) *Queue {
	return &Queue{
		sender:     sender,
		delay:      delay,
		maxRetries: maxRetries,
		logger:     logger.With("component", "sendqueue"),
	}
}

// Run executes all tasks sequentially. A failed task never prevents later
// tasks from being attempted; each Result carries its own error. The
// inter-task delay is applied between consecutive attempts, not after the
// last one.
func (q *Queue) Run(ctx context.Context, tasks []Task) []Result {
	results := make([]Result, 0, len(tasks))

	for i, task := range tasks {
		if task.ID == "" {
			task.ID = uuid.NewString()
		}

		if i > 0 {
			if err := q.wait(ctx); err != nil {
				results = append(results, Result{Task: task, Err: err})
				continue
			}
		}

		messageID, err := q.send(ctx, task)
		if err != nil {
			q.logger.WarnContext(ctx, "send task failed",
				"task_id", task.ID, "to", task.To, "error", err)
		}
		results = append(results, Result{Task: task, MessageID: messageID, Err: err})
	}

	return results
}

// send attempts one task, retrying transient upstream failures with
// exponential backoff. Permanent failures (bad credential) stop immediately.
func (q *Queue) send(ctx context.Context, task Task) (string, error) {
	operation := func() (string, error) {
		messageID, err := q.sender.Send(ctx, task.To, task.Subject, task.Body)
		if err != nil && !errs.IsTransientUpstream(err) {
			return "", backoff.Permanent(err)
		}
		return messageID, err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), q.maxRetries),
		ctx,
	)
	return backoff.RetryWithData(operation, policy)
}

func (q *Queue) wait(ctx context.Context) error {
	if q.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(q.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
