package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"filevault/internal/core/domain"
	"filevault/internal/core/port"
)

const sinkTimeout = 5 * time.Second

// Recorder is an asynchronous, best-effort audit sink. Record never
// blocks the triggering operation; sink failures are logged and swallowed.
type Recorder struct {
	repo      port.AuditRepository
	publisher port.EventPublisher
	logger    *slog.Logger
	events    chan domain.AuditEvent
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewRecorder starts the recorder's worker. publisher may be nil when no
// broker is configured.
func NewRecorder(repo port.AuditRepository, publisher port.EventPublisher, logger *slog.Logger, bufferSize int) *Recorder {
	r := &Recorder{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		events:    make(chan domain.AuditEvent, bufferSize),
	}

	r.wg.Add(1)
	go r.run()

	return r
}

// Record enqueues one event. When the buffer is full the event is dropped
// rather than blocking the caller.
func (r *Recorder) Record(event domain.AuditEvent) {
	select {
	case r.events <- event:
	default:
		r.logger.Warn("audit buffer full, event dropped",
			"kind", event.Kind,
			"sessionID", event.SessionID)
	}
}

func (r *Recorder) run() {
	defer r.wg.Done()

	for event := range r.events {
		r.sink(event)
	}
}

func (r *Recorder) sink(event domain.AuditEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), sinkTimeout)
	defer cancel()

	if err := r.repo.Insert(ctx, event); err != nil {
		r.logger.Error("failed to persist audit event",
			"kind", event.Kind,
			"sessionID", event.SessionID,
			"error", err)
	}

	if r.publisher != nil {
		if err := r.publisher.Publish(ctx, event); err != nil {
			r.logger.Warn("failed to publish audit event",
				"kind", event.Kind,
				"error", err)
		}
	}
}

// Close drains buffered events and stops the worker
func (r *Recorder) Close() {
	r.closeOnce.Do(func() {
		close(r.events)
	})
	r.wg.Wait()
}
