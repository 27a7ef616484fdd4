package producer

import (
	"context"
	"time"

	"go-certtrack/internal/messaging/kafka"

	"go.uber.org/zap"
)

const (
	defaultBatchSize = 50
	purgeEvery       = time.Hour
)

// Relay moves pending outbox rows to the broker and, when a retention is set,
// deletes rows that were published longer ago than that.
type Relay struct {
	repo         kafka.OutboxRepository
	publisher    Publisher
	logger       *zap.Logger
	pollInterval time.Duration
	batchSize    int
	retention    time.Duration
	now          func() time.Time
}

func NewRelay(repo kafka.OutboxRepository, publisher Publisher, logger *zap.Logger, pollInterval time.Duration) *Relay {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}
	if logger == nil {
		logger = zap.L()
	}
	return &Relay{
		repo:         repo,
		publisher:    publisher,
		logger:       logger.Named("kafka.producer.relay"),
		pollInterval: pollInterval,
		batchSize:    defaultBatchSize,
		now:          time.Now,
	}
}

// WithRetention enables purging of published rows older than d.
func (r *Relay) WithRetention(d time.Duration) *Relay {
	r.retention = d
	return r
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()
	purge := time.NewTicker(purgeEvery)
	defer purge.Stop()

	r.logger.Info("outbox relay started",
		zap.Duration("poll_interval", r.pollInterval),
		zap.Duration("retention", r.retention),
	)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("outbox relay stopped")
			return
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil {
				r.logger.Error("relay outbox events failed", zap.Error(err))
			}
		case <-purge.C:
			if _, err := r.Purge(ctx); err != nil {
				r.logger.Error("purge outbox events failed", zap.Error(err))
			}
		}
	}
}

// Purge deletes published rows past the retention. It is a no-op without one.
func (r *Relay) Purge(ctx context.Context) (int64, error) {
	if r.retention <= 0 {
		return 0, nil
	}
	n, err := r.repo.PurgeSent(ctx, r.now().Add(-r.retention))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.logger.Info("outbox events purged", zap.Int64("deleted", n))
	}
	return n, nil
}

// RunOnce publishes one batch and returns how many events were sent.
// A failed publish is marked for a delayed retry and does not stop the batch.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	events, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	r.logger.Debug("relaying outbox events", zap.Int("count", len(events)))

	sent := 0
	for _, event := range events {
		log := r.logger.With(
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("request_id", event.RequestID),
		)

		if err := r.publisher.Publish(ctx, event); err != nil {
			log.Warn("publish outbox event failed", zap.Int("retry_count", event.RetryCount), zap.Error(err))
			if markErr := r.repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				log.Error("mark outbox failed failed", zap.Error(markErr))
			}
			continue
		}

		if err := r.repo.MarkSent(ctx, event.ID); err != nil {
			log.Error("mark outbox sent failed", zap.Error(err))
			continue
		}
		sent++
	}

	r.logger.Info("outbox batch relayed", zap.Int("sent", sent), zap.Int("total", len(events)))
	return sent, nil
}
