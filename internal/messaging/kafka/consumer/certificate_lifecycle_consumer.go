package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-certtrack/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type CertificateLifecycleHandler interface {
	HandleCertificateLifecycle(ctx context.Context, event events.CertificateLifecycleEvent) error
}

const (
	maxHandleAttempts = 3
	retryBackoff      = 500 * time.Millisecond
)

// ConsumeCertificateLifecycle retries a failing message a few times before
// committing past it. Undecodable or unknown messages are skipped.
func ConsumeCertificateLifecycle(
	ctx context.Context,
	reader MessageReader,
	handler CertificateLifecycleHandler,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.certificate_lifecycle")
	log.Info("certificate lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("certificate lifecycle consumer stopped")
				return
			}
			log.Error("fetch certificate lifecycle message failed", zap.Error(err))
			continue
		}

		for attempt := 1; ; attempt++ {
			err := handleMessage(ctx, msg, handler, log)
			if err == nil {
				break
			}
			if attempt == maxHandleAttempts {
				log.Error("giving up on certificate lifecycle message",
					zap.Int64("offset", msg.Offset),
					zap.Int("attempts", attempt),
				)
				break
			}
			select {
			case <-ctx.Done():
				log.Info("certificate lifecycle consumer stopped")
				return
			case <-time.After(time.Duration(attempt) * retryBackoff):
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit certificate lifecycle message failed", zap.Error(err))
		}
	}
}

func handleMessage(ctx context.Context, msg kafkago.Message, handler CertificateLifecycleHandler, log *zap.Logger) error {
	var event events.CertificateLifecycleEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode certificate lifecycle event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		return nil
	}
	if !events.IsCertificateEvent(event.EventType) {
		log.Warn("skipping unknown certificate event", zap.String("event_type", event.EventType))
		return nil
	}

	if err := handler.HandleCertificateLifecycle(ctx, event); err != nil {
		log.Error("handle certificate lifecycle event failed",
			zap.String("event_id", event.EventID),
			zap.String("certificate_id", event.CertificateID),
			zap.Error(err),
		)
		return err
	}

	log.Debug("certificate lifecycle event handled",
		zap.String("event_id", event.EventID),
		zap.String("event_type", event.EventType),
	)
	return nil
}
