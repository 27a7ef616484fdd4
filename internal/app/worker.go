package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-certtrack/internal/config"
	"go-certtrack/internal/events"
	"go-certtrack/internal/messaging/kafka"
	"go-certtrack/internal/messaging/kafka/producer"
	"go-certtrack/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays pending outbox rows to Kafka until SIGINT or SIGTERM.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	_, sqlDB, err := connectDB(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.Kafka.Broker == "" {
		return errKafkaBrokerRequired
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.DB.MaxRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	if err := connection.EnsureTopic(cfg.Kafka.Broker, events.CertificateLifecycleTopic, 3); err != nil {
		logger.Warn("ensure topic failed", zap.String("topic", events.CertificateLifecycleTopic), zap.Error(err))
	}

	relay := producer.NewRelay(
		kafka.NewOutboxRepository(sqlDB),
		producer.NewKafkaPublisher(kafkaWriter),
		logger,
		cfg.Kafka.PollInterval,
	).WithRetention(cfg.Kafka.OutboxRetention)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	relay.Run(ctx)
	logger.Info("worker shutting down")
	return nil
}
