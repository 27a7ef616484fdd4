package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go-certtrack/internal/activity"
	"go-certtrack/internal/certificate"
	"go-certtrack/internal/config"
	"go-certtrack/internal/events"
	"go-certtrack/internal/messaging/kafka/consumer"
	"go-certtrack/internal/shared/connection"

	"go.uber.org/zap"
)

var errKafkaBrokerRequired = errors.New("KAFKA_BROKER is required")

// RunConsumer records certificate activity from the lifecycle topic and drops
// stale analytics until SIGINT or SIGTERM.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, sqlDB, err := connectDB(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.Kafka.Broker == "" {
		return errKafkaBrokerRequired
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis, cfg.DB.MaxRetries)
	if err != nil {
		return err
	}
	defer rdb.Close()

	activityService := activity.NewService(
		activity.NewRepository(gormDB),
		certificate.NewAnalyticsCache(rdb, 0, logger),
		logger,
	)

	reader := consumer.NewReader(cfg.Kafka.Broker, cfg.Kafka.ConsumerGroup, events.CertificateLifecycleTopic)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer.ConsumeCertificateLifecycle(ctx, reader, activityService, logger)
	logger.Info("consumer shutting down")
	return nil
}
