package app

import (
	"context"
	"os/signal"
	"syscall"

	"go-coope/internal/config"
	"go-coope/internal/messaging/kafka"
	"go-coope/internal/messaging/kafka/producer"
	"go-coope/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker drains the outbox to Kafka until SIGINT or SIGTERM.
func RunWorker(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, log)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka, cfg.Database.MaxRetries, log)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(gormDB)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		log,
		cfg.Outbox.PollInterval,
		cfg.Outbox.BatchSize,
	)

	log.Info("worker shut down")
	return nil
}
