package connection

import (
	"context"
	"fmt"
	"net"
	"time"

	"go-coope/internal/config"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func retryPolicy(maxRetries uint64) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = 10 * time.Second
	return backoff.WithMaxRetries(b, maxRetries)
}

// ConnectGORMWithRetry opens the pool and pings it, retrying with
// exponential backoff while the database comes up.
func ConnectGORMWithRetry(cfg config.DatabaseConfig, logger *zap.Logger) (*gorm.DB, error) {
	var db *gorm.DB
	attempt := 0

	op := func() error {
		attempt++
		gdb, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err != nil {
			logger.Warn("gorm open failed", zap.Int("attempt", attempt), zap.Error(err))
			return err
		}

		sqlDB, err := gdb.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.Ping(); err != nil {
			logger.Warn("db ping failed", zap.Int("attempt", attempt), zap.Error(err))
			_ = sqlDB.Close()
			return err
		}

		maxIdle := cfg.MaxIdleConns
		if maxIdle <= 0 || maxIdle > cfg.MaxOpenConns {
			maxIdle = cfg.MaxOpenConns
		}
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(maxIdle)
		sqlDB.SetConnMaxLifetime(time.Hour)

		db = gdb
		return nil
	}

	if err := backoff.Retry(op, retryPolicy(cfg.MaxRetries)); err != nil {
		return nil, fmt.Errorf("database connection failed after %d attempts: %w", attempt, err)
	}

	logger.Info("database connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("dbname", cfg.Name),
	)
	return db, nil
}

func ConnectRedisWithRetry(cfg config.RedisConfig, maxRetries uint64, logger *zap.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	err := backoff.Retry(func() error {
		return rdb.Ping(context.Background()).Err()
	}, retryPolicy(maxRetries))
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr))
	return rdb, nil
}

// ConnectKafkaWithRetry waits until the broker accepts TCP connections and
// returns a writer that routes by message topic.
func ConnectKafkaWithRetry(cfg config.KafkaConfig, maxRetries uint64, logger *zap.Logger) (*kafkago.Writer, error) {
	err := backoff.Retry(func() error {
		conn, err := kafkago.Dial("tcp", cfg.Broker)
		if err != nil {
			return err
		}
		return conn.Close()
	}, retryPolicy(maxRetries))
	if err != nil {
		return nil, fmt.Errorf("kafka connection failed: %w", err)
	}

	logger.Info("kafka reachable", zap.String("broker", cfg.Broker))

	return &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Broker),
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
		Transport: &kafkago.Transport{
			Dial: (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		},
	}, nil
}
