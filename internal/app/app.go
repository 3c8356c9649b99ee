package app

import (
	"errors"
	"net/http"

	"go-coope/internal/config"
	"go-coope/internal/database"
	"go-coope/internal/middleware"
	"go-coope/internal/shared/blobstore"
	"go-coope/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure, applies migrations and registers
// every route. The returned cleanup closes what was opened.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (func(), error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	if err := database.RunMigrations(sqlDB, logger); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis, cfg.Database.MaxRetries, logger)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	cleanup := func() {
		if err := errors.Join(rdb.Close(), sqlDB.Close()); err != nil {
			logger.Warn("close connections failed", zap.Error(err))
		}
	}

	documents, err := blobstore.NewLocalStore(cfg.Upload.Dir)
	if err != nil {
		cleanup()
		return nil, err
	}
	photos, err := blobstore.NewLocalStore(cfg.Upload.PhotoDir)
	if err != nil {
		cleanup()
		return nil, err
	}

	router.Use(gin.Recovery(), middleware.RequestID())
	router.GET("/healthz", func(c *gin.Context) {
		if err := sqlDB.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.Static("/uploads", cfg.Upload.PhotoDir)

	registerModules(router, cfg, gormDB, rdb, stores{documents: documents, photos: photos}, logger)

	return cleanup, nil
}
