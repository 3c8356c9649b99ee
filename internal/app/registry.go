package app

import (
	"time"

	"go-coope/internal/associate"
	"go-coope/internal/config"
	"go-coope/internal/document"
	"go-coope/internal/documenttype"
	"go-coope/internal/messaging/kafka"
	"go-coope/internal/middleware"
	"go-coope/internal/shared/blobstore"
	"go-coope/internal/shared/counter"
	"go-coope/internal/shared/transaction"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

type stores struct {
	documents blobstore.Store
	photos    blobstore.Store
}

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	gormDB *gorm.DB,
	rdb *redis.Client,
	files stores,
	logger *zap.Logger,
) {
	// --- Repositories ---
	associateRepo := associate.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	documentRepo := document.NewRepository(gormDB)
	documentTypeRepo := documenttype.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	txm := transaction.NewManager(gormDB, logger)

	// --- Services ---
	associateService := associate.NewServiceWithOutbox(txm, associateRepo, counterRepo, outboxRepo, logger)
	documentTypeService := documenttype.NewService(documentTypeRepo, rdb, logger)
	documentService := document.NewService(documentRepo, associateRepo, documentTypeRepo, files.documents, logger)

	// --- Handlers ---
	associateHandler := associate.NewHandler(associateService, files.photos, logger)
	documentTypeHandler := documenttype.NewHandler(documentTypeService, logger)
	documentHandler := document.NewHandler(documentService, files.documents, logger)

	uploadLimit := middleware.RateLimitByActor(
		rate.Every(time.Minute/time.Duration(max(cfg.Upload.RatePerMinute, 1))),
		max(cfg.Upload.Burst, 1),
	)

	// --- Routes Registration ---
	api := router.Group("/api/v1",
		middleware.AuthMiddleware(cfg.Auth.Secret),
		middleware.ContextLogger(logger),
	)
	{
		associate.RegisterRoutes(api, associateHandler, middleware.Idempotency(rdb, logger))

		documents := api.Group("/documentos")
		documenttype.RegisterRoutes(documents, documentTypeHandler)
		document.RegisterRoutes(documents, documentHandler, uploadLimit)
	}
}
