package middleware

import (
	"time"

	"go-coope/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger attaches a logger carrying the request id and, once
// authenticated, the actor id. It logs one line per finished request.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		ctx := c.Request.Context()
		md := contextutil.ExtractMetadata(ctx)

		fields := []zap.Field{zap.String("request_id", md.RequestID)}
		if md.ActorID != "" {
			fields = append(fields, zap.String("actor_id", md.ActorID))
		}
		reqLogger := logger.With(fields...)

		c.Request = c.Request.WithContext(contextutil.WithLogger(ctx, reqLogger))

		c.Next()

		reqLogger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
