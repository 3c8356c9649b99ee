package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-coope/internal/shared/contextutil"
	"go-coope/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	CodeProcessing    = "PROCESSING"

	idempotencyLockTTL  = 30 * time.Second
	idempotencyCacheTTL = 24 * time.Hour
)

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// IdempotencyKey returns the cache key for a request, scoped by route and
// actor so keys from different callers never collide.
func IdempotencyKey(route, actorID, key string) string {
	return fmt.Sprintf("idemp:%s:%s:%s", route, actorID, key)
}

// Idempotency replays the stored response for a repeated POST carrying the
// same Idempotency-Key. Only successful responses are stored; a concurrent
// duplicate gets 409 while the first request is still running.
func Idempotency(rdb *redis.Client, logger *zap.Logger) gin.HandlerFunc {
	log := logger.Named("middleware.idempotency")

	return func(c *gin.Context) {
		idempKey := c.GetHeader(IdempotencyHeader)
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		md := contextutil.ExtractMetadata(ctx)
		cacheKey := IdempotencyKey(c.FullPath(), md.ActorID, idempKey)
		lockKey := cacheKey + ":lock"

		if raw, err := rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached cachedResponse
			if json.Unmarshal(raw, &cached) == nil {
				log.Debug("idempotent replay", zap.String("key", cacheKey))
				c.Data(cached.Status, cached.ContentType, cached.Body)
				c.Abort()
				return
			}
		}

		acquired, err := rdb.SetNX(ctx, lockKey, md.RequestID, idempotencyLockTTL).Result()
		if err != nil {
			// Without Redis the request proceeds unprotected.
			log.Warn("idempotency lock unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !acquired {
			response.Error(c, http.StatusConflict, CodeProcessing,
				"Su solicitud se está procesando, espere un momento", nil)
			c.Abort()
			return
		}
		defer func() {
			if err := rdb.Del(ctx, lockKey).Err(); err != nil {
				log.Warn("release idempotency lock failed", zap.String("key", lockKey), zap.Error(err))
			}
		}()

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec

		c.Next()

		status := rec.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}

		data, err := json.Marshal(cachedResponse{
			Status:      status,
			ContentType: rec.Header().Get("Content-Type"),
			Body:        rec.body.Bytes(),
		})
		if err != nil {
			return
		}
		if err := rdb.Set(ctx, cacheKey, data, idempotencyCacheTTL).Err(); err != nil {
			log.Warn("store idempotent response failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}
}
