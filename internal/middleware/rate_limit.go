package middleware

import (
	"net/http"
	"sync"

	"go-coope/internal/shared/contextutil"
	"go-coope/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const CodeTooManyRequests = "TOO_MANY_REQUESTS"

// KeyedRateLimiter keeps one token bucket per key.
type KeyedRateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	r        rate.Limit
	b        int
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		r:        r,
		b:        b,
	}
}

func (l *KeyedRateLimiter) Limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(l.r, l.b)
		l.limiters[key] = limiter
	}
	return limiter
}

// RateLimitByActor limits each authenticated actor separately; anonymous
// callers are keyed by client IP. r is requests per second, b the burst.
func RateLimitByActor(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if actor, ok := contextutil.GetActor(c.Request.Context()); ok {
			key = "actor:" + actor.ID.String()
		}

		if !limiter.Limiter(key).Allow() {
			response.Error(c, http.StatusTooManyRequests, CodeTooManyRequests,
				"Demasiadas solicitudes, intente de nuevo en unos segundos", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

