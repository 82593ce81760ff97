package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/cppla/blogsite/utils"
)

const limiterIdle = 5 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware throttles each client IP to perMinute requests with a
// burst of half that. Every call gets its own set of buckets.
func RateLimitMiddleware(perMinute int) gin.HandlerFunc {
	if perMinute < 1 {
		perMinute = 1
	}
	every := rate.Every(time.Minute / time.Duration(perMinute))
	burst := perMinute / 2
	if burst < 1 {
		burst = 1
	}

	var (
		mu       sync.Mutex
		visitors = map[string]*visitor{}
	)

	allow := func(ip string) bool {
		mu.Lock()
		defer mu.Unlock()

		now := time.Now()
		for key, v := range visitors {
			if now.Sub(v.lastSeen) > limiterIdle {
				delete(visitors, key)
			}
		}
		v, ok := visitors[ip]
		if !ok {
			v = &visitor{limiter: rate.NewLimiter(every, burst)}
			visitors[ip] = v
		}
		v.lastSeen = now
		return v.limiter.Allow()
	}

	return func(ctx *gin.Context) {
		if !allow(ctx.ClientIP()) {
			utils.Sugar.Warnf("rate limit exceeded ip=%s path=%s", ctx.ClientIP(), ctx.Request.URL.Path)
			utils.AbortWithError(ctx, http.StatusTooManyRequests, 42901, "rate limit exceeded")
			return
		}
		ctx.Next()
	}
}
