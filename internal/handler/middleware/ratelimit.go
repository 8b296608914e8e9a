package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"hydro-command/internal/handler/httperr"
	"hydro-command/internal/infra/ratelimit"
	"hydro-command/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// RateLimit keys requests by authenticated device, then user, then client IP.
// A limiter failure lets the request through.
func RateLimit(limiter ratelimit.Limiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := scope + ":" + callerKey(c)
		res, err := limiter.Allow(c.Request.Context(), id)
		if err != nil {
			_ = c.Error(err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		if !res.Allowed {
			c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(res)))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errs.ErrRateLimited, "Rate limit exceeded", gin.H{"reset_at": res.ResetAt})
			return
		}
		c.Next()
	}
}

func callerKey(c *gin.Context) string {
	if deviceID, ok := GetDeviceID(c); ok {
		return "device:" + deviceID
	}
	if userID, ok := GetUserID(c); ok {
		return "user:" + userID.String()
	}
	return "ip:" + c.ClientIP()
}

func retryAfterSeconds(res ratelimit.Result) int {
	secs := int(math.Ceil(time.Until(res.ResetAt).Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}
