package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/utils"
)

// NewLoginRateLimiter membatasi percobaan login. Satu limiter untuk seluruh
// endpoint sudah cukup: aplikasi ini melayani satu sesi saja.
func NewLoginRateLimiter() gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(5), 10) // 5 req/s, burst 10

	return func(c *gin.Context) {
		if !limiter.Allow() {
			utils.RespondError(c, http.StatusTooManyRequests,
				errors.New("too many attempts, please wait a moment"))
			c.Abort()
			return
		}
		c.Next()
	}
}
