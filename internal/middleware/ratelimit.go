package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// RateLimit limita requisições por IP nas rotas públicas usando janela fixa
// no Redis (INCR + EXPIRE). Com rdb nulo o middleware vira passthrough, para
// ambientes sem Redis.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf(
			"ratelimit:%s:%d",
			c.ClientIP(),
			time.Now().Unix()/int64(window.Seconds()),
		)

		ctx := c.Request.Context()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			// Redis fora do ar não bloqueia agendamento
			c.Next()
			return
		}

		if count == 1 {
			rdb.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate_limited",
			})
			return
		}

		c.Next()
	}
}
