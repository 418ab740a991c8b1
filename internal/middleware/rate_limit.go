package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const ContactWindow = 1 * time.Minute

// ContactRateLimit limite les envois du formulaire de contact par IP.
// Le compteur est incrémenté avant la comparaison ; en cas d'erreur Redis la requête passe.
func ContactRateLimit(rdb *redis.Client, max int) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := "contact_requests:" + c.ClientIP()

		pipe := rdb.Pipeline()
		incr := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, ContactWindow)
		if _, err := pipe.Exec(ctx); err != nil {
			logrus.Warnf("⚠️ Rate limit contact indisponible: %v", err)
			c.Next()
			return
		}

		requests := int(incr.Val())
		if requests > max {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Trop de messages. Réessayez dans 1 minute",
				"retry_after": int(ContactWindow.Seconds()),
			})
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(max))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(max-requests))
		c.Next()
	}
}
