package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AbdessamadProschool/medaction-prod-sub005/pkg/redis"
	"github.com/AbdessamadProschool/medaction-prod-sub005/pkg/response"
)

// RateLimit limitation de débit par IP et par route, fenêtre Redis.
// Sans client Redis ou en cas d'erreur Redis, la requête passe.
func RateLimit(rdb *redis.Client, limite int, fenetre time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		cle := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		autorise, err := rdb.CheckRateLimit(c.Request.Context(), cle, limite, fenetre)
		if err != nil {
			c.Next()
			return
		}

		if !autorise {
			response.Error(c, http.StatusTooManyRequests, "Trop de requêtes, veuillez réessayer plus tard")
			c.Abort()
			return
		}

		c.Next()
	}
}
