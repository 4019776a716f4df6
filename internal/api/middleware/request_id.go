package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// longueur maximale acceptée pour un X-Request-ID externe
const requestIDMaxLen = 64

// RequestID identifiant de traçage de requête.
// Repris de l'en-tête X-Request-ID s'il est présent et raisonnable,
// généré sinon ; renvoyé dans la réponse.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(requestIDKey, rid)
		c.Header("X-Request-ID", rid)

		c.Next()
	}
}
