package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS autorise les origines configurées du portail
func CORS(originesAutorisees []string) gin.HandlerFunc {
	origines := make(map[string]bool, len(originesAutorisees))
	for _, o := range originesAutorisees {
		origines[strings.TrimRight(o, "/")] = true
	}

	return func(c *gin.Context) {
		origine := c.GetHeader("Origin")

		if origines[origine] {
			c.Header("Access-Control-Allow-Origin", origine)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Max-Age", "86400")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
