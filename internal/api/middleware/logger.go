package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger journalisation structurée des requêtes HTTP
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		debut := time.Now()
		chemin := c.Request.URL.Path
		requete := c.Request.URL.RawQuery

		c.Next()

		latence := time.Since(debut)
		statut := c.Writer.Status()

		champs := []zap.Field{
			zap.Int("status", statut),
			zap.String("method", c.Request.Method),
			zap.String("path", chemin),
			zap.String("query", requete),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", latence),
			zap.String("request_id", c.GetString(requestIDKey)),
		}

		if len(c.Errors) > 0 {
			champs = append(champs, zap.String("errors", c.Errors.ByType(gin.ErrorTypePrivate).String()))
		}

		switch {
		case statut >= 500:
			logger.Error("Échec du traitement de la requête", champs...)
		case statut >= 400:
			logger.Warn("Erreur client", champs...)
		default:
			logger.Info("Requête traitée", champs...)
		}
	}
}
