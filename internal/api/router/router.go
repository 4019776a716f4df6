package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AbdessamadProschool/medaction-prod-sub005/config"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/api/handler"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/api/middleware"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/model"
	"github.com/AbdessamadProschool/medaction-prod-sub005/pkg/jwt"
	"github.com/AbdessamadProschool/medaction-prod-sub005/pkg/redis"
)

// Setup initialise et renvoie le moteur de routage Gin
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Middlewares globaux ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── Contrôle de santé ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// Authentification (routes ouvertes, débit limité)
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 10, time.Minute))
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Lectures publiques : token facultatif, un anonyme lit en citoyen.
		public := v1.Group("")
		public.Use(middleware.AuthOptionnelle(jwtMgr, rdb))
		{
			public.GET("/activites", h.Activite.Lister)
			public.GET("/activites/:id", h.Activite.Obtenir)
			public.GET("/activites/:id/occurrences", h.Activite.Occurrences)
			public.GET("/etablissements", h.Etablissement.Lister)
			public.GET("/etablissements/:id", h.Etablissement.Obtenir)
			public.GET("/export/calendrier.ics", h.Export.FluxICS)
		}

		// Routes authentifiées
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// Programme d'activités
			activites := authorized.Group("/activites")
			{
				activites.POST("", middleware.RoleAuth(model.RoleCoordinateur, model.RoleAdmin), h.Activite.Creer)
				activites.POST("/:id/soumettre", middleware.RoleAuth(model.RoleCoordinateur, model.RoleAdmin), h.Activite.Soumettre)
				activites.POST("/:id/valider", middleware.RoleAuth(model.RoleAdmin), h.Activite.Valider)
				activites.POST("/:id/rejeter", middleware.RoleAuth(model.RoleAdmin), h.Activite.Rejeter)
				activites.POST("/:id/publier", middleware.RoleAuth(model.RoleAdmin), h.Activite.Publier)
				activites.POST("/:id/rapport", middleware.RoleAuth(model.RoleCoordinateur, model.RoleAdmin), h.Activite.SoumettreRapport)
			}

			// Référentiel des établissements
			etablissements := authorized.Group("/etablissements")
			{
				etablissements.POST("", middleware.RoleAuth(model.RoleAdmin), h.Etablissement.Creer)
				etablissements.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.Etablissement.Modifier)
			}

			// Export
			export := authorized.Group("/export")
			{
				export.GET("/programme", middleware.RoleAuth(model.RoleCoordinateur, model.RoleAdmin), h.Export.ExportProgramme)
			}
		}
	}

	return r
}
