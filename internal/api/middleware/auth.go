package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/model"
	"github.com/AbdessamadProschool/medaction-prod-sub005/pkg/jwt"
	"github.com/AbdessamadProschool/medaction-prod-sub005/pkg/redis"
	"github.com/AbdessamadProschool/medaction-prod-sub005/pkg/response"
)

// Clés de contexte posées par les middlewares d'authentification
const (
	CleUtilisateurID = "utilisateur_id"
	CleRole          = "role"
	CleClaims        = "claims"
)

// JWTAuth authentification obligatoire.
// Extrait et vérifie l'Access Token depuis Authorization: Bearer <token>,
// puis contrôle la liste noire Redis.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := extraireClaims(c, jwtMgr, rdb)
		if !ok {
			return
		}

		c.Set(CleUtilisateurID, claims.UtilisateurID)
		c.Set(CleRole, claims.Role)
		c.Set(CleClaims, claims)

		c.Next()
	}
}

// AuthOptionnelle authentification facultative pour les routes publiques.
// Un token valide enrichit le contexte ; son absence laisse passer en
// lecteur anonyme (traité comme citoyen). Un token fourni mais invalide
// est rejeté plutôt que silencieusement déclassé.
func AuthOptionnelle(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Set(CleRole, model.RoleCitoyen)
			c.Next()
			return
		}

		claims, ok := extraireClaims(c, jwtMgr, rdb)
		if !ok {
			return
		}

		c.Set(CleUtilisateurID, claims.UtilisateurID)
		c.Set(CleRole, claims.Role)
		c.Set(CleClaims, claims)

		c.Next()
	}
}

func extraireClaims(c *gin.Context, jwtMgr *jwt.Manager, rdb *redis.Client) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c, "En-tête d'authentification manquant")
		c.Abort()
		return nil, false
	}

	parties := strings.SplitN(authHeader, " ", 2)
	if len(parties) != 2 || parties[0] != "Bearer" {
		response.Unauthorized(c, "Format d'en-tête d'authentification invalide")
		c.Abort()
		return nil, false
	}

	claims, err := jwtMgr.ParseToken(parties[1])
	if err != nil {
		response.Unauthorized(c, "Token invalide ou expiré")
		c.Abort()
		return nil, false
	}

	if claims.TokenType != "access" {
		response.Unauthorized(c, "Type de token invalide")
		c.Abort()
		return nil, false
	}

	if rdb != nil {
		noir, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
		if err == nil && noir {
			response.Unauthorized(c, "Session révoquée")
			c.Abort()
			return nil, false
		}
	}

	return claims, true
}

// RoleAuth restreint l'accès aux rôles listés
func RoleAuth(rolesAutorises ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, existe := c.Get(CleRole)
		if !existe {
			response.Unauthorized(c, "Non authentifié")
			c.Abort()
			return
		}

		roleUtilisateur := role.(string)
		for _, r := range rolesAutorises {
			if roleUtilisateur == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "Accès non autorisé pour ce rôle")
		c.Abort()
	}
}
