package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/api/middleware"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/model"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/service"
)

// acteurDepuisContexte reconstruit l'acteur posé par le middleware
// d'authentification. Sans authentification, l'acteur est un lecteur
// anonyme traité comme citoyen.
func acteurDepuisContexte(c *gin.Context) service.Acteur {
	acteur := service.Acteur{Role: model.RoleCitoyen}
	if id, ok := c.Get(middleware.CleUtilisateurID); ok {
		acteur.ID = id.(uint)
	}
	if role, ok := c.Get(middleware.CleRole); ok {
		acteur.Role = role.(string)
	}
	return acteur
}

// idDepuisParam analyse un identifiant numérique d'URL
func idDepuisParam(c *gin.Context, nom string) (uint, bool) {
	brut := c.Param(nom)
	id, err := strconv.ParseUint(brut, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
