package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/api/middleware"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/dto"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/service"
	"github.com/AbdessamadProschool/medaction-prod-sub005/pkg/jwt"
	"github.com/AbdessamadProschool/medaction-prod-sub005/pkg/response"
)

// AuthHandler handlers d'authentification
type AuthHandler struct {
	authSvc *service.AuthService
}

// NewAuthHandler crée AuthHandler
func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login connexion par email et mot de passe
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email et mot de passe requis")
		return
	}

	tokens, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, tokens)
}

// Refresh renouvellement de la paire de tokens
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Refresh token requis")
		return
	}

	tokens, err := h.authSvc.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, tokens)
}

// Logout révocation du token courant
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	brut, ok := c.Get(middleware.CleClaims)
	if !ok {
		response.Unauthorized(c, "Non authentifié")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), brut.(*jwt.Claims)); err != nil {
		response.InternalError(c)
		return
	}

	response.OKMessage(c, nil, "Déconnexion effectuée")
}

// Me profil de l'utilisateur connecté
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	acteur := acteurDepuisContexte(c)

	profil, err := h.authSvc.Me(c.Request.Context(), acteur.ID)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, profil)
}

func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrIdentifiantsInvalides):
		response.Unauthorized(c, "Email ou mot de passe incorrect")
	case errors.Is(err, service.ErrCompteDesactive):
		response.Forbidden(c, "Compte désactivé")
	case errors.Is(err, jwt.ErrTokenExpire), errors.Is(err, jwt.ErrTokenInvalide):
		response.Unauthorized(c, "Token invalide ou expiré")
	default:
		response.InternalError(c)
	}
}
