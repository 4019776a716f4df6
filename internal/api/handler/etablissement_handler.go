package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/dto"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/service"
	"github.com/AbdessamadProschool/medaction-prod-sub005/pkg/response"
)

// EtablissementHandler handlers du référentiel des établissements
type EtablissementHandler struct {
	etabSvc *service.EtablissementService
}

// NewEtablissementHandler crée EtablissementHandler
func NewEtablissementHandler(etabSvc *service.EtablissementService) *EtablissementHandler {
	return &EtablissementHandler{etabSvc: etabSvc}
}

// Lister liste des établissements
// GET /api/v1/etablissements
func (h *EtablissementHandler) Lister(c *gin.Context) {
	liste, err := h.etabSvc.Lister(c.Request.Context(), acteurDepuisContexte(c))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"liste": liste})
}

// Obtenir détail d'un établissement
// GET /api/v1/etablissements/:id
func (h *EtablissementHandler) Obtenir(c *gin.Context) {
	id, ok := idDepuisParam(c, "id")
	if !ok {
		response.BadRequest(c, "Identifiant d'établissement invalide")
		return
	}

	etab, err := h.etabSvc.Obtenir(c.Request.Context(), id)
	if err != nil {
		h.handleEtablissementError(c, err)
		return
	}

	response.OK(c, etab)
}

// Creer ajout au référentiel
// POST /api/v1/etablissements
func (h *EtablissementHandler) Creer(c *gin.Context) {
	var req dto.CreerEtablissementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Corps de requête invalide")
		return
	}

	etab, err := h.etabSvc.Creer(c.Request.Context(), acteurDepuisContexte(c), &req)
	if err != nil {
		h.handleEtablissementError(c, err)
		return
	}

	response.Created(c, etab, "Établissement créé")
}

// Modifier mise à jour partielle
// PUT /api/v1/etablissements/:id
func (h *EtablissementHandler) Modifier(c *gin.Context) {
	id, ok := idDepuisParam(c, "id")
	if !ok {
		response.BadRequest(c, "Identifiant d'établissement invalide")
		return
	}

	var req dto.ModifierEtablissementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Corps de requête invalide")
		return
	}

	etab, err := h.etabSvc.Modifier(c.Request.Context(), acteurDepuisContexte(c), id, &req)
	if err != nil {
		h.handleEtablissementError(c, err)
		return
	}

	response.OKMessage(c, etab, "Établissement mis à jour")
}

func (h *EtablissementHandler) handleEtablissementError(c *gin.Context, err error) {
	var ev *service.ErreursValidation
	switch {
	case errors.As(err, &ev):
		response.ErreursValidation(c, ev.Erreurs)
	case errors.Is(err, service.ErrEtablissementIntrouvable):
		response.NotFound(c, "Établissement introuvable")
	case errors.Is(err, service.ErrPermissionRefusee):
		response.Forbidden(c, "Vous n'avez pas la permission d'effectuer cette opération")
	default:
		response.InternalError(c)
	}
}
