package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/dto"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/service"
	pkgerrors "github.com/AbdessamadProschool/medaction-prod-sub005/pkg/errors"
	"github.com/AbdessamadProschool/medaction-prod-sub005/pkg/response"
)

// ActiviteHandler handlers du programme d'activités
type ActiviteHandler struct {
	activiteSvc *service.ActiviteService
}

// NewActiviteHandler crée ActiviteHandler
func NewActiviteHandler(activiteSvc *service.ActiviteService) *ActiviteHandler {
	return &ActiviteHandler{activiteSvc: activiteSvc}
}

// Lister recherche paginée des activités
// GET /api/v1/activites
func (h *ActiviteHandler) Lister(c *gin.Context) {
	var req dto.ListeActivitesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Paramètres de recherche invalides")
		return
	}

	res, err := h.activiteSvc.Lister(c.Request.Context(), acteurDepuisContexte(c), &req)
	if err != nil {
		h.handleActiviteError(c, err)
		return
	}

	if res.AucunEtablissement {
		response.OKListeVide(c, "Aucun établissement ne vous est affecté")
		return
	}

	response.OKPage(c, res.Liste, res.Total, res.Page, res.Limit)
}

// Obtenir détail d'une activité
// GET /api/v1/activites/:id
func (h *ActiviteHandler) Obtenir(c *gin.Context) {
	id, ok := idDepuisParam(c, "id")
	if !ok {
		response.BadRequest(c, "Identifiant d'activité invalide")
		return
	}

	vue, err := h.activiteSvc.Obtenir(c.Request.Context(), acteurDepuisContexte(c), id)
	if err != nil {
		h.handleActiviteError(c, err)
		return
	}

	response.OK(c, vue)
}

// Occurrences occurrences filles d'une activité récurrente
// GET /api/v1/activites/:id/occurrences
func (h *ActiviteHandler) Occurrences(c *gin.Context) {
	id, ok := idDepuisParam(c, "id")
	if !ok {
		response.BadRequest(c, "Identifiant d'activité invalide")
		return
	}

	liste, err := h.activiteSvc.Occurrences(c.Request.Context(), acteurDepuisContexte(c), id)
	if err != nil {
		h.handleActiviteError(c, err)
		return
	}

	response.OK(c, liste)
}

// Creer création d'une activité, avec expansion de récurrence éventuelle
// POST /api/v1/activites
func (h *ActiviteHandler) Creer(c *gin.Context) {
	var req dto.CreerActiviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Corps de requête invalide")
		return
	}

	res, err := h.activiteSvc.Creer(c.Request.Context(), acteurDepuisContexte(c), &req)
	if err != nil {
		h.handleActiviteError(c, err)
		return
	}

	message := "Activité créée"
	if res.NombreOccurrences > 0 {
		message = "Activité récurrente créée"
	}
	response.Created(c, res.Activite, message)
}

// Soumettre passage en attente de validation
// POST /api/v1/activites/:id/soumettre
func (h *ActiviteHandler) Soumettre(c *gin.Context) {
	h.transition(c, func(acteur service.Acteur, id uint) (*dto.ActiviteResponse, error) {
		return h.activiteSvc.Soumettre(c.Request.Context(), acteur, id)
	}, "Activité soumise pour validation")
}

// Valider approbation administrateur
// POST /api/v1/activites/:id/valider
func (h *ActiviteHandler) Valider(c *gin.Context) {
	h.transition(c, func(acteur service.Acteur, id uint) (*dto.ActiviteResponse, error) {
		return h.activiteSvc.Valider(c.Request.Context(), acteur, id)
	}, "Activité validée")
}

// Rejeter refus avec motif
// POST /api/v1/activites/:id/rejeter
func (h *ActiviteHandler) Rejeter(c *gin.Context) {
	id, ok := idDepuisParam(c, "id")
	if !ok {
		response.BadRequest(c, "Identifiant d'activité invalide")
		return
	}

	var req dto.RejeterActiviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Motif de rejet requis")
		return
	}

	vue, err := h.activiteSvc.Rejeter(c.Request.Context(), acteurDepuisContexte(c), id, &req)
	if err != nil {
		h.handleActiviteError(c, err)
		return
	}

	response.OKMessage(c, vue, "Activité rejetée")
}

// Publier mise en visibilité publique
// POST /api/v1/activites/:id/publier
func (h *ActiviteHandler) Publier(c *gin.Context) {
	h.transition(c, func(acteur service.Acteur, id uint) (*dto.ActiviteResponse, error) {
		return h.activiteSvc.Publier(c.Request.Context(), acteur, id)
	}, "Activité publiée")
}

// SoumettreRapport dépôt du rapport post-activité
// POST /api/v1/activites/:id/rapport
func (h *ActiviteHandler) SoumettreRapport(c *gin.Context) {
	id, ok := idDepuisParam(c, "id")
	if !ok {
		response.BadRequest(c, "Identifiant d'activité invalide")
		return
	}

	var req dto.RapporterActiviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Corps de requête invalide")
		return
	}

	vue, err := h.activiteSvc.SoumettreRapport(c.Request.Context(), acteurDepuisContexte(c), id, &req)
	if err != nil {
		h.handleActiviteError(c, err)
		return
	}

	response.OKMessage(c, vue, "Rapport enregistré")
}

func (h *ActiviteHandler) transition(c *gin.Context, op func(service.Acteur, uint) (*dto.ActiviteResponse, error), message string) {
	id, ok := idDepuisParam(c, "id")
	if !ok {
		response.BadRequest(c, "Identifiant d'activité invalide")
		return
	}

	vue, err := op(acteurDepuisContexte(c), id)
	if err != nil {
		h.handleActiviteError(c, err)
		return
	}

	response.OKMessage(c, vue, message)
}

// handleActiviteError traduction des erreurs métier en statut HTTP
func (h *ActiviteHandler) handleActiviteError(c *gin.Context, err error) {
	var ev *service.ErreursValidation
	switch {
	case errors.As(err, &ev):
		response.ErreursValidation(c, ev.Erreurs)
	case errors.Is(err, service.ErrActiviteIntrouvable):
		response.NotFound(c, "Activité introuvable")
	case errors.Is(err, service.ErrEtablissementIntrouvable):
		response.NotFound(c, "Établissement introuvable")
	case errors.Is(err, service.ErrHorsPerimetre):
		response.Forbidden(c, "Établissement hors de votre périmètre")
	case errors.Is(err, service.ErrPermissionRefusee):
		response.Forbidden(c, "Vous n'avez pas la permission d'effectuer cette opération")
	case errors.Is(err, service.ErrTransitionInvalide):
		response.BadRequest(c, "Transition de statut non autorisée")
	case errors.Is(err, service.ErrActiviteNonValidee):
		response.BadRequest(c, "L'activité doit être validée avant publication")
	case errors.Is(err, service.ErrActiviteNonTerminee):
		response.BadRequest(c, "Le rapport ne peut être soumis que sur une activité terminée")
	case errors.Is(err, pkgerrors.ErrConflitEcriture):
		response.Error(c, http.StatusConflict, "L'activité a été modifiée par une autre opération, veuillez réessayer")
	default:
		response.InternalError(c)
	}
}
