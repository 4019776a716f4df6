package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/service"
	"github.com/AbdessamadProschool/medaction-prod-sub005/pkg/response"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handlers d'export du programme
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler crée ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportProgramme programme d'un établissement en Excel
// GET /api/v1/export/programme?etablissementId=xxx
func (h *ExportHandler) ExportProgramme(c *gin.Context) {
	brut := c.Query("etablissementId")
	etablissementID, err := strconv.ParseUint(brut, 10, 64)
	if err != nil || etablissementID == 0 {
		response.BadRequest(c, "etablissementId est requis")
		return
	}

	buf, nomFichier, err := h.exportSvc.ExportProgramme(c.Request.Context(), acteurDepuisContexte(c), uint(etablissementID))
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	nomEncode := url.QueryEscape(nomFichier)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+nomEncode)
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}

// FluxICS calendrier public au format iCalendar
// GET /api/v1/export/calendrier.ics?etablissementId=xxx
func (h *ExportHandler) FluxICS(c *gin.Context) {
	var etablissementID *uint
	if brut := c.Query("etablissementId"); brut != "" {
		id, err := strconv.ParseUint(brut, 10, 64)
		if err != nil || id == 0 {
			response.BadRequest(c, "etablissementId invalide")
			return
		}
		v := uint(id)
		etablissementID = &v
	}

	contenu, err := h.exportSvc.FluxICS(c.Request.Context(), etablissementID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="medaction.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", contenu)
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEtablissementIntrouvable):
		response.NotFound(c, "Établissement introuvable")
	case errors.Is(err, service.ErrHorsPerimetre):
		response.Forbidden(c, "Établissement hors de votre périmètre")
	case errors.Is(err, service.ErrExportAucuneActivite):
		response.NotFound(c, "Aucune activité à exporter pour cet établissement")
	default:
		response.InternalError(c)
	}
}
