package handler

import (
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/service"
)

// Handler point d'entrée agrégé des handlers HTTP
type Handler struct {
	Auth          *AuthHandler
	Activite      *ActiviteHandler
	Etablissement *EtablissementHandler
	Export        *ExportHandler
}

// NewHandler assemble tous les handlers
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:          NewAuthHandler(svc.Auth),
		Activite:      NewActiviteHandler(svc.Activite),
		Etablissement: NewEtablissementHandler(svc.Etablissement),
		Export:        NewExportHandler(svc.Export),
	}
}
