package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response enveloppe de réponse unifiée (conforme au contrat d'API)
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Erreurs    interface{} `json:"erreurs,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination métadonnées de pagination
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// ── Réponses de succès ──

// OK 200
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

// OKMessage 200 avec message
func OKMessage(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data})
}

// Created 201
func Created(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

// OKPage 200 avec pagination
func OKPage(c *gin.Context, liste interface{}, total int64, page, limit int) {
	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    liste,
		Pagination: &Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

// OKListeVide 200 avec liste vide et message explicatif
// (coordinateur sans établissement géré : résultat vide, pas une erreur)
func OKListeVide(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    []interface{}{},
	})
}

// ── Réponses d'erreur ──

// Error réponse d'erreur générique
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, Response{Success: false, Message: message})
}

// ErreursValidation 400 avec la liste des erreurs par champ
func ErreursValidation(c *gin.Context, erreurs interface{}) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: "Données invalides",
		Erreurs: erreurs,
	})
}

// ── Raccourcis usuels ──

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden 403
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500 — message générique, le détail reste côté serveur
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Erreur interne du serveur")
}
