package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/api/middleware"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/dto"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/model"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/service"
	pkgerrors "github.com/AbdessamadProschool/medaction-prod-sub005/pkg/errors"
	"github.com/AbdessamadProschool/medaction-prod-sub005/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func contexteTest() (*gin.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, rec
}

// ── Aides de contexte ──

func TestActeurDepuisContexte_AnonymeEstCitoyen(t *testing.T) {
	c, _ := contexteTest()

	acteur := acteurDepuisContexte(c)
	if acteur.ID != 0 || acteur.Role != model.RoleCitoyen {
		t.Errorf("acteur anonyme attendu, obtenu %+v", acteur)
	}
	if !acteur.EstAnonyme() {
		t.Error("l'acteur sans identifiant devrait être anonyme")
	}
}

func TestActeurDepuisContexte_Authentifie(t *testing.T) {
	c, _ := contexteTest()
	c.Set(middleware.CleUtilisateurID, uint(42))
	c.Set(middleware.CleRole, model.RoleCoordinateur)

	acteur := acteurDepuisContexte(c)
	if acteur.ID != 42 || acteur.Role != model.RoleCoordinateur {
		t.Errorf("acteur attendu {42 coordinateur}, obtenu %+v", acteur)
	}
}

func TestIdDepuisParam(t *testing.T) {
	cas := []struct {
		brut    string
		attendu uint
		ok      bool
	}{
		{"17", 17, true},
		{"0", 0, false},
		{"abc", 0, false},
		{"-3", 0, false},
		{"", 0, false},
	}

	for _, ca := range cas {
		c, _ := contexteTest()
		c.Params = gin.Params{{Key: "id", Value: ca.brut}}

		id, ok := idDepuisParam(c, "id")
		if ok != ca.ok || id != ca.attendu {
			t.Errorf("idDepuisParam(%q) = (%d, %v), attendu (%d, %v)", ca.brut, id, ok, ca.attendu, ca.ok)
		}
	}
}

// ── Traduction des erreurs métier ──

func TestHandleActiviteError_StatutsHTTP(t *testing.T) {
	h := &ActiviteHandler{}

	cas := []struct {
		nom    string
		err    error
		statut int
	}{
		{"introuvable", service.ErrActiviteIntrouvable, http.StatusNotFound},
		{"etablissement_inconnu", service.ErrEtablissementIntrouvable, http.StatusNotFound},
		{"hors_perimetre", service.ErrHorsPerimetre, http.StatusForbidden},
		{"permission", service.ErrPermissionRefusee, http.StatusForbidden},
		{"transition", service.ErrTransitionInvalide, http.StatusBadRequest},
		{"non_terminee", service.ErrActiviteNonTerminee, http.StatusBadRequest},
		{"non_validee", service.ErrActiviteNonValidee, http.StatusBadRequest},
		{"conflit", pkgerrors.ErrConflitEcriture, http.StatusConflict},
	}

	for _, ca := range cas {
		t.Run(ca.nom, func(t *testing.T) {
			c, rec := contexteTest()
			h.handleActiviteError(c, ca.err)

			if rec.Code != ca.statut {
				t.Errorf("statut attendu %d, obtenu %d", ca.statut, rec.Code)
			}

			var env response.Response
			if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
				t.Fatalf("enveloppe illisible: %v", err)
			}
			if env.Success {
				t.Error("success devrait être false")
			}
			if env.Message == "" {
				t.Error("une erreur doit porter un message")
			}
		})
	}
}

func TestHandleActiviteError_ErreursDeChamp(t *testing.T) {
	h := &ActiviteHandler{}
	c, rec := contexteTest()

	h.handleActiviteError(c, &service.ErreursValidation{
		Erreurs: []dto.ErreurChamp{{Champ: "titre", Message: "doit contenir au moins 5 caractères"}},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("statut attendu 400, obtenu %d", rec.Code)
	}

	var brut struct {
		Success bool              `json:"success"`
		Erreurs []dto.ErreurChamp `json:"erreurs"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &brut); err != nil {
		t.Fatalf("enveloppe illisible: %v", err)
	}
	if len(brut.Erreurs) != 1 || brut.Erreurs[0].Champ != "titre" {
		t.Errorf("liste d'erreurs de champ attendue, obtenu %+v", brut.Erreurs)
	}
}
