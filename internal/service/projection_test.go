package service

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/model"
)

// activité terminée portant un rapport complet, cas le plus sensible
// pour la projection publique
func activiteAvecRapport() *model.ProgrammeActivite {
	presence := 18
	note := 5
	taux := 90.0
	dateRapport := dateTest("2020-01-11")
	return &model.ProgrammeActivite{
		ID:              7,
		EtablissementID: 1,
		CreatedBy:       10,
		Titre:           "Atelier lecture",
		TypeActivite:    "atelier",
		Date:            dateTest("2020-01-10"),
		HeureDebut:      "09:00",
		HeureFin:        "11:00",
		IsVisiblePublic: true, IsValideParAdmin: true,
		Statut: model.StatutRapportComplete,

		PresenceEffective:      &presence,
		TauxPresence:           &taux,
		NoteQualite:            &note,
		CommentaireDeroulement: "Séance appréciée",
		Difficultes:            "Salle trop petite",
		PhotosRapport:          []string{"photo1.jpg"},
		RapportComplete:        true,
		DateRapport:            &dateRapport,
	}
}

func TestProjection_CitoyenSansChampsDeRapport(t *testing.T) {
	a := activiteAvecRapport()

	vue := projeterActivite(a, acteurCitoyen, time.Now())
	brut, err := json.Marshal(vue)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	js := string(brut)
	for _, cle := range []string{
		"presenceEffective", "tauxPresence", "noteQualite",
		"commentaireDeroulement", "difficultes", "pointsPositifs",
		"photosRapport", "recommandations", "rapportComplete", "dateRapport",
		"motifRejet", "createdBy",
	} {
		if strings.Contains(js, cle) {
			t.Errorf("la clé %q ne doit pas apparaître dans la vue citoyenne: %s", cle, js)
		}
	}
	if !strings.Contains(js, `"titre":"Atelier lecture"`) {
		t.Errorf("les champs publics doivent rester présents: %s", js)
	}
}

func TestProjection_CoordinateurVueComplete(t *testing.T) {
	a := activiteAvecRapport()

	vue := projeterActivite(a, acteurCoordinateur, time.Now())
	brut, err := json.Marshal(vue)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	js := string(brut)
	for _, cle := range []string{"presenceEffective", "tauxPresence", "noteQualite", "rapportComplete"} {
		if !strings.Contains(js, cle) {
			t.Errorf("la clé %q doit apparaître dans la vue coordinateur: %s", cle, js)
		}
	}
}

func TestProjection_StatutEffectifDerive(t *testing.T) {
	// Publiée, fin passée : le statut projeté est TERMINEE alors que la
	// base porte encore PUBLIEE.
	a := &model.ProgrammeActivite{
		ID: 8, EtablissementID: 1, Titre: "Sortie vélo",
		Date: dateTest("2020-01-10"), HeureDebut: "09:00", HeureFin: "11:00",
		IsVisiblePublic: true, IsValideParAdmin: true,
		Statut: model.StatutPubliee,
	}

	rep := versActiviteResponse(a, time.Now())
	if rep.Statut != string(model.StatutTerminee) {
		t.Errorf("statut projeté attendu TERMINEE, obtenu %s", rep.Statut)
	}

	pub := versActivitePublique(a, time.Now())
	if pub.Statut != string(model.StatutTerminee) {
		t.Errorf("statut public projeté attendu TERMINEE, obtenu %s", pub.Statut)
	}
}
