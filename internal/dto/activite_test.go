package dto

import (
	"testing"

	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/model"
)

func requeteValide() *CreerActiviteRequest {
	attendus := 25
	return &CreerActiviteRequest{
		EtablissementID:      1,
		Date:                 "2030-03-15",
		HeureDebut:           "9",
		HeureFin:             "11:30",
		Titre:                "Atelier informatique seniors",
		TypeActivite:         "atelier",
		ParticipantsAttendus: &attendus,
	}
}

func champsEnErreur(erreurs []ErreurChamp) map[string]bool {
	m := make(map[string]bool, len(erreurs))
	for _, e := range erreurs {
		m[e.Champ] = true
	}
	return m
}

func TestCreerActiviteRequest_Valide(t *testing.T) {
	if erreurs := requeteValide().Valider(); len(erreurs) != 0 {
		t.Errorf("aucune erreur attendue, obtenu %+v", erreurs)
	}
}

func TestCreerActiviteRequest_ChampsObligatoires(t *testing.T) {
	req := &CreerActiviteRequest{}
	champs := champsEnErreur(req.Valider())

	for _, attendu := range []string{"etablissementId", "date", "heureDebut", "heureFin", "titre", "typeActivite"} {
		if !champs[attendu] {
			t.Errorf("erreur attendue sur %q, champs en erreur: %v", attendu, champs)
		}
	}
}

func TestCreerActiviteRequest_BornesTitre(t *testing.T) {
	req := requeteValide()
	req.Titre = "Jeux"
	if !champsEnErreur(req.Valider())["titre"] {
		t.Error("un titre de moins de 5 caractères doit être rejeté")
	}

	req = requeteValide()
	for len(req.Titre) <= 150 {
		req.Titre += " et encore"
	}
	if !champsEnErreur(req.Valider())["titre"] {
		t.Error("un titre de plus de 150 caractères doit être rejeté")
	}
}

func TestCreerActiviteRequest_FormatsHeure(t *testing.T) {
	acceptees := []string{"9", "09", "14", "9:05", "09:05", "23:59", "0"}
	for _, h := range acceptees {
		req := requeteValide()
		req.HeureDebut = h
		req.HeureFin = "23:59"
		if h == "23:59" {
			req.HeureDebut = "8"
		}
		if champsEnErreur(req.Valider())["heureDebut"] {
			t.Errorf("l'heure %q devrait être acceptée", h)
		}
	}

	rejetees := []string{"24", "25:00", "9:5", "9h30", "12:60", "abc", "-1"}
	for _, h := range rejetees {
		req := requeteValide()
		req.HeureDebut = h
		if !champsEnErreur(req.Valider())["heureDebut"] {
			t.Errorf("l'heure %q devrait être rejetée", h)
		}
	}
}

func TestCreerActiviteRequest_FinAvantDebut(t *testing.T) {
	req := requeteValide()
	req.HeureDebut = "15:00"
	req.HeureFin = "14:00"
	if !champsEnErreur(req.Valider())["heureFin"] {
		t.Error("une fin antérieure au début doit être rejetée")
	}

	req.HeureFin = "15:00"
	if !champsEnErreur(req.Valider())["heureFin"] {
		t.Error("une fin égale au début doit être rejetée")
	}
}

func TestCreerActiviteRequest_Recurrence(t *testing.T) {
	// Modèle inconnu.
	req := requeteValide()
	req.IsRecurrent = true
	req.RecurrencePattern = "YEARLY"
	if !champsEnErreur(req.Valider())["recurrencePattern"] {
		t.Error("un modèle de récurrence inconnu doit être rejeté")
	}

	// Date de fin obligatoire hors hebdomadaire à jours explicites.
	req = requeteValide()
	req.IsRecurrent = true
	req.RecurrencePattern = model.PatternQuotidien
	if !champsEnErreur(req.Valider())["recurrenceEndDate"] {
		t.Error("la date de fin est obligatoire pour un quotidien")
	}

	// Hebdomadaire à jours explicites : date de fin facultative.
	req = requeteValide()
	req.IsRecurrent = true
	req.RecurrencePattern = model.PatternHebdomadaire
	req.RecurrenceDays = []int{1, 3, 5}
	if erreurs := req.Valider(); len(erreurs) != 0 {
		t.Errorf("aucune erreur attendue, obtenu %+v", erreurs)
	}

	// Jour hors bornes.
	req.RecurrenceDays = []int{1, 7}
	if !champsEnErreur(req.Valider())["recurrenceDays"] {
		t.Error("un jour hors de 0..6 doit être rejeté")
	}
}

func TestListeActivitesRequest_Statuts(t *testing.T) {
	req := &ListeActivitesRequest{Statut: "PUBLIEE, TERMINEE,"}
	statuts := req.Statuts()
	if len(statuts) != 2 || statuts[0] != model.StatutPubliee || statuts[1] != model.StatutTerminee {
		t.Errorf("découpage des statuts: %v", statuts)
	}

	req = &ListeActivitesRequest{Statut: "INCONNU"}
	if len(req.Valider()) == 0 {
		t.Error("un statut inconnu doit être rejeté")
	}
}

func TestRejeterActiviteRequest_MotifObligatoire(t *testing.T) {
	req := &RejeterActiviteRequest{}
	if !champsEnErreur(req.Valider())["motif"] {
		t.Error("le motif de rejet est obligatoire")
	}

	req.Motif = "Non"
	if !champsEnErreur(req.Valider())["motif"] {
		t.Error("un motif de moins de 5 caractères doit être rejeté")
	}
}
