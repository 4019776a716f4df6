package model

import (
	"testing"
	"time"
)

func TestStatutActivite_PeutPasserA(t *testing.T) {
	cas := []struct {
		depuis  StatutActivite
		vers    StatutActivite
		attendu bool
	}{
		{StatutBrouillon, StatutEnAttenteValidation, true},
		{StatutEnAttenteValidation, StatutValide, true},
		{StatutEnAttenteValidation, StatutRejetee, true},
		{StatutValide, StatutPubliee, true},
		{StatutRejetee, StatutEnAttenteValidation, true}, // nouvelle soumission après rejet
		{StatutPubliee, StatutTerminee, true},
		{StatutPubliee, StatutRapportComplete, true},
		{StatutTerminee, StatutRapportComplete, true},

		// Aucun retour en arrière hors rejet.
		{StatutBrouillon, StatutPubliee, false},
		{StatutBrouillon, StatutValide, false},
		{StatutValide, StatutBrouillon, false},
		{StatutPubliee, StatutBrouillon, false},
		{StatutPubliee, StatutValide, false},
		{StatutRapportComplete, StatutPubliee, false},
		{StatutRapportComplete, StatutTerminee, false},
		{StatutRejetee, StatutValide, false},
		{StatutTerminee, StatutPubliee, false},
	}

	for _, c := range cas {
		if got := c.depuis.PeutPasserA(c.vers); got != c.attendu {
			t.Errorf("%s → %s: attendu %v, obtenu %v", c.depuis, c.vers, c.attendu, got)
		}
	}
}

func TestStatutActivite_EstValide(t *testing.T) {
	for _, s := range []StatutActivite{
		StatutBrouillon, StatutEnAttenteValidation, StatutValide,
		StatutRejetee, StatutPubliee, StatutTerminee, StatutRapportComplete,
	} {
		if !s.EstValide() {
			t.Errorf("%s devrait être un statut connu", s)
		}
	}
	if StatutActivite("ARCHIVE").EstValide() {
		t.Error("ARCHIVE ne devrait pas être un statut connu")
	}
}

func TestProgrammeActivite_StatutEffectif(t *testing.T) {
	maintenant := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	passee := &ProgrammeActivite{
		Statut:   StatutPubliee,
		Date:     time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		HeureFin: "18:00",
	}
	if s := passee.StatutEffectif(maintenant); s != StatutTerminee {
		t.Errorf("activité publiée passée: attendu TERMINEE, obtenu %s", s)
	}

	future := &ProgrammeActivite{
		Statut:   StatutPubliee,
		Date:     time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC),
		HeureFin: "18:00",
	}
	if s := future.StatutEffectif(maintenant); s != StatutPubliee {
		t.Errorf("activité publiée à venir: attendu PUBLIEE, obtenu %s", s)
	}

	brouillon := &ProgrammeActivite{
		Statut:   StatutBrouillon,
		Date:     time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		HeureFin: "18:00",
	}
	if s := brouillon.StatutEffectif(maintenant); s != StatutBrouillon {
		t.Errorf("un brouillon passé reste BROUILLON, obtenu %s", s)
	}
}

func TestJoursSemaine_ScanValue(t *testing.T) {
	var j JoursSemaine
	if err := j.Scan("{1,3,5}"); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(j) != 3 || j[0] != 1 || j[1] != 3 || j[2] != 5 {
		t.Errorf("attendu [1 3 5], obtenu %v", j)
	}

	v, err := j.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "{1,3,5}" {
		t.Errorf("attendu {1,3,5}, obtenu %v", v)
	}

	var vide JoursSemaine
	if err := vide.Scan("{}"); err != nil {
		t.Fatalf("Scan vide: %v", err)
	}
	if len(vide) != 0 {
		t.Errorf("attendu vide, obtenu %v", vide)
	}
}
