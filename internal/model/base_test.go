package model

import (
	"reflect"
	"testing"
)

func TestListeTexte_Scan(t *testing.T) {
	cas := []struct {
		nom     string
		source  string
		attendu ListeTexte
	}{
		{"vide", "{}", ListeTexte{}},
		{"simple", "{a.jpg,b.jpg}", ListeTexte{"a.jpg", "b.jpg"}},
		{"virgule dans un élément", `{"a,b.jpg",c.jpg}`, ListeTexte{"a,b.jpg", "c.jpg"}},
		{"guillemet échappé", `{"photo \"fête\".jpg"}`, ListeTexte{`photo "fête".jpg`}},
		{"mélange cité et non cité", `{a.jpg,"b, le retour.jpg",c.jpg}`, ListeTexte{"a.jpg", "b, le retour.jpg", "c.jpg"}},
	}

	for _, c := range cas {
		t.Run(c.nom, func(t *testing.T) {
			var l ListeTexte
			if err := l.Scan(c.source); err != nil {
				t.Fatalf("Scan(%q): %v", c.source, err)
			}
			if !reflect.DeepEqual(l, c.attendu) {
				t.Errorf("Scan(%q): attendu %v, obtenu %v", c.source, c.attendu, l)
			}
		})
	}
}

func TestListeTexte_AllerRetour(t *testing.T) {
	originale := ListeTexte{"a,b.jpg", `photo "été".jpg`, "simple.jpg"}

	v, err := originale.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var relue ListeTexte
	if err := relue.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !reflect.DeepEqual(relue, originale) {
		t.Errorf("aller-retour: attendu %v, obtenu %v", originale, relue)
	}
}

func TestJoursSemaine_AllerRetour(t *testing.T) {
	originaux := JoursSemaine{1, 3, 5}

	v, err := originaux.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "{1,3,5}" {
		t.Errorf("littéral attendu {1,3,5}, obtenu %v", v)
	}

	var relus JoursSemaine
	if err := relus.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !reflect.DeepEqual(relus, originaux) {
		t.Errorf("aller-retour: attendu %v, obtenu %v", originaux, relus)
	}
}
