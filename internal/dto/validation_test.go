package dto

import "testing"

func TestNormaliserHeure(t *testing.T) {
	cas := map[string]string{
		"9":     "09:00",
		"09":    "09:00",
		"14":    "14:00",
		"9:30":  "09:30",
		"09:30": "09:30",
		"0":     "00:00",
	}
	for entree, attendu := range cas {
		if obtenu := NormaliserHeure(entree); obtenu != attendu {
			t.Errorf("NormaliserHeure(%q) = %q, attendu %q", entree, obtenu, attendu)
		}
	}
}

func TestMinutesDepuisMinuit(t *testing.T) {
	cas := map[string]int{
		"0":     0,
		"9":     540,
		"09:30": 570,
		"23:59": 1439,
	}
	for entree, attendu := range cas {
		if obtenu := minutesDepuisMinuit(entree); obtenu != attendu {
			t.Errorf("minutesDepuisMinuit(%q) = %d, attendu %d", entree, obtenu, attendu)
		}
	}
}
