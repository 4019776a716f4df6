package recurrence

import (
	"testing"
	"time"
)

func jour(annee int, mois time.Month, j int) time.Time {
	return time.Date(annee, mois, j, 0, 0, 0, 0, time.UTC)
}

// ── Hebdomadaire avec jours explicites ──

func TestExpand_HebdoJoursExplicites(t *testing.T) {
	// Ancre un lundi, jours lun/mer/ven, fin trois semaines plus tard.
	ancre := jour(2024, time.January, 1) // lundi
	fin := jour(2024, time.January, 22)  // lundi, trois semaines après

	dates := Expand(ancre, Hebdomadaire, &fin, []int{1, 3, 5})

	attendues := []time.Time{
		jour(2024, time.January, 3), jour(2024, time.January, 5),
		jour(2024, time.January, 8), jour(2024, time.January, 10), jour(2024, time.January, 12),
		jour(2024, time.January, 15), jour(2024, time.January, 17), jour(2024, time.January, 19),
		jour(2024, time.January, 22),
	}
	if len(dates) != len(attendues) {
		t.Fatalf("attendu %d occurrences, obtenu %d: %v", len(attendues), len(dates), dates)
	}
	for i, d := range dates {
		if !d.Equal(attendues[i]) {
			t.Errorf("occurrence %d: attendu %s, obtenu %s", i, attendues[i].Format("2006-01-02"), d.Format("2006-01-02"))
		}
		if d.Weekday() != time.Monday && d.Weekday() != time.Wednesday && d.Weekday() != time.Friday {
			t.Errorf("jour inattendu %s", d.Weekday())
		}
		if !d.After(ancre) {
			t.Errorf("occurrence %s non strictement postérieure à l'ancre", d.Format("2006-01-02"))
		}
	}
}

func TestExpand_HebdoJours_OrdreCroissant(t *testing.T) {
	ancre := jour(2024, time.March, 6) // mercredi
	fin := jour(2024, time.April, 3)

	dates := Expand(ancre, Hebdomadaire, &fin, []int{0, 2, 6})
	for i := 1; i < len(dates); i++ {
		if !dates[i].After(dates[i-1]) {
			t.Fatalf("ordre non croissant: %v puis %v", dates[i-1], dates[i])
		}
	}
}

func TestExpand_HebdoJours_PlafondCent(t *testing.T) {
	ancre := jour(2024, time.January, 1)
	fin := jour(2124, time.January, 1) // un siècle

	dates := Expand(ancre, Hebdomadaire, &fin, []int{1, 2, 3, 4, 5})
	if len(dates) != 100 {
		t.Fatalf("attendu le plafond de 100, obtenu %d", len(dates))
	}
}

func TestExpand_HebdoJours_SansDateFin(t *testing.T) {
	ancre := jour(2024, time.January, 1)

	dates := Expand(ancre, Hebdomadaire, nil, []int{1})
	if len(dates) != 100 {
		t.Fatalf("sans date de fin, attendu le plafond de 100, obtenu %d", len(dates))
	}
}

// ── Motifs à pas fixe ──

func TestExpand_Quotidien(t *testing.T) {
	ancre := jour(2024, time.January, 1)
	fin := jour(2024, time.January, 5)

	dates := Expand(ancre, Quotidien, &fin, nil)
	if len(dates) != 4 {
		t.Fatalf("attendu 4 occurrences (02 au 05), obtenu %d", len(dates))
	}
	for i, d := range dates {
		if d.Day() != i+2 {
			t.Errorf("occurrence %d: attendu jour %d, obtenu %d", i, i+2, d.Day())
		}
	}
}

func TestExpand_HebdoSansJours(t *testing.T) {
	ancre := jour(2024, time.January, 1) // lundi
	fin := jour(2024, time.January, 29)

	dates := Expand(ancre, Hebdomadaire, &fin, nil)
	if len(dates) != 4 {
		t.Fatalf("attendu 4 occurrences hebdomadaires, obtenu %d", len(dates))
	}
	for _, d := range dates {
		if d.Weekday() != time.Monday {
			t.Errorf("attendu un lundi, obtenu %s", d.Weekday())
		}
	}
}

func TestExpand_Mensuel(t *testing.T) {
	ancre := jour(2024, time.January, 15)
	fin := jour(2024, time.April, 15)

	dates := Expand(ancre, Mensuel, &fin, nil)
	if len(dates) != 3 {
		t.Fatalf("attendu 3 occurrences mensuelles, obtenu %d", len(dates))
	}
	for _, d := range dates {
		if d.Day() != 15 {
			t.Errorf("attendu le 15 du mois, obtenu %d", d.Day())
		}
	}
}

func TestExpand_QuotidienSansWeekend_AncreVendredi(t *testing.T) {
	ancre := jour(2024, time.January, 5) // vendredi
	fin := jour(2024, time.January, 12)

	dates := Expand(ancre, QuotidienSansWeekend, &fin, nil)

	// Vendredi 5 → lundi 8, mardi 9, mercredi 10, jeudi 11, vendredi 12.
	if len(dates) != 5 {
		t.Fatalf("attendu 5 occurrences, obtenu %d: %v", len(dates), dates)
	}
	if dates[0].Weekday() != time.Monday || dates[0].Day() != 8 {
		t.Errorf("la première occurrence doit être lundi 8, obtenu %s", dates[0].Format("2006-01-02"))
	}
	for _, d := range dates {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			t.Errorf("occurrence en week-end: %s", d.Format("2006-01-02"))
		}
	}
}

func TestExpand_QuotidienSansWeekend_JamaisDeWeekend(t *testing.T) {
	ancre := jour(2024, time.June, 3)
	fin := jour(2024, time.August, 30)

	for _, d := range Expand(ancre, QuotidienSansWeekend, &fin, nil) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			t.Fatalf("occurrence en week-end: %s", d.Format("2006-01-02"))
		}
	}
}

func TestExpand_PlafondCinquanteDeux(t *testing.T) {
	ancre := jour(2024, time.January, 1)
	fin := jour(2124, time.January, 1)

	for _, motif := range []string{Quotidien, Hebdomadaire, Mensuel, QuotidienSansWeekend} {
		dates := Expand(ancre, motif, &fin, nil)
		if len(dates) != 52 {
			t.Errorf("motif %s: attendu le plafond de 52, obtenu %d", motif, len(dates))
		}
	}
}

// ── Bornes ──

func TestExpand_FinAvantAncre(t *testing.T) {
	ancre := jour(2024, time.June, 15)
	avant := jour(2024, time.June, 1)

	for _, motif := range []string{Quotidien, Hebdomadaire, Mensuel, QuotidienSansWeekend} {
		if dates := Expand(ancre, motif, &avant, nil); len(dates) != 0 {
			t.Errorf("motif %s: fin avant l'ancre doit produire 0 occurrence, obtenu %d", motif, len(dates))
		}
	}
	if dates := Expand(ancre, Hebdomadaire, &avant, []int{1, 3}); len(dates) != 0 {
		t.Errorf("hebdo avec jours: fin avant l'ancre doit produire 0 occurrence, obtenu %d", len(dates))
	}
}

func TestExpand_FinEgaleAncre(t *testing.T) {
	ancre := jour(2024, time.June, 15)

	if dates := Expand(ancre, Quotidien, &ancre, nil); len(dates) != 0 {
		t.Errorf("fin égale à l'ancre doit produire 0 occurrence, obtenu %d", len(dates))
	}
}

func TestExpand_FinIncluse(t *testing.T) {
	ancre := jour(2024, time.January, 1)
	fin := jour(2024, time.January, 8) // exactement +7

	dates := Expand(ancre, Hebdomadaire, &fin, nil)
	if len(dates) != 1 || !dates[0].Equal(fin) {
		t.Fatalf("la borne de fin est incluse: attendu [%s], obtenu %v", fin.Format("2006-01-02"), dates)
	}
}
