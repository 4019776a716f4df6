// Package recurrence étend une activité récurrente en dates d'occurrences.
// Calcul pur sur des entrées déjà validées : aucune E/S, aucun échec.
package recurrence

import "time"

// Plafonds de sécurité contre une date de fin aberrante.
const (
	maxOccurrencesPas   = 52  // motifs à pas fixe (quotidien, hebdo, mensuel…)
	maxOccurrencesJours = 100 // parcours jour par jour avec jours explicites
)

// Motifs de récurrence reconnus.
const (
	Quotidien            = "DAILY"
	Hebdomadaire         = "WEEKLY"
	Mensuel              = "MONTHLY"
	QuotidienSansWeekend = "DAILY_NO_WEEKEND"
)

// Expand produit les dates des occurrences SUPPLÉMENTAIRES d'une activité
// récurrente, dans l'ordre croissant. La date d'ancrage elle-même n'est pas
// émise (elle devient le parent). fin est une borne supérieure incluse ;
// jours (0=dimanche … 6=samedi) n'est considéré qu'avec le motif WEEKLY.
//
// Une fin antérieure ou égale à l'ancre produit zéro occurrence, sans erreur.
func Expand(ancre time.Time, motif string, fin *time.Time, jours []int) []time.Time {
	ancre = tronquerJour(ancre)

	if motif == Hebdomadaire && len(jours) > 0 {
		return parcoursJours(ancre, fin, jours)
	}
	if fin == nil {
		return nil
	}
	return parcoursPas(ancre, motif, tronquerJour(*fin))
}

// parcoursJours avance jour par jour à partir du lendemain de l'ancre et émet
// chaque date dont le jour de semaine figure dans l'ensemble demandé.
// Arrêt dès que la date dépasse fin ou que 100 occurrences sont émises.
func parcoursJours(ancre time.Time, fin *time.Time, jours []int) []time.Time {
	demandes := make(map[time.Weekday]bool, len(jours))
	for _, j := range jours {
		demandes[time.Weekday(j)] = true
	}

	var borne time.Time
	if fin != nil {
		borne = tronquerJour(*fin)
	}

	var dates []time.Time
	courant := ancre.AddDate(0, 0, 1)
	for len(dates) < maxOccurrencesJours {
		if fin != nil && courant.After(borne) {
			break
		}
		if demandes[courant.Weekday()] {
			dates = append(dates, courant)
		}
		courant = courant.AddDate(0, 0, 1)
	}
	return dates
}

// parcoursPas applique la fonction de pas du motif jusqu'à dépasser fin
// ou atteindre 52 occurrences.
func parcoursPas(ancre time.Time, motif string, fin time.Time) []time.Time {
	var dates []time.Time
	courant := pasSuivant(ancre, motif)
	for !courant.After(fin) && len(dates) < maxOccurrencesPas {
		dates = append(dates, courant)
		courant = pasSuivant(courant, motif)
	}
	return dates
}

// pasSuivant calcule la date suivante selon le motif.
func pasSuivant(d time.Time, motif string) time.Time {
	switch motif {
	case Hebdomadaire:
		return d.AddDate(0, 0, 7)
	case Mensuel:
		// Sémantique calendaire standard : le débordement de fin de mois
		// glisse vers le mois suivant (31 janv + 1 mois = 2/3 mars).
		return d.AddDate(0, 1, 0)
	case QuotidienSansWeekend:
		suivant := d.AddDate(0, 0, 1)
		switch suivant.Weekday() {
		case time.Saturday:
			return suivant.AddDate(0, 0, 2)
		case time.Sunday:
			return suivant.AddDate(0, 0, 1)
		}
		return suivant
	default: // Quotidien
		return d.AddDate(0, 0, 1)
	}
}

func tronquerJour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
