package service

import (
	"errors"
	"fmt"

	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/dto"
)

// Erreurs métier sentinelles, traduites en statut HTTP par les handlers.
var (
	ErrIdentifiantsInvalides    = errors.New("email ou mot de passe incorrect")
	ErrCompteDesactive          = errors.New("compte désactivé")
	ErrActiviteIntrouvable      = errors.New("activité introuvable")
	ErrEtablissementIntrouvable = errors.New("établissement introuvable")
	ErrHorsPerimetre            = errors.New("établissement hors de votre périmètre")
	ErrPermissionRefusee        = errors.New("permission refusée")
	ErrTransitionInvalide       = errors.New("transition de statut non autorisée")
	ErrActiviteNonTerminee      = errors.New("le rapport ne peut être soumis que sur une activité terminée")
	ErrActiviteNonValidee       = errors.New("l'activité doit être validée avant publication")
)

// ErreursValidation erreur portant la liste des champs rejetés,
// récupérée par les handlers via errors.As.
type ErreursValidation struct {
	Erreurs []dto.ErreurChamp
}

func (e *ErreursValidation) Error() string {
	return fmt.Sprintf("validation échouée (%d champ(s))", len(e.Erreurs))
}

// erreursValidationSi enveloppe une liste d'erreurs de champ non vide
func erreursValidationSi(erreurs []dto.ErreurChamp) error {
	if len(erreurs) == 0 {
		return nil
	}
	return &ErreursValidation{Erreurs: erreurs}
}
