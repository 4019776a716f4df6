package errors

import "errors"

// ErrConflitEcriture la ligne visée a été modifiée par une opération concurrente
// (mise à jour conditionnée par le statut qui ne touche aucune ligne).
var ErrConflitEcriture = errors.New("l'enregistrement a été modifié par une autre opération, veuillez réessayer")
