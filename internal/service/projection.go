package service

import (
	"time"

	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/dto"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/model"
)

// ── Projection par rôle ──
//
// La vue citoyenne est une structure distincte qui ne porte aucun champ de
// rapport : quelle que soit l'évolution du modèle, ces clés ne peuvent pas
// fuiter dans une réponse publique.

const (
	formatDateISO    = "2006-01-02"
	formatHorodatage = time.RFC3339
)

func formaterDate(t time.Time) string { return t.Format(formatDateISO) }

func formaterDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(formatDateISO)
}

// projeterActivite construit la vue adaptée au rôle de l'acteur.
// Le statut exposé est le statut effectif (TERMINEE dérivé), jamais le
// statut brut stocké.
func projeterActivite(a *model.ProgrammeActivite, acteur Acteur, maintenant time.Time) interface{} {
	if acteur.Role == model.RoleCoordinateur || acteur.Role == model.RoleAdmin {
		return versActiviteResponse(a, maintenant)
	}
	return versActivitePublique(a, maintenant)
}

func projeterActivites(activites []model.ProgrammeActivite, acteur Acteur, maintenant time.Time) interface{} {
	if acteur.Role == model.RoleCoordinateur || acteur.Role == model.RoleAdmin {
		liste := make([]dto.ActiviteResponse, 0, len(activites))
		for i := range activites {
			liste = append(liste, *versActiviteResponse(&activites[i], maintenant))
		}
		return liste
	}
	liste := make([]dto.ActivitePubliqueResponse, 0, len(activites))
	for i := range activites {
		liste = append(liste, *versActivitePublique(&activites[i], maintenant))
	}
	return liste
}

func versEtablissementBref(e *model.Etablissement) *dto.EtablissementBref {
	if e == nil {
		return nil
	}
	return &dto.EtablissementBref{ID: e.ID, Nom: e.Nom, Type: e.Type}
}

func versActiviteResponse(a *model.ProgrammeActivite, maintenant time.Time) *dto.ActiviteResponse {
	r := &dto.ActiviteResponse{
		ID:                   a.ID,
		EtablissementID:      a.EtablissementID,
		Etablissement:        versEtablissementBref(a.Etablissement),
		CreatedBy:            a.CreatedBy,
		Titre:                a.Titre,
		Description:          a.Description,
		TypeActivite:         a.TypeActivite,
		Date:                 formaterDate(a.Date),
		HeureDebut:           a.HeureDebut,
		HeureFin:             a.HeureFin,
		Lieu:                 a.Lieu,
		ResponsableNom:       a.ResponsableNom,
		ParticipantsAttendus: a.ParticipantsAttendus,
		IsVisiblePublic:      a.IsVisiblePublic,
		IsValideParAdmin:     a.IsValideParAdmin,
		RequireValidation:    a.RequireValidation,
		Statut:               string(a.StatutEffectif(maintenant)),
		MotifRejet:           a.MotifRejet,
		IsRecurrent:          a.IsRecurrent,
		RecurrencePattern:    a.RecurrencePattern,
		RecurrenceEndDate:    formaterDatePtr(a.RecurrenceEndDate),
		RecurrenceDays:       a.RecurrenceDays,
		RecurrenceParentID:   a.RecurrenceParentID,

		PresenceEffective:      a.PresenceEffective,
		TauxPresence:           a.TauxPresence,
		CommentaireDeroulement: a.CommentaireDeroulement,
		Difficultes:            a.Difficultes,
		PointsPositifs:         a.PointsPositifs,
		PhotosRapport:          a.PhotosRapport,
		NoteQualite:            a.NoteQualite,
		Recommandations:        a.Recommandations,
		RapportComplete:        a.RapportComplete,
		DateRapport:            "",

		CreatedAt: a.CreatedAt.Format(formatHorodatage),
		UpdatedAt: a.UpdatedAt.Format(formatHorodatage),
	}
	if a.DateRapport != nil {
		r.DateRapport = a.DateRapport.Format(formatHorodatage)
	}
	return r
}

func versActivitePublique(a *model.ProgrammeActivite, maintenant time.Time) *dto.ActivitePubliqueResponse {
	return &dto.ActivitePubliqueResponse{
		ID:                   a.ID,
		EtablissementID:      a.EtablissementID,
		Etablissement:        versEtablissementBref(a.Etablissement),
		Titre:                a.Titre,
		Description:          a.Description,
		TypeActivite:         a.TypeActivite,
		Date:                 formaterDate(a.Date),
		HeureDebut:           a.HeureDebut,
		HeureFin:             a.HeureFin,
		Lieu:                 a.Lieu,
		ResponsableNom:       a.ResponsableNom,
		ParticipantsAttendus: a.ParticipantsAttendus,
		Statut:               string(a.StatutEffectif(maintenant)),
		IsRecurrent:          a.IsRecurrent,
		RecurrencePattern:    a.RecurrencePattern,
	}
}

func versEtablissementResponse(e *model.Etablissement) *dto.EtablissementResponse {
	return &dto.EtablissementResponse{
		ID:        e.ID,
		Nom:       e.Nom,
		Type:      e.Type,
		Adresse:   e.Adresse,
		Ville:     e.Ville,
		Actif:     e.Actif,
		CreatedAt: e.CreatedAt.Format(formatHorodatage),
		UpdatedAt: e.UpdatedAt.Format(formatHorodatage),
	}
}
