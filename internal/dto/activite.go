package dto

import (
	"strings"
	"time"

	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/model"
)

// ── Requêtes ──

// CreerActiviteRequest corps de POST /activites
type CreerActiviteRequest struct {
	EtablissementID      uint   `json:"etablissementId" validate:"required,gt=0"`
	Date                 string `json:"date"            validate:"required"`
	HeureDebut           string `json:"heureDebut"      validate:"required"`
	HeureFin             string `json:"heureFin"        validate:"required"`
	Titre                string `json:"titre"           validate:"required,min=5,max=150"`
	TypeActivite         string `json:"typeActivite"    validate:"required,max=50"`
	Description          string `json:"description"     validate:"omitempty,max=2000"`
	ResponsableNom       string `json:"responsableNom"  validate:"omitempty,max=150"`
	ParticipantsAttendus *int   `json:"participantsAttendus" validate:"omitempty,gt=0"`
	Lieu                 string `json:"lieu"            validate:"omitempty,max=255"`

	IsVisiblePublic   *bool `json:"isVisiblePublic"`   // défaut true ; appliqué à la publication, jamais à la création
	RequireValidation *bool `json:"requireValidation"` // défaut true

	IsRecurrent       bool   `json:"isRecurrent"`
	RecurrencePattern string `json:"recurrencePattern"`
	RecurrenceEndDate string `json:"recurrenceEndDate"`
	RecurrenceDays    []int  `json:"recurrenceDays"`
}

// Valider contrôle les contraintes de champ et renvoie la liste des erreurs.
// Une liste vide signifie que la requête est acceptable.
func (r *CreerActiviteRequest) Valider() []ErreurChamp {
	var erreurs []ErreurChamp
	if err := valide.Struct(r); err != nil {
		erreurs = erreursDepuisValidator(err)
	}

	if r.Date != "" {
		if !formatDate.MatchString(r.Date) {
			erreurs = append(erreurs, ErreurChamp{Champ: "date", Message: "format attendu AAAA-MM-JJ"})
		} else if _, err := time.Parse("2006-01-02", r.Date); err != nil {
			erreurs = append(erreurs, ErreurChamp{Champ: "date", Message: "date invalide"})
		}
	}

	heuresOK := true
	if r.HeureDebut != "" && !HeureValide(r.HeureDebut) {
		erreurs = append(erreurs, ErreurChamp{Champ: "heureDebut", Message: "format attendu H ou HH:MM"})
		heuresOK = false
	}
	if r.HeureFin != "" && !HeureValide(r.HeureFin) {
		erreurs = append(erreurs, ErreurChamp{Champ: "heureFin", Message: "format attendu H ou HH:MM"})
		heuresOK = false
	}
	if heuresOK && r.HeureDebut != "" && r.HeureFin != "" &&
		minutesDepuisMinuit(r.HeureFin) <= minutesDepuisMinuit(r.HeureDebut) {
		erreurs = append(erreurs, ErreurChamp{Champ: "heureFin", Message: "doit être postérieure à l'heure de début"})
	}

	erreurs = append(erreurs, r.validerRecurrence()...)
	return erreurs
}

func (r *CreerActiviteRequest) validerRecurrence() []ErreurChamp {
	if !r.IsRecurrent {
		return nil
	}

	var erreurs []ErreurChamp
	if !model.PatternsConnus[r.RecurrencePattern] {
		erreurs = append(erreurs, ErreurChamp{
			Champ:   "recurrencePattern",
			Message: "doit être DAILY, WEEKLY, MONTHLY ou DAILY_NO_WEEKEND",
		})
		return erreurs
	}

	joursExplicites := r.RecurrencePattern == model.PatternHebdomadaire && len(r.RecurrenceDays) > 0
	if joursExplicites {
		for _, j := range r.RecurrenceDays {
			if j < 0 || j > 6 {
				erreurs = append(erreurs, ErreurChamp{
					Champ:   "recurrenceDays",
					Message: "les jours doivent être compris entre 0 (dimanche) et 6 (samedi)",
				})
				break
			}
		}
	}

	if r.RecurrenceEndDate == "" {
		// Obligatoire sauf pour un hebdomadaire à jours explicites
		// (le plafond d'occurrences borne alors la génération).
		if !joursExplicites {
			erreurs = append(erreurs, ErreurChamp{
				Champ:   "recurrenceEndDate",
				Message: "obligatoire pour ce modèle de récurrence",
			})
		}
	} else if !formatDate.MatchString(r.RecurrenceEndDate) {
		erreurs = append(erreurs, ErreurChamp{Champ: "recurrenceEndDate", Message: "format attendu AAAA-MM-JJ"})
	} else if _, err := time.Parse("2006-01-02", r.RecurrenceEndDate); err != nil {
		erreurs = append(erreurs, ErreurChamp{Champ: "recurrenceEndDate", Message: "date invalide"})
	}

	return erreurs
}

// ListeActivitesRequest paramètres de GET /activites
type ListeActivitesRequest struct {
	EtablissementID *uint  `form:"etablissementId"`
	DateDebut       string `form:"dateDebut"`
	DateFin         string `form:"dateFin"`
	Statut          string `form:"statut"` // valeur unique ou liste séparée par des virgules
	Page            int    `form:"page"`
	Limit           int    `form:"limit"`
}

// Valider contrôle les filtres de liste
func (r *ListeActivitesRequest) Valider() []ErreurChamp {
	var erreurs []ErreurChamp
	for champ, v := range map[string]string{"dateDebut": r.DateDebut, "dateFin": r.DateFin} {
		if v == "" {
			continue
		}
		if !formatDate.MatchString(v) {
			erreurs = append(erreurs, ErreurChamp{Champ: champ, Message: "format attendu AAAA-MM-JJ"})
		} else if _, err := time.Parse("2006-01-02", v); err != nil {
			erreurs = append(erreurs, ErreurChamp{Champ: champ, Message: "date invalide"})
		}
	}
	for _, s := range r.Statuts() {
		if !s.EstValide() {
			erreurs = append(erreurs, ErreurChamp{Champ: "statut", Message: "statut inconnu: " + string(s)})
		}
	}
	if r.Page < 0 {
		erreurs = append(erreurs, ErreurChamp{Champ: "page", Message: "doit être supérieur ou égal à 1"})
	}
	if r.Limit < 0 {
		erreurs = append(erreurs, ErreurChamp{Champ: "limit", Message: "doit être supérieur ou égal à 1"})
	}
	return erreurs
}

// Statuts découpe le filtre statut (liste "any of" séparée par des virgules)
func (r *ListeActivitesRequest) Statuts() []model.StatutActivite {
	if r.Statut == "" {
		return nil
	}
	parties := strings.Split(r.Statut, ",")
	statuts := make([]model.StatutActivite, 0, len(parties))
	for _, p := range parties {
		p = strings.TrimSpace(p)
		if p != "" {
			statuts = append(statuts, model.StatutActivite(p))
		}
	}
	return statuts
}

// RapporterActiviteRequest corps de POST /activites/:id/rapport
type RapporterActiviteRequest struct {
	PresenceEffective      *int     `json:"presenceEffective" validate:"required,min=0"`
	NoteQualite            *int     `json:"noteQualite"       validate:"required,min=1,max=5"`
	CommentaireDeroulement string   `json:"commentaireDeroulement" validate:"omitempty,max=2000"`
	Difficultes            string   `json:"difficultes"            validate:"omitempty,max=2000"`
	PointsPositifs         string   `json:"pointsPositifs"         validate:"omitempty,max=2000"`
	Recommandations        string   `json:"recommandations"        validate:"omitempty,max=2000"`
	PhotosRapport          []string `json:"photosRapport"          validate:"omitempty,max=20,dive,max=500"`
}

// Valider contrôle les champs du rapport
func (r *RapporterActiviteRequest) Valider() []ErreurChamp {
	if err := valide.Struct(r); err != nil {
		return erreursDepuisValidator(err)
	}
	return nil
}

// RejeterActiviteRequest corps de POST /activites/:id/rejeter
type RejeterActiviteRequest struct {
	Motif string `json:"motif" validate:"required,min=5,max=500"`
}

// Valider contrôle le motif de rejet
func (r *RejeterActiviteRequest) Valider() []ErreurChamp {
	if err := valide.Struct(r); err != nil {
		return erreursDepuisValidator(err)
	}
	return nil
}

// ── Réponses ──

// EtablissementBref établissement résumé, imbriqué dans une activité
type EtablissementBref struct {
	ID   uint   `json:"id"`
	Nom  string `json:"nom"`
	Type string `json:"type"`
}

// ActiviteResponse vue complète d'une activité (coordinateur, admin)
type ActiviteResponse struct {
	ID                   uint               `json:"id"`
	EtablissementID      uint               `json:"etablissementId"`
	Etablissement        *EtablissementBref `json:"etablissement,omitempty"`
	CreatedBy            uint               `json:"createdBy"`
	Titre                string             `json:"titre"`
	Description          string             `json:"description,omitempty"`
	TypeActivite         string             `json:"typeActivite"`
	Date                 string             `json:"date"`
	HeureDebut           string             `json:"heureDebut"`
	HeureFin             string             `json:"heureFin"`
	Lieu                 string             `json:"lieu,omitempty"`
	ResponsableNom       string             `json:"responsableNom,omitempty"`
	ParticipantsAttendus *int               `json:"participantsAttendus,omitempty"`
	IsVisiblePublic      bool               `json:"isVisiblePublic"`
	IsValideParAdmin     bool               `json:"isValideParAdmin"`
	RequireValidation    bool               `json:"requireValidation"`
	Statut               string             `json:"statut"`
	MotifRejet           string             `json:"motifRejet,omitempty"`
	IsRecurrent          bool               `json:"isRecurrent"`
	RecurrencePattern    string             `json:"recurrencePattern,omitempty"`
	RecurrenceEndDate    string             `json:"recurrenceEndDate,omitempty"`
	RecurrenceDays       []int              `json:"recurrenceDays,omitempty"`
	RecurrenceParentID   *uint              `json:"recurrenceParentId,omitempty"`
	NombreOccurrences    int                `json:"nombreOccurrences,omitempty"`

	// Champs de rapport — jamais présents dans la projection citoyenne.
	PresenceEffective      *int     `json:"presenceEffective,omitempty"`
	TauxPresence           *float64 `json:"tauxPresence,omitempty"`
	CommentaireDeroulement string   `json:"commentaireDeroulement,omitempty"`
	Difficultes            string   `json:"difficultes,omitempty"`
	PointsPositifs         string   `json:"pointsPositifs,omitempty"`
	PhotosRapport          []string `json:"photosRapport,omitempty"`
	NoteQualite            *int     `json:"noteQualite,omitempty"`
	Recommandations        string   `json:"recommandations,omitempty"`
	RapportComplete        bool     `json:"rapportComplete"`
	DateRapport            string   `json:"dateRapport,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ActivitePubliqueResponse vue citoyenne d'une activité.
// Les champs de rapport n'existent pas dans cette structure : les clés
// correspondantes ne peuvent donc pas apparaître dans la réponse JSON.
type ActivitePubliqueResponse struct {
	ID                   uint               `json:"id"`
	EtablissementID      uint               `json:"etablissementId"`
	Etablissement        *EtablissementBref `json:"etablissement,omitempty"`
	Titre                string             `json:"titre"`
	Description          string             `json:"description,omitempty"`
	TypeActivite         string             `json:"typeActivite"`
	Date                 string             `json:"date"`
	HeureDebut           string             `json:"heureDebut"`
	HeureFin             string             `json:"heureFin"`
	Lieu                 string             `json:"lieu,omitempty"`
	ResponsableNom       string             `json:"responsableNom,omitempty"`
	ParticipantsAttendus *int               `json:"participantsAttendus,omitempty"`
	Statut               string             `json:"statut"`
	IsRecurrent          bool               `json:"isRecurrent"`
	RecurrencePattern    string             `json:"recurrencePattern,omitempty"`
}
