package model

import "time"

// ── Statuts du cycle de vie ──

// StatutActivite statut d'une activité programmée
type StatutActivite string

const (
	StatutBrouillon           StatutActivite = "BROUILLON"
	StatutEnAttenteValidation StatutActivite = "EN_ATTENTE_VALIDATION"
	StatutValide              StatutActivite = "VALIDE"
	StatutRejetee             StatutActivite = "REJETEE"
	StatutPubliee             StatutActivite = "PUBLIEE"
	StatutTerminee            StatutActivite = "TERMINEE"
	StatutRapportComplete     StatutActivite = "RAPPORT_COMPLETE"
)

// transitionsAutorisees graphe des transitions du cycle de vie.
// Le statut n'avance que vers l'avant ; seul le rejet suivi d'une
// nouvelle soumission fait revenir en EN_ATTENTE_VALIDATION.
var transitionsAutorisees = map[StatutActivite][]StatutActivite{
	StatutBrouillon:           {StatutEnAttenteValidation},
	StatutEnAttenteValidation: {StatutValide, StatutRejetee},
	StatutValide:              {StatutPubliee},
	StatutRejetee:             {StatutEnAttenteValidation},
	StatutPubliee:             {StatutTerminee, StatutRapportComplete},
	StatutTerminee:            {StatutRapportComplete},
	StatutRapportComplete:     {},
}

// EstValide vérifie que le statut fait partie des statuts connus
func (s StatutActivite) EstValide() bool {
	_, ok := transitionsAutorisees[s]
	return ok
}

// PeutPasserA vérifie qu'une transition est autorisée par le graphe
func (s StatutActivite) PeutPasserA(cible StatutActivite) bool {
	for _, t := range transitionsAutorisees[s] {
		if t == cible {
			return true
		}
	}
	return false
}

// ── Modèles de récurrence ──

const (
	PatternQuotidien            = "DAILY"
	PatternHebdomadaire         = "WEEKLY"
	PatternMensuel              = "MONTHLY"
	PatternQuotidienSansWeekend = "DAILY_NO_WEEKEND"
)

// PatternsConnus les modèles de récurrence acceptés
var PatternsConnus = map[string]bool{
	PatternQuotidien:            true,
	PatternHebdomadaire:         true,
	PatternMensuel:              true,
	PatternQuotidienSansWeekend: true,
}

// ProgrammeActivite table programme_activites — une occurrence programmée
// dans un établissement. Les occurrences générées par récurrence pointent
// vers leur parent via RecurrenceParentID (arbre de profondeur 1 : jamais
// de petits-enfants).
type ProgrammeActivite struct {
	ID              uint `gorm:"primaryKey"     json:"id"`
	EtablissementID uint `gorm:"not null;index" json:"etablissement_id"`
	CreatedBy       uint `gorm:"not null"       json:"created_by"`

	Titre                string    `gorm:"type:varchar(150);not null" json:"titre"`
	Description          string    `gorm:"type:text"                  json:"description,omitempty"`
	TypeActivite         string    `gorm:"type:varchar(50);not null"  json:"type_activite"`
	Date                 time.Time `gorm:"type:date;not null;index"   json:"date"`
	HeureDebut           string    `gorm:"type:varchar(5);not null"   json:"heure_debut"`
	HeureFin             string    `gorm:"type:varchar(5);not null"   json:"heure_fin"`
	Lieu                 string    `gorm:"type:varchar(255)"          json:"lieu,omitempty"`
	ResponsableNom       string    `gorm:"type:varchar(150)"          json:"responsable_nom,omitempty"`
	ParticipantsAttendus *int      `json:"participants_attendus,omitempty"`

	IsVisiblePublic   bool           `gorm:"not null;default:false" json:"is_visible_public"`
	IsValideParAdmin  bool           `gorm:"not null;default:false" json:"is_valide_par_admin"`
	RequireValidation bool           `gorm:"not null;default:true"  json:"require_validation"`
	// VisibilitePubliqueDemandee souhait exprimé à la création ; appliqué
	// à is_visible_public lors de la publication seulement.
	VisibilitePubliqueDemandee bool `gorm:"not null;default:true" json:"visibilite_publique_demandee"`
	Statut            StatutActivite `gorm:"type:varchar(30);not null;default:'BROUILLON';index" json:"statut"`
	MotifRejet        string         `gorm:"type:varchar(500)"      json:"motif_rejet,omitempty"`

	IsRecurrent        bool         `gorm:"not null;default:false" json:"is_recurrent"`
	RecurrencePattern  string       `gorm:"type:varchar(20)"       json:"recurrence_pattern,omitempty"`
	RecurrenceEndDate  *time.Time   `gorm:"type:date"              json:"recurrence_end_date,omitempty"`
	RecurrenceDays     JoursSemaine `gorm:"type:integer[]"         json:"recurrence_days,omitempty"`
	RecurrenceParentID *uint        `gorm:"index"                  json:"recurrence_parent_id,omitempty"`

	// Champs de rapport — renseignés uniquement après la tenue de l'activité.
	PresenceEffective      *int       `json:"presence_effective,omitempty"`
	TauxPresence           *float64   `json:"taux_presence,omitempty"`
	CommentaireDeroulement string     `gorm:"type:text" json:"commentaire_deroulement,omitempty"`
	Difficultes            string     `gorm:"type:text" json:"difficultes,omitempty"`
	PointsPositifs         string     `gorm:"type:text" json:"points_positifs,omitempty"`
	PhotosRapport          ListeTexte `gorm:"type:text[]" json:"photos_rapport,omitempty"`
	NoteQualite            *int       `gorm:"type:smallint" json:"note_qualite,omitempty"`
	Recommandations        string     `gorm:"type:text" json:"recommandations,omitempty"`
	RapportComplete        bool       `gorm:"not null;default:false" json:"rapport_complete"`
	DateRapport            *time.Time `json:"date_rapport,omitempty"`

	BaseModel

	// Associations
	Etablissement *Etablissement `gorm:"foreignKey:EtablissementID" json:"etablissement,omitempty"`
}

// TableName nom de la table
func (ProgrammeActivite) TableName() string { return "programme_activites" }

// FinEffective reconstruit l'instant de fin (date + heure_fin) dans le fuseau donné.
// HeureFin est déjà normalisée au format HH:MM à la création.
func (a *ProgrammeActivite) FinEffective(loc *time.Location) time.Time {
	h, m := 0, 0
	if t, err := time.Parse("15:04", a.HeureFin); err == nil {
		h, m = t.Hour(), t.Minute()
	}
	d := a.Date
	return time.Date(d.Year(), d.Month(), d.Day(), h, m, 0, 0, loc)
}

// StatutEffectif statut observé : une activité publiée dont la fin est passée
// est TERMINEE même si la base porte encore PUBLIEE (état dérivé, non stocké).
func (a *ProgrammeActivite) StatutEffectif(maintenant time.Time) StatutActivite {
	if a.Statut == StatutPubliee && a.FinEffective(maintenant.Location()).Before(maintenant) {
		return StatutTerminee
	}
	return a.Statut
}

// EstVisibleCitoyen une activité n'est lisible par un citoyen que si elle est
// publique ET validée par un administrateur.
func (a *ProgrammeActivite) EstVisibleCitoyen() bool {
	return a.IsVisiblePublic && a.IsValideParAdmin
}
