package service

import (
	"context"

	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/model"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/repository"
)

// ── Acteur et périmètre d'accès ──

// Acteur identité de l'appelant, extraite du token par le middleware.
// Un appel anonyme est représenté par un acteur citoyen d'ID zéro.
type Acteur struct {
	ID   uint
	Role string
}

// EstAnonyme vrai pour un appel sans authentification
func (a Acteur) EstAnonyme() bool { return a.ID == 0 }

// PorteeAcces périmètre de lecture/écriture d'un acteur.
// Tous vrai = admin ; sinon seuls les établissements listés sont accessibles.
type PorteeAcces struct {
	Tous             bool
	EtablissementIDs []uint
}

// Contient vérifie qu'un établissement est dans le périmètre
func (p PorteeAcces) Contient(etablissementID uint) bool {
	if p.Tous {
		return true
	}
	for _, id := range p.EtablissementIDs {
		if id == etablissementID {
			return true
		}
	}
	return false
}

// Vide vrai quand l'acteur ne gère aucun établissement
func (p PorteeAcces) Vide() bool {
	return !p.Tous && len(p.EtablissementIDs) == 0
}

// ── Permissions ──

const (
	PermissionCreerProgramme   = "programmes.creer"
	PermissionValiderProgramme = "programmes.valider"
	PermissionPublierProgramme = "programmes.publier"
	PermissionGererReferentiel = "referentiel.gerer"
)

// Autorisations vérification de capacité, interrogée à chaque opération
// d'écriture (jamais mise en cache entre requêtes).
type Autorisations interface {
	APermission(ctx context.Context, acteur Acteur, permission string) (bool, error)
}

// permissionsParRole capacités accordées par rôle. Le périmètre
// établissement est contrôlé séparément, après la capacité.
var permissionsParRole = map[string]map[string]bool{
	model.RoleCitoyen: {},
	model.RoleCoordinateur: {
		PermissionCreerProgramme: true,
	},
	model.RoleAdmin: {
		PermissionCreerProgramme:   true,
		PermissionValiderProgramme: true,
		PermissionPublierProgramme: true,
		PermissionGererReferentiel: true,
	},
}

type autorisationsParRole struct{}

// NewAutorisations crée la vérification de permissions par rôle
func NewAutorisations() Autorisations {
	return &autorisationsParRole{}
}

func (autorisationsParRole) APermission(_ context.Context, acteur Acteur, permission string) (bool, error) {
	return permissionsParRole[acteur.Role][permission], nil
}

// porteePour résout le périmètre d'accès d'un acteur. La liste des
// établissements gérés est relue en base à chaque appel.
func porteePour(ctx context.Context, utilisateurs repository.UtilisateurRepository, acteur Acteur) (PorteeAcces, error) {
	switch acteur.Role {
	case model.RoleAdmin:
		return PorteeAcces{Tous: true}, nil
	case model.RoleCoordinateur:
		ids, err := utilisateurs.EtablissementsGeres(ctx, acteur.ID)
		if err != nil {
			return PorteeAcces{}, err
		}
		return PorteeAcces{EtablissementIDs: ids}, nil
	default:
		return PorteeAcces{}, nil
	}
}
