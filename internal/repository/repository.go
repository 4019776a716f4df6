package repository

import "gorm.io/gorm"

// Repository point d'entrée agrégé de tous les dépôts
type Repository struct {
	Utilisateur   UtilisateurRepository
	Etablissement EtablissementRepository
	Activite      ActiviteRepository
}

// NewRepository crée l'agrégat de dépôts
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Utilisateur:   NewUtilisateurRepo(db),
		Etablissement: NewEtablissementRepo(db),
		Activite:      NewActiviteRepo(db),
	}
}
