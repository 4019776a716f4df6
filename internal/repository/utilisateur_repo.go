package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/model"
)

// UtilisateurRepository accès aux utilisateurs et à leurs affectations
type UtilisateurRepository interface {
	GetByID(ctx context.Context, id uint) (*model.Utilisateur, error)
	GetByEmail(ctx context.Context, email string) (*model.Utilisateur, error)
	// EtablissementsGeres renvoie les ids des établissements gérés par un
	// coordinateur. La liste appartient au sous-système identité et est
	// relue à chaque requête.
	EtablissementsGeres(ctx context.Context, utilisateurID uint) ([]uint, error)
}

type utilisateurRepo struct {
	db *gorm.DB
}

// NewUtilisateurRepo crée une instance de UtilisateurRepository
func NewUtilisateurRepo(db *gorm.DB) UtilisateurRepository {
	return &utilisateurRepo{db: db}
}

func (r *utilisateurRepo) GetByID(ctx context.Context, id uint) (*model.Utilisateur, error) {
	var u model.Utilisateur
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *utilisateurRepo) GetByEmail(ctx context.Context, email string) (*model.Utilisateur, error) {
	var u model.Utilisateur
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *utilisateurRepo) EtablissementsGeres(ctx context.Context, utilisateurID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&model.CoordinateurEtablissement{}).
		Where("utilisateur_id = ?", utilisateurID).
		Pluck("etablissement_id", &ids).Error
	return ids, err
}
