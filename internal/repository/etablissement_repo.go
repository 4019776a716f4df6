package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/model"
)

// EtablissementRepository accès aux établissements
type EtablissementRepository interface {
	Create(ctx context.Context, e *model.Etablissement) error
	GetByID(ctx context.Context, id uint) (*model.Etablissement, error)
	List(ctx context.Context, inclureInactifs bool) ([]model.Etablissement, error)
	Update(ctx context.Context, e *model.Etablissement) error
}

type etablissementRepo struct {
	db *gorm.DB
}

// NewEtablissementRepo crée une instance de EtablissementRepository
func NewEtablissementRepo(db *gorm.DB) EtablissementRepository {
	return &etablissementRepo{db: db}
}

func (r *etablissementRepo) Create(ctx context.Context, e *model.Etablissement) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *etablissementRepo) GetByID(ctx context.Context, id uint) (*model.Etablissement, error) {
	var e model.Etablissement
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *etablissementRepo) List(ctx context.Context, inclureInactifs bool) ([]model.Etablissement, error) {
	var etabs []model.Etablissement
	q := r.db.WithContext(ctx).Order("nom ASC")
	if !inclureInactifs {
		q = q.Where("actif = ?", true)
	}
	err := q.Find(&etabs).Error
	return etabs, err
}

func (r *etablissementRepo) Update(ctx context.Context, e *model.Etablissement) error {
	return r.db.WithContext(ctx).Save(e).Error
}
