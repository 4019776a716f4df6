package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/model"
	pkgerrors "github.com/AbdessamadProschool/medaction-prod-sub005/pkg/errors"
)

// FiltreActivites critères de recherche composables pour la liste d'activités.
// Les restrictions de périmètre (EtablissementIDs, VisiblePublicSeul) sont
// intersectées avec les filtres explicites, jamais écrasées par eux.
type FiltreActivites struct {
	// EtablissementIDs restreint aux établissements listés (périmètre
	// coordinateur). nil = aucune restriction de périmètre.
	EtablissementIDs []uint
	// EtablissementID filtre explicite demandé par l'appelant.
	EtablissementID *uint
	// VisiblePublicSeul ne retient que les activités publiques validées
	// (lecture citoyenne).
	VisiblePublicSeul bool
	DateDebut         *time.Time
	DateFin           *time.Time
	Statuts           []model.StatutActivite
	Offset            int
	Limit             int
}

// ActiviteRepository accès aux activités programmées
type ActiviteRepository interface {
	Create(ctx context.Context, a *model.ProgrammeActivite) error
	// CreateAvecOccurrences persiste le parent puis ses occurrences filles
	// dans une même transaction : jamais de parent orphelin en cas d'échec.
	CreateAvecOccurrences(ctx context.Context, parent *model.ProgrammeActivite, occurrences []model.ProgrammeActivite) error
	GetByID(ctx context.Context, id uint) (*model.ProgrammeActivite, error)
	List(ctx context.Context, f *FiltreActivites) ([]model.ProgrammeActivite, int64, error)
	ListByParent(ctx context.Context, parentID uint) ([]model.ProgrammeActivite, error)
	Update(ctx context.Context, a *model.ProgrammeActivite) error
	// UpdateDepuisStatut met à jour en exigeant le statut courant attendu ;
	// les soumissions concurrentes sur la même activité sont ainsi
	// sérialisées par la base (zéro ligne touchée = conflit).
	UpdateDepuisStatut(ctx context.Context, a *model.ProgrammeActivite, statutAttendu model.StatutActivite) error
}

type activiteRepo struct {
	db *gorm.DB
}

// NewActiviteRepo crée une instance de ActiviteRepository
func NewActiviteRepo(db *gorm.DB) ActiviteRepository {
	return &activiteRepo{db: db}
}

func (r *activiteRepo) Create(ctx context.Context, a *model.ProgrammeActivite) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *activiteRepo) CreateAvecOccurrences(ctx context.Context, parent *model.ProgrammeActivite, occurrences []model.ProgrammeActivite) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(parent).Error; err != nil {
			return err
		}
		if len(occurrences) == 0 {
			return nil
		}
		for i := range occurrences {
			occurrences[i].RecurrenceParentID = &parent.ID
		}
		return tx.Create(&occurrences).Error
	})
}

func (r *activiteRepo) GetByID(ctx context.Context, id uint) (*model.ProgrammeActivite, error) {
	var a model.ProgrammeActivite
	err := r.db.WithContext(ctx).
		Preload("Etablissement").
		Where("id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *activiteRepo) List(ctx context.Context, f *FiltreActivites) ([]model.ProgrammeActivite, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.ProgrammeActivite{})

	if f.VisiblePublicSeul {
		q = q.Where("is_visible_public = ? AND is_valide_par_admin = ?", true, true)
	}
	if f.EtablissementIDs != nil {
		q = q.Where("etablissement_id IN ?", f.EtablissementIDs)
	}
	if f.EtablissementID != nil {
		q = q.Where("etablissement_id = ?", *f.EtablissementID)
	}
	if f.DateDebut != nil {
		q = q.Where("date >= ?", *f.DateDebut)
	}
	if f.DateFin != nil {
		q = q.Where("date <= ?", *f.DateFin)
	}
	if len(f.Statuts) > 0 {
		q = q.Where("statut IN ?", f.Statuts)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var activites []model.ProgrammeActivite
	err := q.Preload("Etablissement").
		Order("date ASC, heure_debut ASC").
		Offset(f.Offset).Limit(f.Limit).
		Find(&activites).Error
	return activites, total, err
}

func (r *activiteRepo) ListByParent(ctx context.Context, parentID uint) ([]model.ProgrammeActivite, error) {
	var activites []model.ProgrammeActivite
	err := r.db.WithContext(ctx).
		Where("recurrence_parent_id = ?", parentID).
		Order("date ASC").
		Find(&activites).Error
	return activites, err
}

func (r *activiteRepo) Update(ctx context.Context, a *model.ProgrammeActivite) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *activiteRepo) UpdateDepuisStatut(ctx context.Context, a *model.ProgrammeActivite, statutAttendu model.StatutActivite) error {
	result := r.db.WithContext(ctx).
		Model(&model.ProgrammeActivite{}).
		Where("id = ? AND statut = ?", a.ID, statutAttendu).
		Select("*").Omit("id", "created_at", "created_by", "etablissement_id", "Etablissement").
		Updates(a)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrConflitEcriture
	}
	return nil
}
