package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/model"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/repository"
	pkgerrors "github.com/AbdessamadProschool/medaction-prod-sub005/pkg/errors"
)

// ── Mock UtilisateurRepository ──

type mockUtilisateurRepo struct {
	utilisateurs map[uint]*model.Utilisateur
	affectations map[uint][]uint // utilisateur → établissements gérés
}

func newMockUtilisateurRepo() *mockUtilisateurRepo {
	return &mockUtilisateurRepo{
		utilisateurs: make(map[uint]*model.Utilisateur),
		affectations: make(map[uint][]uint),
	}
}

func (m *mockUtilisateurRepo) GetByID(_ context.Context, id uint) (*model.Utilisateur, error) {
	if u, ok := m.utilisateurs[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUtilisateurRepo) GetByEmail(_ context.Context, email string) (*model.Utilisateur, error) {
	for _, u := range m.utilisateurs {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUtilisateurRepo) EtablissementsGeres(_ context.Context, utilisateurID uint) ([]uint, error) {
	return m.affectations[utilisateurID], nil
}

// ── Mock EtablissementRepository ──

type mockEtablissementRepo struct {
	etablissements map[uint]*model.Etablissement
	prochainID     uint
}

func newMockEtablissementRepo() *mockEtablissementRepo {
	return &mockEtablissementRepo{
		etablissements: make(map[uint]*model.Etablissement),
		prochainID:     1,
	}
}

func (m *mockEtablissementRepo) Create(_ context.Context, e *model.Etablissement) error {
	if e.ID == 0 {
		e.ID = m.prochainID
		m.prochainID++
	}
	m.etablissements[e.ID] = e
	return nil
}

func (m *mockEtablissementRepo) GetByID(_ context.Context, id uint) (*model.Etablissement, error) {
	if e, ok := m.etablissements[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEtablissementRepo) List(_ context.Context, inclureInactifs bool) ([]model.Etablissement, error) {
	var result []model.Etablissement
	for _, e := range m.etablissements {
		if !inclureInactifs && !e.Actif {
			continue
		}
		result = append(result, *e)
	}
	return result, nil
}

func (m *mockEtablissementRepo) Update(_ context.Context, e *model.Etablissement) error {
	m.etablissements[e.ID] = e
	return nil
}

// ── Mock ActiviteRepository ──

type mockActiviteRepo struct {
	activites  map[uint]*model.ProgrammeActivite
	prochainID uint
}

func newMockActiviteRepo() *mockActiviteRepo {
	return &mockActiviteRepo{
		activites:  make(map[uint]*model.ProgrammeActivite),
		prochainID: 1,
	}
}

func (m *mockActiviteRepo) Create(_ context.Context, a *model.ProgrammeActivite) error {
	if a.ID == 0 {
		a.ID = m.prochainID
		m.prochainID++
	}
	copie := *a
	m.activites[a.ID] = &copie
	return nil
}

func (m *mockActiviteRepo) CreateAvecOccurrences(ctx context.Context, parent *model.ProgrammeActivite, occurrences []model.ProgrammeActivite) error {
	if err := m.Create(ctx, parent); err != nil {
		return err
	}
	for i := range occurrences {
		occurrences[i].RecurrenceParentID = &parent.ID
		if err := m.Create(ctx, &occurrences[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockActiviteRepo) GetByID(_ context.Context, id uint) (*model.ProgrammeActivite, error) {
	if a, ok := m.activites[id]; ok {
		copie := *a
		return &copie, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockActiviteRepo) List(_ context.Context, f *repository.FiltreActivites) ([]model.ProgrammeActivite, int64, error) {
	var result []model.ProgrammeActivite
	for _, a := range m.activites {
		if f.VisiblePublicSeul && !(a.IsVisiblePublic && a.IsValideParAdmin) {
			continue
		}
		if f.EtablissementIDs != nil && !contientID(f.EtablissementIDs, a.EtablissementID) {
			continue
		}
		if f.EtablissementID != nil && a.EtablissementID != *f.EtablissementID {
			continue
		}
		if f.DateDebut != nil && a.Date.Before(*f.DateDebut) {
			continue
		}
		if f.DateFin != nil && a.Date.After(*f.DateFin) {
			continue
		}
		if len(f.Statuts) > 0 && !contientStatut(f.Statuts, a.Statut) {
			continue
		}
		result = append(result, *a)
	}
	return result, int64(len(result)), nil
}

func (m *mockActiviteRepo) ListByParent(_ context.Context, parentID uint) ([]model.ProgrammeActivite, error) {
	var result []model.ProgrammeActivite
	for _, a := range m.activites {
		if a.RecurrenceParentID != nil && *a.RecurrenceParentID == parentID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockActiviteRepo) Update(_ context.Context, a *model.ProgrammeActivite) error {
	copie := *a
	m.activites[a.ID] = &copie
	return nil
}

func (m *mockActiviteRepo) UpdateDepuisStatut(_ context.Context, a *model.ProgrammeActivite, statutAttendu model.StatutActivite) error {
	existante, ok := m.activites[a.ID]
	if !ok || existante.Statut != statutAttendu {
		return pkgerrors.ErrConflitEcriture
	}
	copie := *a
	m.activites[a.ID] = &copie
	return nil
}

func contientID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func contientStatut(statuts []model.StatutActivite, s model.StatutActivite) bool {
	for _, v := range statuts {
		if v == s {
			return true
		}
	}
	return false
}
