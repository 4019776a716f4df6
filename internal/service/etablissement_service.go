package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/dto"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/model"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/repository"
)

// EtablissementService gestion du référentiel des établissements
type EtablissementService struct {
	repo   *repository.Repository
	autor  Autorisations
	logger *zap.Logger
}

// NewEtablissementService crée le service des établissements
func NewEtablissementService(repo *repository.Repository, autor Autorisations, logger *zap.Logger) *EtablissementService {
	return &EtablissementService{repo: repo, autor: autor, logger: logger}
}

// Creer ajoute un établissement au référentiel (admin)
func (s *EtablissementService) Creer(ctx context.Context, acteur Acteur, req *dto.CreerEtablissementRequest) (*dto.EtablissementResponse, error) {
	if err := erreursValidationSi(req.Valider()); err != nil {
		return nil, err
	}
	if err := s.exigerGestion(ctx, acteur); err != nil {
		return nil, err
	}

	e := &model.Etablissement{
		Nom:     req.Nom,
		Type:    req.Type,
		Adresse: req.Adresse,
		Ville:   req.Ville,
		Actif:   true,
	}
	if err := s.repo.Etablissement.Create(ctx, e); err != nil {
		return nil, err
	}

	s.logger.Info("Établissement créé", zap.Uint("etablissement_id", e.ID), zap.String("nom", e.Nom))
	return versEtablissementResponse(e), nil
}

// Obtenir charge un établissement par id
func (s *EtablissementService) Obtenir(ctx context.Context, id uint) (*dto.EtablissementResponse, error) {
	e, err := s.repo.Etablissement.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEtablissementIntrouvable
		}
		return nil, err
	}
	return versEtablissementResponse(e), nil
}

// Lister renvoie le référentiel. Seul un admin voit les inactifs.
func (s *EtablissementService) Lister(ctx context.Context, acteur Acteur) ([]dto.EtablissementResponse, error) {
	inclureInactifs := acteur.Role == model.RoleAdmin
	etabs, err := s.repo.Etablissement.List(ctx, inclureInactifs)
	if err != nil {
		return nil, err
	}
	liste := make([]dto.EtablissementResponse, 0, len(etabs))
	for i := range etabs {
		liste = append(liste, *versEtablissementResponse(&etabs[i]))
	}
	return liste, nil
}

// Modifier met à jour les champs fournis d'un établissement (admin)
func (s *EtablissementService) Modifier(ctx context.Context, acteur Acteur, id uint, req *dto.ModifierEtablissementRequest) (*dto.EtablissementResponse, error) {
	if err := erreursValidationSi(req.Valider()); err != nil {
		return nil, err
	}
	if err := s.exigerGestion(ctx, acteur); err != nil {
		return nil, err
	}

	e, err := s.repo.Etablissement.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEtablissementIntrouvable
		}
		return nil, err
	}

	if req.Nom != nil {
		e.Nom = *req.Nom
	}
	if req.Type != nil {
		e.Type = *req.Type
	}
	if req.Adresse != nil {
		e.Adresse = *req.Adresse
	}
	if req.Ville != nil {
		e.Ville = *req.Ville
	}
	if req.Actif != nil {
		e.Actif = *req.Actif
	}

	if err := s.repo.Etablissement.Update(ctx, e); err != nil {
		return nil, err
	}
	return versEtablissementResponse(e), nil
}

func (s *EtablissementService) exigerGestion(ctx context.Context, acteur Acteur) error {
	ok, err := s.autor.APermission(ctx, acteur, PermissionGererReferentiel)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPermissionRefusee
	}
	return nil
}
