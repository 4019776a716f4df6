package service

import (
	"go.uber.org/zap"

	"github.com/AbdessamadProschool/medaction-prod-sub005/config"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/repository"
	"github.com/AbdessamadProschool/medaction-prod-sub005/pkg/jwt"
	"github.com/AbdessamadProschool/medaction-prod-sub005/pkg/redis"
)

// Service point d'entrée agrégé de la couche métier
type Service struct {
	Auth          *AuthService
	Activite      *ActiviteService
	Etablissement *EtablissementService
	Export        ExportService
}

// NewService assemble tous les services
func NewService(cfg *config.Config, repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *Service {
	autor := NewAutorisations()
	return &Service{
		Auth:          NewAuthService(&cfg.Auth, repo.Utilisateur, jwtMgr, rdb, logger),
		Activite:      NewActiviteService(&cfg.API, repo, autor, logger),
		Etablissement: NewEtablissementService(repo, autor, logger),
		Export:        NewExportService(repo, logger),
	}
}
