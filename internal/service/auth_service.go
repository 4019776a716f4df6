package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AbdessamadProschool/medaction-prod-sub005/config"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/dto"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/model"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/repository"
	"github.com/AbdessamadProschool/medaction-prod-sub005/pkg/jwt"
	"github.com/AbdessamadProschool/medaction-prod-sub005/pkg/redis"
)

// AuthService authentification et gestion de session
type AuthService struct {
	cfg          *config.AuthConfig
	utilisateurs repository.UtilisateurRepository
	jwtMgr       *jwt.Manager
	rdb          *redis.Client
	logger       *zap.Logger
}

// NewAuthService crée le service d'authentification
func NewAuthService(cfg *config.AuthConfig, utilisateurs repository.UtilisateurRepository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *AuthService {
	return &AuthService{
		cfg:          cfg,
		utilisateurs: utilisateurs,
		jwtMgr:       jwtMgr,
		rdb:          rdb,
		logger:       logger,
	}
}

// Login vérifie les identifiants et émet une paire de tokens
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	u, err := s.utilisateurs.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIdentifiantsInvalides
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrIdentifiantsInvalides
	}

	if !u.Actif {
		return nil, ErrCompteDesactive
	}

	s.logger.Info("Connexion réussie",
		zap.Uint("utilisateur_id", u.ID),
		zap.String("role", u.Role),
	)

	return s.emettreTokens(u)
}

// RefreshToken renouvelle la paire de tokens à partir d'un refresh token valide.
// Le refresh token consommé est mis en liste noire.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != "refresh" {
		return nil, jwt.ErrTokenInvalide
	}

	if s.rdb != nil {
		noir, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if noir {
			return nil, jwt.ErrTokenInvalide
		}
	}

	u, err := s.utilisateurs.GetByID(ctx, claims.UtilisateurID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, jwt.ErrTokenInvalide
		}
		return nil, err
	}
	if !u.Actif {
		return nil, ErrCompteDesactive
	}

	if s.rdb != nil {
		if err := s.rdb.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
			return nil, err
		}
	}

	return s.emettreTokens(u)
}

// Logout met le token courant en liste noire jusqu'à son expiration naturelle.
// Sans Redis, la déconnexion est un no-op : le token expirera de lui-même.
func (s *AuthService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}

// Me renvoie le profil de l'utilisateur connecté
func (s *AuthService) Me(ctx context.Context, utilisateurID uint) (*dto.UtilisateurReponse, error) {
	u, err := s.utilisateurs.GetByID(ctx, utilisateurID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, jwt.ErrTokenInvalide
		}
		return nil, err
	}
	r := versUtilisateurReponse(u)
	return &r, nil
}

func (s *AuthService) emettreTokens(u *model.Utilisateur) (*dto.TokenResponse, error) {
	access, err := s.jwtMgr.GenerateAccessToken(u.ID, u.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtMgr.GenerateRefreshToken(u.ID, u.Role)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(s.cfg.AccessTokenTTL.Seconds()),
		Utilisateur:  versUtilisateurReponse(u),
	}, nil
}

func versUtilisateurReponse(u *model.Utilisateur) dto.UtilisateurReponse {
	return dto.UtilisateurReponse{
		ID:     u.ID,
		Nom:    u.Nom,
		Prenom: u.Prenom,
		Email:  u.Email,
		Role:   u.Role,
	}
}
