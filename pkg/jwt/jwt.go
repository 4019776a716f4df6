package jwt

import (
	"errors"
	"strconv"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/AbdessamadProschool/medaction-prod-sub005/config"
)

var (
	ErrTokenExpire   = errors.New("token expiré")
	ErrTokenInvalide = errors.New("token invalide")
)

// Claims déclarations JWT du portail
type Claims struct {
	UtilisateurID uint   `json:"utilisateur_id"`
	Role          string `json:"role"`
	TokenType     string `json:"token_type"` // "access" | "refresh"
	jwtv5.RegisteredClaims
}

// Manager gestionnaire de tokens
type Manager struct {
	secret          []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// NewManager crée le gestionnaire JWT
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret:          []byte(cfg.JWTSecret),
		accessTokenTTL:  cfg.AccessTokenTTL,
		refreshTokenTTL: cfg.RefreshTokenTTL,
	}
}

// GenerateAccessToken génère un Access Token
func (m *Manager) GenerateAccessToken(utilisateurID uint, role string) (string, error) {
	return m.generate(utilisateurID, role, "access", m.accessTokenTTL)
}

// GenerateRefreshToken génère un Refresh Token
func (m *Manager) GenerateRefreshToken(utilisateurID uint, role string) (string, error) {
	return m.generate(utilisateurID, role, "refresh", m.refreshTokenTTL)
}

func (m *Manager) generate(utilisateurID uint, role, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UtilisateurID: utilisateurID,
		Role:          role,
		TokenType:     tokenType,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   strconv.FormatUint(uint64(utilisateurID), 10),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(ttl)),
			Issuer:    "medaction",
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken analyse et vérifie un token
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalide
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpire
		}
		return nil, ErrTokenInvalide
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalide
	}

	return claims, nil
}
