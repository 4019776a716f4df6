package dto

// ── Authentification ──

// LoginRequest requête de connexion
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest requête de renouvellement de token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse paire de tokens émise à la connexion
type TokenResponse struct {
	AccessToken  string             `json:"accessToken"`
	RefreshToken string             `json:"refreshToken"`
	ExpiresIn    int                `json:"expiresIn"` // durée de vie de l'access token (secondes)
	Utilisateur  UtilisateurReponse `json:"utilisateur"`
}

// UtilisateurReponse informations d'utilisateur (sans données sensibles)
type UtilisateurReponse struct {
	ID     uint   `json:"id"`
	Nom    string `json:"nom"`
	Prenom string `json:"prenom"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
