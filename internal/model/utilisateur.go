package model

// ── Rôles ──

const (
	RoleCitoyen      = "citoyen"
	RoleCoordinateur = "coordinateur"
	RoleAdmin        = "admin"
)

// Utilisateur table utilisateurs
type Utilisateur struct {
	ID           uint   `gorm:"primaryKey"                                json:"id"`
	Nom          string `gorm:"type:varchar(100);not null"                json:"nom"`
	Prenom       string `gorm:"type:varchar(100);not null"                json:"prenom"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"    json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'citoyen'" json:"role"`
	Actif        bool   `gorm:"not null;default:true"                     json:"actif"`
	BaseModel
}

// TableName nom de la table
func (Utilisateur) TableName() string { return "utilisateurs" }

// CoordinateurEtablissement affectation d'un coordinateur à un établissement.
// La liste des établissements gérés appartient au sous-système identité ;
// elle est relue à chaque requête, jamais mise en cache ici.
type CoordinateurEtablissement struct {
	ID              uint `gorm:"primaryKey"         json:"id"`
	UtilisateurID   uint `gorm:"not null;index"     json:"utilisateur_id"`
	EtablissementID uint `gorm:"not null"           json:"etablissement_id"`
	BaseModel
}

// TableName nom de la table
func (CoordinateurEtablissement) TableName() string { return "coordinateur_etablissements" }
