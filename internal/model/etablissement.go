package model

// Etablissement table etablissements — structure publique accueillant des activités
// (école, centre de santé, maison de jeunes, etc.)
type Etablissement struct {
	ID      uint   `gorm:"primaryKey"                 json:"id"`
	Nom     string `gorm:"type:varchar(255);not null" json:"nom"`
	Type    string `gorm:"type:varchar(50);not null"  json:"type"`
	Adresse string `gorm:"type:varchar(500)"          json:"adresse,omitempty"`
	Ville   string `gorm:"type:varchar(100)"          json:"ville,omitempty"`
	Actif   bool   `gorm:"not null;default:true"      json:"actif"`
	BaseModel
}

// TableName nom de la table
func (Etablissement) TableName() string { return "etablissements" }
